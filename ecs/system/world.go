package system

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/milk9111/zombierun/common"
	"github.com/milk9111/zombierun/ecs"
	"github.com/milk9111/zombierun/ecs/component"
	"github.com/milk9111/zombierun/prefabs"
)

// offscreen is where parked bodies wait for their next activation.
var offscreen = common.V(-1000, 0)

// Bodies are the collaborator handles a World borrows. Every handle starts
// parked; the length of each slice fixes the capacity of its pool.
type Bodies struct {
	Player   component.PlayerBody
	Bullets  []component.BulletBody
	Zombies  []component.EnemyBody
	Vultures []component.EnemyBody
	Physics  component.Stepper
}

// World is the state of one game. It is owned by the tick goroutine and
// passed to every system.
type World struct {
	Defs *prefabs.Definitions
	Log  *zap.Logger
	Rand *rand.Rand

	Bullets  *ecs.Pool[component.Bullet]
	Zombies  *ecs.Pool[component.Zombie]
	Vultures *ecs.Pool[component.Vulture]

	BulletBodies  *ecs.Stack[component.BulletBody]
	ZombieBodies  *ecs.Stack[component.EnemyBody]
	VultureBodies *ecs.Stack[component.EnemyBody]

	Player  component.PlayerBody
	Physics component.Stepper

	AvailableBullets int
	EnemiesKilled    int
	PlayerVelocity   float64
	IsDead           bool
	Started          bool
	AutoFire         bool
	TimeFactor       float64
	ElapsedSeconds   float64

	VisibilityBounds common.Rect
	VultureMinX      float64
	VultureMaxX      float64
	VultureDiveX     float64

	ZombieCooldown   float64
	VultureCooldown  float64
	AutoFireCooldown float64

	// Per tick.
	Input        component.Input
	Time         component.FrameTime
	DeltaSeconds float64
	Report       component.Report
}

func NewWorld(defs *prefabs.Definitions, bodies Bodies, rng *rand.Rand, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		Defs:          defs,
		Log:           log,
		Rand:          rng,
		Bullets:       ecs.NewPool[component.Bullet](len(bodies.Bullets)),
		Zombies:       ecs.NewPool[component.Zombie](len(bodies.Zombies)),
		Vultures:      ecs.NewPool[component.Vulture](len(bodies.Vultures)),
		BulletBodies:  ecs.NewStack[component.BulletBody](len(bodies.Bullets)),
		ZombieBodies:  ecs.NewStack[component.EnemyBody](len(bodies.Zombies)),
		VultureBodies: ecs.NewStack[component.EnemyBody](len(bodies.Vultures)),
		Player:        bodies.Player,
		Physics:       bodies.Physics,
	}
	for _, b := range bodies.Bullets {
		parkBody(b)
		w.BulletBodies.Push(b)
	}
	for _, b := range bodies.Zombies {
		parkBody(b)
		w.ZombieBodies.Push(b)
	}
	for _, b := range bodies.Vultures {
		parkBody(b)
		w.VultureBodies.Push(b)
	}
	w.Reset()
	return w
}

// Reset returns every active handle, restores the counters and recomputes
// the geometry from the definitions. Started is cleared.
func (w *World) Reset() {
	for index := range w.Bullets.All() {
		w.DeactivateBullet(index)
	}
	for index := range w.Zombies.All() {
		w.DeactivateZombie(index)
	}
	for index := range w.Vultures.All() {
		w.DeactivateVulture(index)
	}
	if w.Player != nil {
		w.Player.ZombieContacts().Clear()
		w.Player.VultureContacts().Clear()
		w.Player.Play(component.ClipPlayerIdle)
	}

	w.AvailableBullets = w.Defs.Player.StartingBullets
	w.EnemiesKilled = 0
	w.PlayerVelocity = w.Defs.Player.Speed
	w.IsDead = false
	w.Started = false
	w.TimeFactor = 1
	w.ElapsedSeconds = 0
	w.ZombieCooldown = 0
	w.VultureCooldown = 0
	w.AutoFireCooldown = 0
	w.applyBounds()
}

// SetDefinitions swaps tuning between ticks. Pool capacities are fixed by
// the bodies and are not affected.
func (w *World) SetDefinitions(defs *prefabs.Definitions) {
	w.Defs = defs
	w.applyBounds()
	if !w.IsDead {
		w.PlayerVelocity = defs.Player.Speed
	}
}

func (w *World) applyBounds() {
	b := w.Defs.Bounds
	w.VisibilityBounds = b.Visibility()
	w.VultureMinX = -b.Width*0.5 + w.Defs.Vulture.PatrolMargin
	w.VultureMaxX = b.Width*0.5 - w.Defs.Vulture.PatrolMargin
	w.VultureDiveX = b.Width * w.Defs.Vulture.DiveLine
}

// Playing reports whether the game has started and the player is alive.
func (w *World) Playing() bool {
	return w.Started && !w.IsDead
}

func (w *World) killPlayer() {
	if w.IsDead {
		return
	}
	w.IsDead = true
	w.PlayerVelocity = 0
	w.Player.Play(component.ClipPlayerDying)
	w.Report.Died = true
	w.Log.Info("player died",
		zap.Float64("elapsed", w.ElapsedSeconds),
		zap.Int("kills", w.EnemiesKilled))
}
