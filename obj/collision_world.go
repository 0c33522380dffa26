package obj

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/zombierun/ecs/component"
	"github.com/milk9111/zombierun/ecs/system"
	"github.com/milk9111/zombierun/prefabs"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeBullet
	collisionTypeZombie
	collisionTypeVulture
)

// CollisionWorld owns the chipmunk space and every handle the simulation
// borrows. Its collision handlers only record contacts; the simulation
// decides what they mean on the next tick.
type CollisionWorld struct {
	defs  *prefabs.Definitions
	space *cp.Space
	clips map[component.Clip]ClipSpec

	player   *Player
	bullets  []*Bullet
	zombies  []*Enemy
	vultures []*Enemy
}

func NewCollisionWorld(defs *prefabs.Definitions) *CollisionWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	cw := &CollisionWorld{
		defs:  defs,
		space: space,
		clips: DefaultClips(defs),
	}

	cw.player = newPlayer(space, cw)
	for i := 0; i < defs.Capacity.Bullets; i++ {
		cw.bullets = append(cw.bullets, newBullet(space, cw))
	}
	for i := 0; i < defs.Capacity.Zombies; i++ {
		cw.zombies = append(cw.zombies, newEnemy(space, EnemyZombie, cw.clips))
	}
	for i := 0; i < defs.Capacity.Vultures; i++ {
		cw.vultures = append(cw.vultures, newEnemy(space, EnemyVulture, cw.clips))
	}

	cw.setupHandlers()
	return cw
}

func (cw *CollisionWorld) setupHandlers() {
	pairs := [][2]cp.CollisionType{
		{collisionTypeBullet, collisionTypeZombie},
		{collisionTypeBullet, collisionTypeVulture},
		{collisionTypePlayer, collisionTypeZombie},
		{collisionTypePlayer, collisionTypeVulture},
	}
	for _, pair := range pairs {
		handler := cw.space.NewCollisionHandler(pair[0], pair[1])
		handler.UserData = cw
		handler.BeginFunc = beginContact
	}
}

// beginContact stages the enemy in the sink's buffer.
func beginContact(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	sink, enemy := contactPair(a, b)
	if sink == nil || enemy == nil {
		sink, enemy = contactPair(b, a)
	}
	if sink == nil || enemy == nil {
		return true
	}
	if enemy.Kind == EnemyVulture {
		sink.VultureContacts().Add(enemy)
	} else {
		sink.ZombieContacts().Add(enemy)
	}
	return true
}

func contactPair(a, b *cp.Shape) (component.ContactSink, *Enemy) {
	sink, _ := a.UserData.(component.ContactSink)
	enemy, _ := b.UserData.(*Enemy)
	return sink, enemy
}

// SetDefinitions retimes the clips. Capacities and body sizes are fixed at
// construction.
func (cw *CollisionWorld) SetDefinitions(defs *prefabs.Definitions) {
	cw.defs = defs
	for clip, spec := range DefaultClips(defs) {
		cw.clips[clip] = spec
	}
}

// Step integrates every body by dt, fires the contact handlers and advances
// the animators.
//
// A contact is only staged when at least one body of the pair is moving:
// an enemy parked motionless on top of the standing player is never
// reported. Live enemies always carry a velocity, so play is unaffected.
func (cw *CollisionWorld) Step(dt float64) {
	if cw == nil || cw.space == nil || dt <= 0 {
		return
	}
	cw.space.Step(dt)

	cw.player.anim.Advance(dt)
	for _, b := range cw.bullets {
		b.anim.Advance(dt)
	}
	for _, z := range cw.zombies {
		z.anim.Advance(dt)
	}
	for _, v := range cw.vultures {
		v.anim.Advance(dt)
	}
}

// Bodies hands the handles to the simulation.
func (cw *CollisionWorld) Bodies() system.Bodies {
	bodies := system.Bodies{Player: cw.player, Physics: cw}
	for _, b := range cw.bullets {
		bodies.Bullets = append(bodies.Bullets, b)
	}
	for _, z := range cw.zombies {
		bodies.Zombies = append(bodies.Zombies, z)
	}
	for _, v := range cw.vultures {
		bodies.Vultures = append(bodies.Vultures, v)
	}
	return bodies
}

// Space exposes the chipmunk space for debug drawing.
func (cw *CollisionWorld) Space() *cp.Space {
	return cw.space
}

func (cw *CollisionWorld) Player() *Player {
	return cw.player
}

func (cw *CollisionWorld) Bullets() []*Bullet {
	return cw.bullets
}

func (cw *CollisionWorld) Zombies() []*Enemy {
	return cw.zombies
}

func (cw *CollisionWorld) Vultures() []*Enemy {
	return cw.vultures
}

// DroppedContacts totals the contacts lost to full staging buffers.
func (cw *CollisionWorld) DroppedContacts() int {
	n := cw.player.Dropped()
	for _, b := range cw.bullets {
		n += b.Dropped()
	}
	return n
}
