package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/zombierun/common"
	"github.com/milk9111/zombierun/ecs"
	"github.com/milk9111/zombierun/ecs/component"
	"github.com/milk9111/zombierun/prefabs"
)

type fakeBody struct {
	ref        ecs.Ref
	pos        common.Vec
	vel        common.Vec
	collisions bool
	clip       component.Clip
	finished   bool
	zombies    *ecs.Buffer[component.EnemyBody]
	vultures   *ecs.Buffer[component.EnemyBody]
}

func newFakeBody() *fakeBody {
	return &fakeBody{
		zombies:  ecs.NewBuffer[component.EnemyBody](8),
		vultures: ecs.NewBuffer[component.EnemyBody](8),
	}
}

func (b *fakeBody) Ref() ecs.Ref                                    { return b.ref }
func (b *fakeBody) SetRef(ref ecs.Ref)                              { b.ref = ref }
func (b *fakeBody) Position() common.Vec                            { return b.pos }
func (b *fakeBody) SetPosition(pos common.Vec)                      { b.pos = pos }
func (b *fakeBody) Velocity() common.Vec                            { return b.vel }
func (b *fakeBody) SetVelocity(vel common.Vec)                      { b.vel = vel }
func (b *fakeBody) SetCollisions(enabled bool)                      { b.collisions = enabled }
func (b *fakeBody) Play(clip component.Clip)                        { b.clip = clip; b.finished = false }
func (b *fakeBody) Finished(clip component.Clip) bool               { return b.clip == clip && b.finished }
func (b *fakeBody) ZombieContacts() *ecs.Buffer[component.EnemyBody] { return b.zombies }
func (b *fakeBody) VultureContacts() *ecs.Buffer[component.EnemyBody] {
	return b.vultures
}

type fakePlayer struct {
	center   common.Vec
	clip     component.Clip
	zombies  *ecs.Buffer[component.EnemyBody]
	vultures *ecs.Buffer[component.EnemyBody]
}

func (p *fakePlayer) Center() common.Vec                               { return p.center }
func (p *fakePlayer) Play(clip component.Clip)                         { p.clip = clip }
func (p *fakePlayer) ZombieContacts() *ecs.Buffer[component.EnemyBody]  { return p.zombies }
func (p *fakePlayer) VultureContacts() *ecs.Buffer[component.EnemyBody] { return p.vultures }

// fakePhysics moves every collidable body by its velocity.
type fakePhysics struct {
	bodies []*fakeBody
	steps  []float64
}

func (f *fakePhysics) Step(dt float64) {
	f.steps = append(f.steps, dt)
	for _, b := range f.bodies {
		if b.collisions {
			b.pos = b.pos.Add(b.vel.Scale(dt))
		}
	}
}

type fixture struct {
	sim      *Simulation
	world    *World
	player   *fakePlayer
	physics  *fakePhysics
	bullets  []*fakeBody
	zombies  []*fakeBody
	vultures []*fakeBody
}

func newFixture(t *testing.T, defs *prefabs.Definitions, seed int64) *fixture {
	t.Helper()
	if defs == nil {
		defs = prefabs.DefaultDefinitions()
	}
	f := &fixture{
		player: &fakePlayer{
			center:   defs.Player.Center,
			zombies:  ecs.NewBuffer[component.EnemyBody](8),
			vultures: ecs.NewBuffer[component.EnemyBody](8),
		},
		physics: &fakePhysics{},
	}
	bodies := Bodies{Player: f.player, Physics: f.physics}
	for i := 0; i < defs.Capacity.Bullets; i++ {
		b := newFakeBody()
		f.bullets = append(f.bullets, b)
		bodies.Bullets = append(bodies.Bullets, b)
	}
	for i := 0; i < defs.Capacity.Zombies; i++ {
		b := newFakeBody()
		f.zombies = append(f.zombies, b)
		bodies.Zombies = append(bodies.Zombies, b)
	}
	for i := 0; i < defs.Capacity.Vultures; i++ {
		b := newFakeBody()
		f.vultures = append(f.vultures, b)
		bodies.Vultures = append(bodies.Vultures, b)
	}
	f.physics.bodies = append(append(append(f.physics.bodies, f.bullets...), f.zombies...), f.vultures...)

	sim, err := New(defs, bodies, WithSeed(seed))
	require.NoError(t, err)
	f.sim = sim
	f.world = sim.World()
	return f
}

const tick = 1.0 / 60

func (f *fixture) step(in component.Input) component.Report {
	return f.sim.Update(in, component.FrameTime{DeltaSeconds: tick})
}

func (f *fixture) start(t *testing.T) {
	t.Helper()
	report := f.sim.Update(component.Input{StartGame: true}, component.FrameTime{})
	require.True(t, report.GameStarted)
	require.True(t, f.world.Playing())
}

func zombieBody(w *World, index int) *fakeBody {
	return w.Zombies.GetAt(index).Value.Body.(*fakeBody)
}

func vultureBody(w *World, index int) *fakeBody {
	return w.Vultures.GetAt(index).Value.Body.(*fakeBody)
}

func bulletBody(w *World, index int) *fakeBody {
	return w.Bullets.GetAt(index).Value.Body.(*fakeBody)
}

// constCurve always targets the same live count and counts evaluations.
type constCurve struct {
	target float64
	calls  int
}

func (c *constCurve) Target(float64) float64 {
	c.calls++
	return c.target
}
