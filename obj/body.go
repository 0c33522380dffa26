package obj

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/zombierun/common"
	"github.com/milk9111/zombierun/ecs"
	"github.com/milk9111/zombierun/ecs/component"
)

// body is a chipmunk body with one sensor box. Every body in the game is a
// trigger; nothing collides physically.
type body struct {
	cpBody *cp.Body
	shape  *cp.Shape
	anim   *Animator
	ref    ecs.Ref
	width  float64
	height float64
	active bool
}

func newBody(space *cp.Space, width, height float64, ct cp.CollisionType, clips map[component.Clip]ClipSpec) *body {
	cpBody := cp.NewBody(1, cp.INFINITY)
	shape := cp.NewBox(cpBody, width, height, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(ct)
	shape.SetFilter(cp.SHAPE_FILTER_NONE)

	space.AddBody(cpBody)
	space.AddShape(shape)

	return &body{
		cpBody: cpBody,
		shape:  shape,
		anim:   NewAnimator(clips),
		width:  width,
		height: height,
	}
}

func (b *body) Ref() ecs.Ref {
	return b.ref
}

func (b *body) SetRef(ref ecs.Ref) {
	b.ref = ref
}

func (b *body) Position() common.Vec {
	p := b.cpBody.Position()
	return common.V(p.X, p.Y)
}

func (b *body) SetPosition(pos common.Vec) {
	b.cpBody.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
}

func (b *body) Velocity() common.Vec {
	v := b.cpBody.Velocity()
	return common.V(v.X, v.Y)
}

func (b *body) SetVelocity(vel common.Vec) {
	b.cpBody.SetVelocity(vel.X, vel.Y)
}

func (b *body) SetCollisions(enabled bool) {
	b.active = enabled
	if enabled {
		b.shape.SetFilter(cp.SHAPE_FILTER_ALL)
	} else {
		b.shape.SetFilter(cp.SHAPE_FILTER_NONE)
	}
}

func (b *body) Play(clip component.Clip) {
	b.anim.Play(clip)
}

func (b *body) Finished(clip component.Clip) bool {
	return b.anim.Finished(clip)
}

// Active reports whether the body is in play and should be drawn.
func (b *body) Active() bool {
	return b.active
}

func (b *body) Animator() *Animator {
	return b.anim
}

// Rect is the body's box in world space.
func (b *body) Rect() common.Rect {
	return common.CenteredRect(b.Position(), b.width, b.height)
}

type contacts struct {
	zombies  *ecs.Buffer[component.EnemyBody]
	vultures *ecs.Buffer[component.EnemyBody]
}

func newContacts(capacity int) contacts {
	return contacts{
		zombies:  ecs.NewBuffer[component.EnemyBody](capacity),
		vultures: ecs.NewBuffer[component.EnemyBody](capacity),
	}
}

func (c contacts) ZombieContacts() *ecs.Buffer[component.EnemyBody] {
	return c.zombies
}

func (c contacts) VultureContacts() *ecs.Buffer[component.EnemyBody] {
	return c.vultures
}

// Dropped is the number of contacts lost to full buffers.
func (c contacts) Dropped() int {
	return c.zombies.Dropped() + c.vultures.Dropped()
}
