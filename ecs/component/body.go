package component

import (
	"github.com/milk9111/zombierun/common"
	"github.com/milk9111/zombierun/ecs"
)

// Body is the physics/render object an entity record borrows while it is
// active. The body stores the ref of the record that owns it; the zero Ref
// means the body is parked on its available stack.
type Body interface {
	Ref() ecs.Ref
	SetRef(ref ecs.Ref)

	Position() common.Vec
	SetPosition(pos common.Vec)
	Velocity() common.Vec
	SetVelocity(vel common.Vec)

	// SetCollisions toggles trigger detection for the body.
	SetCollisions(enabled bool)
	Play(clip Clip)
}

// EnemyBody is the handle of a zombie or a vulture.
type EnemyBody interface {
	Body
	// Finished reports whether a non-looping clip has played to its end.
	Finished(clip Clip) bool
}

// ContactSink collects the enemies a body touched during the last physics step.
type ContactSink interface {
	ZombieContacts() *ecs.Buffer[EnemyBody]
	VultureContacts() *ecs.Buffer[EnemyBody]
}

type BulletBody interface {
	Body
	ContactSink
}

// PlayerBody is the player's handle. The player never moves; the world
// scrolls past it at the player's velocity.
type PlayerBody interface {
	ContactSink
	Center() common.Vec
	Play(clip Clip)
}

// Stepper advances physics and animation by dt seconds.
type Stepper interface {
	Step(dt float64)
}
