package system

// PhysicsSystem advances the collaborator exactly once per tick, after all
// gameplay writes for the tick are done.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *World) {
	if w == nil || w.Physics == nil {
		return
	}
	w.Physics.Step(w.DeltaSeconds)
}
