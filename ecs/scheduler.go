package ecs

// System advances one concern of a world each tick.
type System[W any] interface {
	Update(w W)
}

// Scheduler runs systems in the order they were given.
type Scheduler[W any] struct {
	systems []System[W]
}

func NewScheduler[W any](systems ...System[W]) *Scheduler[W] {
	copied := append([]System[W](nil), systems...)
	return &Scheduler[W]{systems: copied}
}

func (s *Scheduler[W]) Update(w W) {
	for _, system := range s.systems {
		system.Update(w)
	}
}
