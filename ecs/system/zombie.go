package system

// ZombieSystem culls zombies that left the view and keeps the rest moving
// in the player's frame of reference.
type ZombieSystem struct{}

func NewZombieSystem() *ZombieSystem {
	return &ZombieSystem{}
}

func (s *ZombieSystem) Update(w *World) {
	if w == nil {
		return
	}

	for index, zombie := range w.Zombies.All() {
		if !w.VisibilityBounds.Contains(zombie.Body.Position()) {
			w.DeactivateZombie(index)
			continue
		}
		zombie.Body.SetVelocity(w.zombieVelocity(zombie))
	}
}
