package system

// PlayerContactSystem settles what the player touched during the last
// physics step. Dead zombies pay out ammunition; anything alive kills.
type PlayerContactSystem struct{}

func NewPlayerContactSystem() *PlayerContactSystem {
	return &PlayerContactSystem{}
}

func (s *PlayerContactSystem) Update(w *World) {
	if w == nil || w.Player == nil {
		return
	}
	zombies := w.Player.ZombieContacts()
	vultures := w.Player.VultureContacts()
	defer zombies.Clear()
	defer vultures.Clear()

	if !w.Playing() {
		return
	}

	for _, body := range zombies.Items() {
		node, ok := w.Zombies.Resolve(body.Ref())
		if !ok {
			continue
		}
		if !node.Value.IsDead {
			w.killPlayer()
			return
		}
		collected := 1
		if w.Rand.Float64() < w.Defs.Zombie.DoubleBulletChance {
			collected = 2
		}
		w.AvailableBullets += collected
		w.Report.CollectedBullets += collected
		w.Report.CollectedBulletsSource = body.Position()
	}

	for _, body := range vultures.Items() {
		node, ok := w.Vultures.Resolve(body.Ref())
		if ok && !node.Value.IsDead {
			w.killPlayer()
			return
		}
	}
}
