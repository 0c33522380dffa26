package system

import (
	"github.com/milk9111/zombierun/common"
	"github.com/milk9111/zombierun/ecs/component"
)

var straight = common.V(1, 0)

// FireSystem turns fire input into bullets. Auto-fire shoots straight once
// per interval while a live zombie is on the field.
type FireSystem struct{}

func NewFireSystem() *FireSystem {
	return &FireSystem{}
}

func (s *FireSystem) Update(w *World) {
	if w == nil {
		return
	}
	player := w.Defs.Player

	if w.Input.FireStraight {
		s.fire(w, player.StraightNozzle, straight)
	}
	if w.Input.FireDiagonally && s.fire(w, player.DiagonalNozzle, player.DiagonalDirection) {
		w.Player.Play(component.ClipPlayerShootingUp)
	}

	if !w.AutoFire {
		return
	}
	w.AutoFireCooldown += w.DeltaSeconds
	if w.AutoFireCooldown >= w.Defs.Bullet.AutoFireSeconds && hasLiveZombie(w) && s.fire(w, player.StraightNozzle, straight) {
		w.AutoFireCooldown = 0
	}
}

func (s *FireSystem) fire(w *World, origin, direction common.Vec) bool {
	if !w.Playing() || w.AvailableBullets <= 0 {
		return false
	}
	w.AvailableBullets--
	w.ActivateBullet(origin, direction)
	w.Report.FiredBullet = true
	return true
}

func hasLiveZombie(w *World) bool {
	for _, z := range w.Zombies.All() {
		if !z.IsDead {
			return true
		}
	}
	return false
}
