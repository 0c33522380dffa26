package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/zombierun/ecs/component"
)

// BulletSystem charges each bullet for the enemies it newly killed and
// retires bullets that are spent or out of bounds.
type BulletSystem struct{}

func NewBulletSystem() *BulletSystem {
	return &BulletSystem{}
}

func (s *BulletSystem) Update(w *World) {
	if w == nil {
		return
	}
	killsBefore := w.EnemiesKilled

	it := w.Bullets.Iterate()
	for it.Next() {
		node := it.Current()
		bullet := &node.Value
		zombies := bullet.Body.ZombieContacts()
		vultures := bullet.Body.VultureContacts()

		s.hitZombies(w, bullet, zombies.Items())
		if bullet.RemainingHits > 0 {
			s.hitVultures(w, bullet, vultures.Items())
		}
		zombies.Clear()
		vultures.Clear()

		if bullet.RemainingHits <= 0 || !w.VisibilityBounds.Contains(bullet.Body.Position()) {
			w.DeactivateBullet(node.Index)
		}
	}

	threshold := w.Defs.Bullet.PenetrationUpgradeKills
	if killsBefore <= threshold && w.EnemiesKilled > threshold {
		w.Report.BulletPenetrationUpgraded = true
		w.Log.Info("bullet penetration upgraded", zap.Int("kills", w.EnemiesKilled))
	}
}

func (s *BulletSystem) hitZombies(w *World, bullet *component.Bullet, contacts []component.EnemyBody) {
	for _, body := range contacts {
		node, ok := w.Zombies.Resolve(body.Ref())
		if !ok || node.Value.IsDead {
			continue
		}
		w.killZombie(&node.Value)
		bullet.RemainingHits--
		if bullet.RemainingHits <= 0 {
			return
		}
	}
}

func (s *BulletSystem) hitVultures(w *World, bullet *component.Bullet, contacts []component.EnemyBody) {
	for _, body := range contacts {
		node, ok := w.Vultures.Resolve(body.Ref())
		if !ok || node.Value.IsDead {
			continue
		}
		w.killVulture(&node.Value)
		bullet.RemainingHits--
		if bullet.RemainingHits <= 0 {
			return
		}
	}
}
