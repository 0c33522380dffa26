package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/zombierun/common"
	"github.com/milk9111/zombierun/ecs/component"
)

// ActivateBullet fires a bullet from origin along direction. It panics with
// ecs.ErrStackEmpty when every bullet handle is in use.
func (w *World) ActivateBullet(origin, direction common.Vec) int {
	body := w.BulletBodies.Pop()
	index := w.Bullets.Add(component.Bullet{
		RemainingHits: w.bulletHits(),
		Body:          body,
	})
	body.SetRef(w.Bullets.RefAt(index))
	body.SetCollisions(true)
	body.SetPosition(origin)
	body.SetVelocity(direction.Normalized().Scale(w.Defs.Player.BulletSpeed))
	body.Play(component.ClipBullet)
	return index
}

func (w *World) bulletHits() int {
	if w.EnemiesKilled > w.Defs.Bullet.PenetrationUpgradeKills {
		return w.Defs.Bullet.UpgradedHits
	}
	return w.Defs.Bullet.Hits
}

func (w *World) ActivateZombie() int {
	body := w.ZombieBodies.Pop()
	zombie := component.Zombie{
		SpeedFactor: w.speedFactor(w.Defs.Zombie.MinSpeedFactor, w.Defs.Zombie.MaxSpeedFactor),
		Body:        body,
	}
	index := w.Zombies.Add(zombie)
	body.SetRef(w.Zombies.RefAt(index))
	body.SetCollisions(true)
	body.SetPosition(w.Defs.Zombie.Spawn)
	body.SetVelocity(w.zombieVelocity(&zombie))
	body.Play(component.ClipZombieRunning)
	return index
}

func (w *World) ActivateVulture() int {
	body := w.VultureBodies.Pop()
	vulture := component.Vulture{
		SpeedFactor: w.speedFactor(w.Defs.Vulture.MinSpeedFactor, w.Defs.Vulture.MaxSpeedFactor),
		Action:      component.VultureFlyingLeft,
		Body:        body,
	}
	index := w.Vultures.Add(vulture)
	lo, hi := w.Defs.Vulture.SpawnMin, w.Defs.Vulture.SpawnMax
	body.SetRef(w.Vultures.RefAt(index))
	body.SetCollisions(true)
	body.SetPosition(common.V(
		common.Lerp(lo.X, hi.X, w.Rand.Float64()),
		common.Lerp(lo.Y, hi.Y, w.Rand.Float64()),
	))
	body.SetVelocity(common.V(-w.vultureSpeed(&vulture), 0))
	body.Play(component.ClipVultureFlyingLeft)
	return index
}

// speedFactor samples uniformly from [lo, hi).
func (w *World) speedFactor(lo, hi float64) float64 {
	return common.Lerp(lo, hi, w.Rand.Float64())
}

func (w *World) DeactivateBullet(index int) {
	bullet := w.Bullets.Remove(index)
	parkBody(bullet.Body)
	w.BulletBodies.Push(bullet.Body)
}

func (w *World) DeactivateZombie(index int) {
	zombie := w.Zombies.Remove(index)
	parkBody(zombie.Body)
	w.ZombieBodies.Push(zombie.Body)
}

func (w *World) DeactivateVulture(index int) {
	vulture := w.Vultures.Remove(index)
	parkBody(vulture.Body)
	w.VultureBodies.Push(vulture.Body)
}

func parkBody(b component.Body) {
	b.SetRef(0)
	b.SetVelocity(common.Vec{})
	b.SetCollisions(false)
	b.SetPosition(offscreen)
	if sink, ok := b.(component.ContactSink); ok {
		sink.ZombieContacts().Clear()
		sink.VultureContacts().Clear()
	}
}

func (w *World) killZombie(z *component.Zombie) {
	z.IsDead = true
	z.Body.SetVelocity(w.zombieVelocity(z))
	z.Body.Play(component.ClipZombieDying)
	w.EnemiesKilled++
	w.Report.KilledZombies++
}

func (w *World) killVulture(v *component.Vulture) {
	v.IsDead = true
	v.Action = component.VultureDying
	v.Body.SetVelocity(w.Defs.Vulture.CorpseVelocity)
	v.Body.Play(component.ClipVultureDying)
	w.EnemiesKilled++
	w.Report.KilledVultures++
	w.Log.Debug("vulture killed", zap.Int("laps", v.LapsMade))
}

// zombieVelocity is relative to the player, who runs right at PlayerVelocity.
func (w *World) zombieVelocity(z *component.Zombie) common.Vec {
	if z.IsDead {
		return common.V(-w.PlayerVelocity, 0)
	}
	return common.V(-(w.Defs.Zombie.BaseSpeed*z.SpeedFactor + w.PlayerVelocity), 0)
}

func (w *World) vultureSpeed(v *component.Vulture) float64 {
	return w.Defs.Vulture.Speed * v.SpeedFactor
}
