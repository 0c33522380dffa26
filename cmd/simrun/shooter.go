package main

import (
	"github.com/milk9111/zombierun/ecs/component"
	"github.com/milk9111/zombierun/ecs/system"
)

// straightRange is how close a zombie may come before the shooter fires.
const straightRange = 110.0

// shooter is a simple player: it shoots the nearest zombie once it is in
// range and any vulture about to dive, one bullet in flight at a time.
type shooter struct {
	autoFire bool
	started  bool
}

func (s *shooter) decide(w *system.World) component.Input {
	var in component.Input
	if !s.started {
		s.started = true
		in.StartGame = true
		in.ToggleAutoFire = s.autoFire && !w.AutoFire
		return in
	}
	if !w.Playing() || w.AvailableBullets == 0 || w.Bullets.Count() > 0 {
		return in
	}

	px := w.Player.Center().X
	for _, v := range w.Vultures.All() {
		if v.IsDead {
			continue
		}
		if v.Action == component.VulturePreparingDive || v.Action == component.VultureDiving {
			in.FireDiagonally = true
			return in
		}
	}
	if s.autoFire {
		return in
	}
	for _, z := range w.Zombies.All() {
		if z.IsDead {
			continue
		}
		if d := z.Body.Position().X - px; d > 0 && d < straightRange {
			in.FireStraight = true
			return in
		}
	}
	return in
}

type frameClock struct {
	dt    float64
	total float64
}

func (c *frameClock) next() component.FrameTime {
	c.total += c.dt
	return component.FrameTime{DeltaSeconds: c.dt, TotalSeconds: c.total}
}
