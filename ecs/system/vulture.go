package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/zombierun/common"
	"github.com/milk9111/zombierun/ecs/component"
)

// VultureSystem drives the vulture behaviour machine:
//
//	FlyingLeft -> FlyingRight -> FlyingLeft ... -> PreparingDive -> Diving
//
// A vulture turns at the patrol edges, dives at the player after Laps full
// passes, and is removed once its dying clip has finished.
type VultureSystem struct{}

func NewVultureSystem() *VultureSystem {
	return &VultureSystem{}
}

func (s *VultureSystem) Update(w *World) {
	if w == nil {
		return
	}

	for index, vulture := range w.Vultures.All() {
		body := vulture.Body
		pos := body.Position()
		if !w.VisibilityBounds.Contains(pos) {
			w.DeactivateVulture(index)
			continue
		}

		speed := w.vultureSpeed(vulture)
		switch vulture.Action {
		case component.VultureFlyingLeft:
			if pos.X < w.VultureMinX {
				vulture.Action = component.VultureFlyingRight
				body.SetVelocity(common.V(speed, 0))
				body.Play(component.ClipVultureFlyingRight)
			}
		case component.VultureFlyingRight:
			if pos.X > w.VultureMaxX {
				vulture.LapsMade++
				if vulture.LapsMade < w.Defs.Vulture.Laps {
					vulture.Action = component.VultureFlyingLeft
				} else {
					vulture.Action = component.VulturePreparingDive
				}
				body.SetVelocity(common.V(-speed, 0))
				body.Play(component.ClipVultureFlyingLeft)
			}
		case component.VulturePreparingDive:
			if pos.X <= w.VultureDiveX {
				vulture.Action = component.VultureDiving
				heading := w.Player.Center().Sub(pos).Normalized()
				body.SetVelocity(heading.Scale(speed))
				body.Play(component.ClipVultureDiving)
				w.Log.Debug("vulture diving", zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
			}
		case component.VultureDying:
			if body.Finished(component.ClipVultureDying) {
				w.DeactivateVulture(index)
			}
		}
	}
}
