package system

import "go.uber.org/zap"

// ControlSystem applies the non-combat input and derives the scaled delta
// every later system consumes.
type ControlSystem struct{}

func NewControlSystem() *ControlSystem {
	return &ControlSystem{}
}

func (s *ControlSystem) Update(w *World) {
	if w == nil {
		return
	}
	in := w.Input

	if in.StartGame && !w.Playing() {
		restart := w.IsDead
		w.Reset()
		w.Started = true
		w.Report.GameStarted = true
		w.Log.Info("game started", zap.Bool("restart", restart))
	}
	if in.ToggleAutoFire {
		w.AutoFire = !w.AutoFire
		w.AutoFireCooldown = w.Defs.Bullet.AutoFireSeconds
	}
	if in.OverrideTimeFactor {
		w.TimeFactor = max(in.TimeFactor, 0)
	}

	w.DeltaSeconds = w.Time.DeltaSeconds * w.TimeFactor
	if w.Playing() {
		w.ElapsedSeconds += w.DeltaSeconds
	}
}
