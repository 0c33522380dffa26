package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/zombierun/common"
)

// Category selects which enemy pool a SpawnSystem feeds.
type Category uint8

const (
	CategoryZombie Category = iota
	CategoryVulture
)

func (c Category) String() string {
	if c == CategoryVulture {
		return "vulture"
	}
	return "zombie"
}

// failingCurve is a curve that can fall back after an evaluation error.
type failingCurve interface {
	TakeErr() error
}

// SpawnSystem runs the spawn control loop of one category. Every tick
// seconds it compares the live count against the curve's target and
// activates at most one entity.
type SpawnSystem struct {
	Category Category
	Curve    Curve
}

func NewSpawnSystem(category Category, curve Curve) *SpawnSystem {
	return &SpawnSystem{Category: category, Curve: curve}
}

func (s *SpawnSystem) Update(w *World) {
	if w == nil || s == nil || s.Curve == nil || !w.Playing() {
		return
	}

	cooldown, tick := &w.ZombieCooldown, w.Defs.Zombie.SpawnTickSeconds
	if s.Category == CategoryVulture {
		cooldown, tick = &w.VultureCooldown, w.Defs.Vulture.SpawnTickSeconds
	}
	if tick <= 0 {
		return
	}

	*cooldown += w.DeltaSeconds
	for *cooldown >= tick {
		*cooldown -= tick
		s.evaluate(w)
	}
}

func (s *SpawnSystem) evaluate(w *World) {
	live, capacity := w.Zombies.Count(), w.Zombies.Cap()
	if s.Category == CategoryVulture {
		live, capacity = w.Vultures.Count(), w.Vultures.Cap()
	}
	if live >= capacity {
		return
	}

	target := min(s.Curve.Target(w.ElapsedSeconds), float64(capacity))
	if fc, ok := s.Curve.(failingCurve); ok {
		if err := fc.TakeErr(); err != nil {
			w.Log.Warn("wave script failed, using builtin curve",
				zap.Stringer("category", s.Category),
				zap.Float64("elapsed", w.ElapsedSeconds),
				zap.Error(err))
		}
	}
	if w.Rand.Float64() >= SpawnProbability(live, target) {
		return
	}

	if s.Category == CategoryVulture {
		w.ActivateVulture()
		w.Report.SpawnedVultures++
	} else {
		w.ActivateZombie()
		w.Report.SpawnedZombies++
	}
	w.Log.Debug("spawned",
		zap.Stringer("category", s.Category),
		zap.Int("live", live+1),
		zap.Float64("target", target),
		zap.Float64("elapsed", w.ElapsedSeconds))
}

// SpawnProbability is 1 - clamp01(live/target). A target of zero or less
// never spawns.
func SpawnProbability(live int, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return 1 - common.Clamp01(float64(live)/target)
}
