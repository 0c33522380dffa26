package main

import (
	"go.uber.org/zap"

	"github.com/milk9111/zombierun/ecs/component"
)

type summary struct {
	Seed            int64
	Seconds         float64
	Died            bool
	Fired           int
	Collected       int
	BulletsLeft     int
	ZombiesSpawned  int
	VulturesSpawned int
	ZombiesKilled   int
	VulturesKilled  int
	Upgraded        bool
	DroppedContacts int

	// Set on totals only.
	Runs     int
	Deaths   int
	Upgrades int
}

func (s *summary) record(r component.Report) {
	if r.FiredBullet {
		s.Fired++
	}
	s.Collected += r.CollectedBullets
	s.ZombiesSpawned += r.SpawnedZombies
	s.VulturesSpawned += r.SpawnedVultures
	s.ZombiesKilled += r.KilledZombies
	s.VulturesKilled += r.KilledVultures
	s.Upgraded = s.Upgraded || r.BulletPenetrationUpgraded
	s.Died = s.Died || r.Died
}

// add folds one finished run into a total.
func (s *summary) add(o summary) {
	s.Runs++
	if o.Died {
		s.Deaths++
	}
	if o.Upgraded {
		s.Upgrades++
	}
	s.Seconds += o.Seconds
	s.Fired += o.Fired
	s.Collected += o.Collected
	s.BulletsLeft += o.BulletsLeft
	s.ZombiesSpawned += o.ZombiesSpawned
	s.VulturesSpawned += o.VulturesSpawned
	s.ZombiesKilled += o.ZombiesKilled
	s.VulturesKilled += o.VulturesKilled
	s.DroppedContacts += o.DroppedContacts
}

// average divides the accumulated counters by the number of runs. Deaths
// and upgrades stay counts out of Runs.
func (s summary) average() summary {
	n := s.Runs
	if n <= 0 {
		return s
	}
	return summary{
		Runs:            n,
		Deaths:          s.Deaths,
		Upgrades:        s.Upgrades,
		Seconds:         s.Seconds / float64(n),
		Fired:           s.Fired / n,
		Collected:       s.Collected / n,
		BulletsLeft:     s.BulletsLeft / n,
		ZombiesSpawned:  s.ZombiesSpawned / n,
		VulturesSpawned: s.VulturesSpawned / n,
		ZombiesKilled:   s.ZombiesKilled / n,
		VulturesKilled:  s.VulturesKilled / n,
		DroppedContacts: s.DroppedContacts / n,
	}
}

func (s summary) fields() []zap.Field {
	fields := []zap.Field{zap.Float64("seconds", s.Seconds)}
	if s.Runs > 0 {
		fields = append(fields,
			zap.Int("runs", s.Runs),
			zap.Int("deaths", s.Deaths),
			zap.Float64("death_ratio", float64(s.Deaths)/float64(s.Runs)),
			zap.Int("upgrades", s.Upgrades))
	} else {
		fields = append(fields,
			zap.Int64("seed", s.Seed),
			zap.Bool("died", s.Died),
			zap.Bool("upgraded", s.Upgraded))
	}
	return append(fields,
		zap.Int("fired", s.Fired),
		zap.Int("collected", s.Collected),
		zap.Int("bullets_left", s.BulletsLeft),
		zap.Int("zombies_spawned", s.ZombiesSpawned),
		zap.Int("vultures_spawned", s.VulturesSpawned),
		zap.Int("zombies_killed", s.ZombiesKilled),
		zap.Int("vultures_killed", s.VulturesKilled),
		zap.Int("dropped_contacts", s.DroppedContacts),
	)
}
