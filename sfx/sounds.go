package sfx

import (
	"time"

	"github.com/milk9111/zombierun/ecs/component"
)

type Sound uint8

const (
	SoundStart Sound = iota
	SoundFire
	SoundCollect
	SoundZombieKilled
	SoundVultureKilled
	SoundUpgrade
	SoundDeath
	soundCount
)

var soundNames = [...]string{
	SoundStart:         "start",
	SoundFire:          "fire",
	SoundCollect:       "collect",
	SoundZombieKilled:  "zombie_killed",
	SoundVultureKilled: "vulture_killed",
	SoundUpgrade:       "upgrade",
	SoundDeath:         "death",
}

func (s Sound) String() string {
	if int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

const ms = time.Millisecond

var scores = [soundCount][]note{
	SoundStart:         {{waveSine, 440, 80 * ms}, {waveSine, 660, 120 * ms}},
	SoundFire:          {{waveSquare, 880, 60 * ms}},
	SoundCollect:       {{waveSine, 660, 50 * ms}, {waveSine, 990, 70 * ms}},
	SoundZombieKilled:  {{waveSquare, 160, 120 * ms}},
	SoundVultureKilled: {{waveSaw, 320, 60 * ms}, {waveSaw, 240, 100 * ms}},
	SoundUpgrade:       {{waveSine, 523, 80 * ms}, {waveSine, 659, 80 * ms}, {waveSine, 784, 160 * ms}},
	SoundDeath:         {{waveSaw, 220, 150 * ms}, {waveSaw, 110, 350 * ms}},
}

// ForReport lists the sounds one tick's report triggers, in play order.
func ForReport(r component.Report) []Sound {
	var out []Sound
	if r.GameStarted {
		out = append(out, SoundStart)
	}
	if r.FiredBullet {
		out = append(out, SoundFire)
	}
	if r.CollectedBullets > 0 {
		out = append(out, SoundCollect)
	}
	if r.KilledZombies > 0 {
		out = append(out, SoundZombieKilled)
	}
	if r.KilledVultures > 0 {
		out = append(out, SoundVultureKilled)
	}
	if r.BulletPenetrationUpgraded {
		out = append(out, SoundUpgrade)
	}
	if r.Died {
		out = append(out, SoundDeath)
	}
	return out
}
