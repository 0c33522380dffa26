package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/zombierun/common"
)

const DefinitionsFile = "definitions.yaml"

// Definitions is the gameplay tuning of one game. Capacities are read once
// when the collaborators are built; everything else may be swapped between
// ticks.
type Definitions struct {
	Player   PlayerDefs   `yaml:"player"`
	Zombie   ZombieDefs   `yaml:"zombie"`
	Vulture  VultureDefs  `yaml:"vulture"`
	Bullet   BulletDefs   `yaml:"bullet"`
	Waves    WaveDefs     `yaml:"waves"`
	Capacity CapacityDefs `yaml:"capacity"`
	Bounds   BoundsDefs   `yaml:"bounds"`
}

type PlayerDefs struct {
	Speed             float64    `yaml:"speed"`
	StartingBullets   int        `yaml:"starting_bullets"`
	BulletSpeed       float64    `yaml:"bullet_speed"`
	Center            common.Vec `yaml:"center"`
	StraightNozzle    common.Vec `yaml:"straight_nozzle"`
	DiagonalNozzle    common.Vec `yaml:"diagonal_nozzle"`
	DiagonalDirection common.Vec `yaml:"diagonal_direction"`
}

type ZombieDefs struct {
	BaseSpeed          float64    `yaml:"base_speed"`
	MinSpeedFactor     float64    `yaml:"min_speed_factor"`
	MaxSpeedFactor     float64    `yaml:"max_speed_factor"`
	SpawnTickSeconds   float64    `yaml:"spawn_tick_seconds"`
	DoubleBulletChance float64    `yaml:"double_bullet_chance"`
	Spawn              common.Vec `yaml:"spawn"`
}

type VultureDefs struct {
	Speed            float64    `yaml:"speed"`
	MinSpeedFactor   float64    `yaml:"min_speed_factor"`
	MaxSpeedFactor   float64    `yaml:"max_speed_factor"`
	SpawnTickSeconds float64    `yaml:"spawn_tick_seconds"`
	CorpseVelocity   common.Vec `yaml:"corpse_velocity"`
	SpawnMin         common.Vec `yaml:"spawn_min"`
	SpawnMax         common.Vec `yaml:"spawn_max"`
	DyingSeconds     float64    `yaml:"dying_seconds"`
	// PatrolMargin is how far inside the view edges a vulture turns around.
	PatrolMargin float64 `yaml:"patrol_margin"`
	// DiveLine is the x of the dive threshold as a fraction of the view width.
	DiveLine float64 `yaml:"dive_line"`
	Laps     int     `yaml:"laps"`
}

type BulletDefs struct {
	Hits                    int     `yaml:"hits"`
	UpgradedHits            int     `yaml:"upgraded_hits"`
	PenetrationUpgradeKills int     `yaml:"penetration_upgrade_kills"`
	AutoFireSeconds         float64 `yaml:"auto_fire_seconds"`
}

type WaveDefs struct {
	Zombie  Wave `yaml:"zombie"`
	Vulture Wave `yaml:"vulture"`
}

// Wave shapes the target live count of a category over elapsed seconds.
// A non-empty Script names a tengo file under scripts/ that replaces the
// builtin curve.
type Wave struct {
	Period   float64 `yaml:"period"`
	Exponent float64 `yaml:"exponent"`
	MaxCount float64 `yaml:"max_count"`
	Quantize bool    `yaml:"quantize"`
	Script   string  `yaml:"script"`
}

type CapacityDefs struct {
	Bullets  int `yaml:"bullets"`
	Zombies  int `yaml:"zombies"`
	Vultures int `yaml:"vultures"`
	Contacts int `yaml:"contacts"`
}

// BoundsDefs describes the camera view. Entities are culled once they leave
// the view grown by Margin.
type BoundsDefs struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
}

// Visibility is the culling rectangle around the camera at the origin.
func (b BoundsDefs) Visibility() common.Rect {
	return common.CenteredRect(common.Vec{}, b.Width+b.Margin, b.Height+b.Margin)
}

func DefaultDefinitions() *Definitions {
	return &Definitions{
		Player: PlayerDefs{
			Speed:             50,
			StartingBullets:   3,
			BulletSpeed:       500,
			Center:            common.V(-160, -90),
			StraightNozzle:    common.V(-146, -88),
			DiagonalNozzle:    common.V(-150, -80),
			DiagonalDirection: common.V(1, 1),
		},
		Zombie: ZombieDefs{
			BaseSpeed:          50,
			MinSpeedFactor:     0.8,
			MaxSpeedFactor:     1.5,
			SpawnTickSeconds:   0.25,
			DoubleBulletChance: 0.4,
			Spawn:              common.V(260, -90),
		},
		Vulture: VultureDefs{
			Speed:            100,
			MinSpeedFactor:   0.8,
			MaxSpeedFactor:   1.5,
			SpawnTickSeconds: 0.25,
			CorpseVelocity:   common.V(50, 50),
			SpawnMin:         common.V(240, 30),
			SpawnMax:         common.V(260, 100),
			DyingSeconds:     0.6,
			PatrolMargin:     5,
			DiveLine:         0.15,
			Laps:             2,
		},
		Bullet: BulletDefs{
			Hits:                    1,
			UpgradedHits:            2,
			PenetrationUpgradeKills: 500,
			AutoFireSeconds:         0.35,
		},
		Waves: WaveDefs{
			Zombie: Wave{Period: 15, Exponent: 1.6, MaxCount: 3},
			Vulture: Wave{
				Period:   35,
				Exponent: 1.7,
				MaxCount: 1,
				Quantize: true,
				Script:   "vulture_wave.tengo",
			},
		},
		Capacity: CapacityDefs{
			Bullets:  32,
			Zombies:  64,
			Vultures: 8,
			Contacts: 10,
		},
		Bounds: BoundsDefs{Width: 480, Height: 270, Margin: 50},
	}
}

// LoadDefinitions decodes name over the defaults and validates the result.
func LoadDefinitions(name string) (*Definitions, error) {
	defs := DefaultDefinitions()
	if err := LoadSpecInto(name, defs); err != nil {
		return nil, err
	}
	if err := defs.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return defs, nil
}

// Validate reports every out-of-range value at once.
func (d *Definitions) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(d.Player.Speed >= 0, "player.speed must not be negative")
	check(d.Player.StartingBullets >= 0, "player.starting_bullets must not be negative")
	check(d.Player.BulletSpeed > 0, "player.bullet_speed must be positive")
	check(d.Player.DiagonalDirection.Len() > 0, "player.diagonal_direction must not be zero")

	check(d.Zombie.BaseSpeed >= 0, "zombie.base_speed must not be negative")
	checkFactors(check, "zombie", d.Zombie.MinSpeedFactor, d.Zombie.MaxSpeedFactor)
	check(d.Zombie.SpawnTickSeconds > 0, "zombie.spawn_tick_seconds must be positive")
	check(d.Zombie.DoubleBulletChance >= 0 && d.Zombie.DoubleBulletChance <= 1,
		"zombie.double_bullet_chance %v outside [0, 1]", d.Zombie.DoubleBulletChance)

	check(d.Vulture.Speed >= 0, "vulture.speed must not be negative")
	checkFactors(check, "vulture", d.Vulture.MinSpeedFactor, d.Vulture.MaxSpeedFactor)
	check(d.Vulture.SpawnTickSeconds > 0, "vulture.spawn_tick_seconds must be positive")
	check(d.Vulture.SpawnMin.X <= d.Vulture.SpawnMax.X && d.Vulture.SpawnMin.Y <= d.Vulture.SpawnMax.Y,
		"vulture.spawn_min must not exceed vulture.spawn_max")
	check(d.Vulture.DyingSeconds >= 0, "vulture.dying_seconds must not be negative")
	check(d.Vulture.DiveLine >= 0 && d.Vulture.DiveLine <= 0.5,
		"vulture.dive_line %v outside [0, 0.5]", d.Vulture.DiveLine)
	check(d.Vulture.Laps >= 1, "vulture.laps must be at least 1")

	check(d.Bullet.Hits >= 1, "bullet.hits must be at least 1")
	check(d.Bullet.UpgradedHits >= 1, "bullet.upgraded_hits must be at least 1")
	check(d.Bullet.PenetrationUpgradeKills >= 0, "bullet.penetration_upgrade_kills must not be negative")
	check(d.Bullet.AutoFireSeconds > 0, "bullet.auto_fire_seconds must be positive")

	waves := []struct {
		name string
		wave Wave
	}{{"zombie", d.Waves.Zombie}, {"vulture", d.Waves.Vulture}}
	for _, w := range waves {
		check(w.wave.Period > 0, "waves.%s.period must be positive", w.name)
		check(w.wave.MaxCount >= 0, "waves.%s.max_count must not be negative", w.name)
	}

	check(d.Capacity.Bullets > 0, "capacity.bullets must be positive")
	check(d.Capacity.Zombies > 0, "capacity.zombies must be positive")
	check(d.Capacity.Vultures > 0, "capacity.vultures must be positive")
	check(d.Capacity.Contacts > 0, "capacity.contacts must be positive")

	check(d.Bounds.Width > 0 && d.Bounds.Height > 0, "bounds must have a positive size")
	check(d.Bounds.Margin >= 0, "bounds.margin must not be negative")

	return errors.Join(errs...)
}

func checkFactors(check func(bool, string, ...any), name string, lo, hi float64) {
	check(lo > 0, "%s.min_speed_factor must be positive", name)
	check(lo <= hi, "%s.min_speed_factor %v exceeds max_speed_factor %v", name, lo, hi)
}
