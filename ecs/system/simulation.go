package system

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/milk9111/zombierun/ecs"
	"github.com/milk9111/zombierun/ecs/component"
	"github.com/milk9111/zombierun/prefabs"
)

// Simulation is the per-tick entry point of the game.
type Simulation struct {
	world     *World
	scheduler *ecs.Scheduler[*World]

	zombieSpawn  *SpawnSystem
	vultureSpawn *SpawnSystem
	loadScript   func(name string) ([]byte, error)
}

type Option func(*options)

type options struct {
	log        *zap.Logger
	rng        *rand.Rand
	loadScript func(name string) ([]byte, error)
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithSeed makes every random draw of the simulation reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithScriptLoader replaces prefabs.LoadScript for wave scripts.
func WithScriptLoader(load func(name string) ([]byte, error)) Option {
	return func(o *options) { o.loadScript = load }
}

func New(defs *prefabs.Definitions, bodies Bodies, opts ...Option) (*Simulation, error) {
	o := options{loadScript: prefabs.LoadScript}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if bodies.Player == nil {
		return nil, fmt.Errorf("system: simulation needs a player body")
	}

	s := &Simulation{
		zombieSpawn:  NewSpawnSystem(CategoryZombie, nil),
		vultureSpawn: NewSpawnSystem(CategoryVulture, nil),
		loadScript:   o.loadScript,
	}
	if err := s.loadCurves(defs); err != nil {
		return nil, err
	}

	s.world = NewWorld(defs, bodies, o.rng, o.log)
	s.scheduler = ecs.NewScheduler[*World](
		NewControlSystem(),
		NewFireSystem(),
		NewPlayerContactSystem(),
		s.zombieSpawn,
		s.vultureSpawn,
		NewBulletSystem(),
		NewZombieSystem(),
		NewVultureSystem(),
		NewPhysicsSystem(),
	)
	return s, nil
}

func (s *Simulation) loadCurves(defs *prefabs.Definitions) error {
	zombie, err := LoadCurve(defs.Waves.Zombie, s.loadScript)
	if err != nil {
		return fmt.Errorf("system: zombie wave: %w", err)
	}
	vulture, err := LoadCurve(defs.Waves.Vulture, s.loadScript)
	if err != nil {
		return fmt.Errorf("system: vulture wave: %w", err)
	}
	s.zombieSpawn.Curve = zombie
	s.vultureSpawn.Curve = vulture
	return nil
}

// Update runs one tick and returns what happened during it.
func (s *Simulation) Update(input component.Input, frame component.FrameTime) component.Report {
	w := s.world
	w.Input = input
	w.Time = frame
	w.Report = component.Report{}
	s.scheduler.Update(w)
	return w.Report
}

// Reset returns the game to its idle state.
func (s *Simulation) Reset() {
	s.world.Reset()
	s.world.Log.Info("game reset")
}

// SetDefinitions validates defs and swaps them in at the next tick boundary.
// On error the running tuning is kept.
func (s *Simulation) SetDefinitions(defs *prefabs.Definitions) error {
	if err := defs.Validate(); err != nil {
		return fmt.Errorf("system: definitions: %w", err)
	}
	if err := s.loadCurves(defs); err != nil {
		return err
	}
	s.world.SetDefinitions(defs)
	s.world.Log.Info("definitions reloaded")
	return nil
}

func (s *Simulation) World() *World {
	return s.world
}
