// Command simrun plays the game headless with a scripted shooter and logs
// how each run went. It is used to tune definitions and wave scripts
// without opening a window.
package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/milk9111/zombierun/ecs/system"
	"github.com/milk9111/zombierun/obj"
	"github.com/milk9111/zombierun/prefabs"
)

func main() {
	defsName := flag.String("definitions", prefabs.DefinitionsFile, "definitions file name")
	dir := flag.String("prefabs", "prefabs", "directory whose files shadow the embedded prefabs")
	seed := flag.Int64("seed", 1, "seed of the first run")
	runs := flag.Int("runs", 5, "number of runs, seeded seed..seed+runs-1")
	seconds := flag.Float64("seconds", 300, "give up on a run after this many simulated seconds")
	autoFire := flag.Bool("autofire", false, "turn auto-fire on instead of aiming")
	debug := flag.Bool("debug", false, "log every spawn and kill")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	prefabs.Dir = *dir
	defs, err := prefabs.LoadDefinitions(*defsName)
	if err != nil {
		logger.Fatal("load definitions", zap.Error(err))
	}

	var total summary
	for i := 0; i < *runs; i++ {
		s, err := play(defs, *seed+int64(i), *seconds, *autoFire, logger)
		if err != nil {
			logger.Fatal("run", zap.Int64("seed", *seed+int64(i)), zap.Error(err))
		}
		logger.Info("run finished", s.fields()...)
		total.add(s)
	}
	if *runs > 1 {
		logger.Info("average", total.average().fields()...)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

// play runs one game on a fresh chipmunk world until the player dies or
// the time limit is reached.
func play(defs *prefabs.Definitions, seed int64, limit float64, autoFire bool, logger *zap.Logger) (summary, error) {
	cw := obj.NewCollisionWorld(defs)
	sim, err := system.New(defs, cw.Bodies(),
		system.WithSeed(seed),
		system.WithLogger(logger.Named("sim").With(zap.Int64("seed", seed))))
	if err != nil {
		return summary{}, err
	}

	s := summary{Seed: seed}
	sh := &shooter{autoFire: autoFire}
	frame := frameClock{dt: 1.0 / 60}
	for !s.Died && sim.World().ElapsedSeconds < limit {
		report := sim.Update(sh.decide(sim.World()), frame.next())
		s.record(report)
	}
	w := sim.World()
	s.Seconds = w.ElapsedSeconds
	s.BulletsLeft = w.AvailableBullets
	s.DroppedContacts = cw.DroppedContacts()
	return s, nil
}
