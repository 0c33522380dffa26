package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/milk9111/zombierun/config"
	"github.com/milk9111/zombierun/ecs/component"
	"github.com/milk9111/zombierun/ecs/system"
	"github.com/milk9111/zombierun/hud"
	"github.com/milk9111/zombierun/obj"
	"github.com/milk9111/zombierun/prefabs"
	"github.com/milk9111/zombierun/sfx"
)

type Game struct {
	cfg   *config.Config
	log   *zap.Logger
	debug bool

	defs        *prefabs.Definitions
	defsModTime time.Time
	collisions  *obj.CollisionWorld
	sim         *system.Simulation
	hud         *hud.HUD
	camera      *obj.Camera
	sounds      *sfx.Bank
	watcher     *prefabs.Watcher
	renderer    *renderer

	frames  int
	elapsed float64
}

func NewGame(cfg *config.Config, log *zap.Logger, debug bool) (*Game, error) {
	prefabs.Dir = cfg.Game.PrefabsDir

	defs, err := prefabs.LoadDefinitions(cfg.Game.Definitions)
	if err != nil {
		return nil, err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting", zap.Int64("seed", seed), zap.String("definitions", cfg.Game.Definitions))

	collisions := obj.NewCollisionWorld(defs)
	sim, err := system.New(defs, collisions.Bodies(), system.WithLogger(log), system.WithSeed(seed))
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		log:        log,
		debug:      debug,
		defs:       defs,
		collisions: collisions,
		sim:        sim,
		hud:        hud.New(defs.Capacity.Zombies),
		camera:     obj.FitCamera(cfg.Window.Width, cfg.Window.Height, cfg.Window.ViewWidth),
		renderer:   newRenderer(),
	}
	g.defsModTime, _ = prefabs.ModTime(cfg.Game.Definitions)

	if cfg.Game.Sound {
		ctx := audio.NewContext(int(sfx.SampleRate))
		g.sounds, err = sfx.NewBank(ctx, cfg.Game.Volume, log)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Game.HotReload {
		dir := cfg.Game.PrefabsDir
		g.watcher, err = prefabs.NewWatcher(cfg.Game.ReloadDebounce, dir, filepath.Join(dir, "scripts"))
		if err != nil {
			log.Warn("hot reload disabled", zap.Error(err))
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.reload()

	c := readControls(g.hud.StartScreen())
	if c.quit {
		return ebiten.Termination
	}
	if c.debug {
		g.debug = !g.debug
	}
	if c.restart {
		// Back to the idle start screen; the next start begins a fresh game.
		g.sim.Reset()
		g.hud.Reset()
		return nil
	}

	in := c.input
	g.hud.Input(&in)

	dt := 1 / float64(ebiten.TPS())
	g.elapsed += dt
	frame := component.FrameTime{DeltaSeconds: dt, TotalSeconds: g.elapsed}

	report := g.sim.Update(in, frame)
	w := g.sim.World()
	g.hud.Apply(report, frame, w.AvailableBullets, w.EnemiesKilled)
	g.sounds.PlayReport(report)
	return nil
}

// reload drains the watcher and applies edited definitions or scripts
// between ticks.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyChange(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("watch prefabs", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (g *Game) applyChange(change prefabs.Change) {
	if change.Kind == prefabs.ChangeDefinitions {
		if change.Name != filepath.Base(g.cfg.Game.Definitions) {
			return
		}
		mod, ok := prefabs.ModTime(g.cfg.Game.Definitions)
		if ok && mod.Equal(g.defsModTime) {
			return
		}
		g.defsModTime = mod
	}

	defs, err := prefabs.LoadDefinitions(g.cfg.Game.Definitions)
	if err != nil {
		g.log.Warn("reload definitions", zap.String("file", change.Name), zap.Error(err))
		return
	}
	if defs.Capacity != g.defs.Capacity {
		g.log.Warn("capacity changes apply on restart", zap.Any("running", g.defs.Capacity))
		defs.Capacity = g.defs.Capacity
	}
	if err := g.sim.SetDefinitions(defs); err != nil {
		g.log.Warn("reload definitions", zap.String("file", change.Name), zap.Error(err))
		return
	}
	g.collisions.SetDefinitions(defs)
	g.defs = defs
	g.log.Info("reloaded", zap.String("file", change.Name))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.draw(screen, g)
	if g.debug {
		drawCollisionShapes(screen, g.collisions, g.camera)
		g.renderer.debugText(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  dropped contacts %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.collisions.DroppedContacts()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("close watcher", zap.Error(err))
		}
	}
}
