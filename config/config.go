package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "ZOMBIERUN_CONFIG"

const DefaultPath = "config/game.toml"

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
	Game    GameConfig    `toml:"game"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// ViewWidth is how many world units fit across the screen.
	ViewWidth float64 `toml:"view_width"`
	VSync     bool    `toml:"vsync"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type GameConfig struct {
	Definitions string `toml:"definitions"`
	PrefabsDir  string `toml:"prefabs_dir"`
	Seed        int64  `toml:"seed"` // 0 picks a random seed
	HotReload   bool   `toml:"hot_reload"`
	// ReloadDebounce coalesces bursts of file events from editors.
	ReloadDebounce time.Duration `toml:"reload_debounce"`
	Sound          bool          `toml:"sound"`
	Volume         float64       `toml:"volume"`
}

// Path returns the config path to load: the env override if set, else
// fallback.
func Path(fallback string) string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return fallback
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default is the config used when no file exists.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Zombie Run",
			Width:     960,
			Height:    540,
			ViewWidth: 480,
			VSync:     true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Game: GameConfig{
			Definitions:    "definitions.yaml",
			PrefabsDir:     "prefabs",
			HotReload:      false,
			ReloadDebounce: 200 * time.Millisecond,
			Sound:          true,
			Volume:         0.3,
		},
	}
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.ViewWidth <= 0 {
		return fmt.Errorf("window view_width must be positive, got %v", c.Window.ViewWidth)
	}
	if c.Game.Volume < 0 || c.Game.Volume > 1 {
		return fmt.Errorf("game volume must be within [0, 1], got %v", c.Game.Volume)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
