package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Window     WindowConfig     `toml:"window"`
	Data       DataConfig       `toml:"data"`
	Planter    PlanterConfig    `toml:"planter"`
	Logging    LoggingConfig    `toml:"logging"`
}

type SimulationConfig struct {
	TickRate int           `toml:"tick_rate"` // ticks per second the host aims for
	MaxStep  time.Duration `toml:"max_step"`  // cap on a single tick's elapsed time
	CellSize int           `toml:"cell_size"` // spatial grid cell edge, pixels
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type DataConfig struct {
	Seeds   string `toml:"seeds"`   // YAML seed table
	Scripts string `toml:"scripts"` // Lua hook directory; empty disables scripting
}

type PlanterConfig struct {
	DefaultSeed string `toml:"default_seed"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// TickInterval is the wall-clock time between ticks at TickRate.
func (c SimulationConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// Load reads path over the defaults. When optional is set a missing file is
// not an error and the defaults are returned.
func Load(path string, optional bool) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation.tick_rate must be positive, got %d", c.Simulation.TickRate)
	}
	if c.Simulation.MaxStep <= 0 {
		return fmt.Errorf("simulation.max_step must be positive, got %s", c.Simulation.MaxStep)
	}
	if c.Simulation.CellSize <= 0 {
		return fmt.Errorf("simulation.cell_size must be positive, got %d", c.Simulation.CellSize)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickRate: 60,
			MaxStep:  100 * time.Millisecond,
			CellSize: 32,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "planter",
		},
		Data: DataConfig{
			Seeds:   "data/yaml/seeds.yaml",
			Scripts: "scripts",
		},
		Planter: PlanterConfig{
			DefaultSeed: "cog",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
