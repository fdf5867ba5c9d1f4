package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	World   WorldConfig   `toml:"world"`
	Sim     SimConfig     `toml:"sim"`
	Render  RenderConfig  `toml:"render"`
	Data    DataConfig    `toml:"data"`
	Logging LoggingConfig `toml:"logging"`
}

type WorldConfig struct {
	MapSize   float64 `toml:"map_size"`
	Seed      uint64  `toml:"seed"`
	PlayerPos float64 `toml:"player_pos"`
}

type SimConfig struct {
	TickRate         Duration `toml:"tick_rate"`
	VisibilityRadius float64  `toml:"visibility_radius"`
	PlayerSpeed      float64  `toml:"player_speed"`
	MaxTicks         int      `toml:"max_ticks"` // 0 = run until quit
}

// Duration decodes TOML strings like "50ms" into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type RenderConfig struct {
	Enabled bool `toml:"enabled"` // false = headless (set max_ticks too)
}

type DataConfig struct {
	SpeciesFile string `toml:"species_file"`
	ScriptsDir  string `toml:"scripts_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // console or json
}

// Load reads a TOML config file over the defaults.
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

func (c *Config) validate() error {
	if c.World.MapSize <= 0 {
		return fmt.Errorf("world.map_size must be positive, got %v", c.World.MapSize)
	}
	if c.Sim.TickRate.Duration <= 0 {
		return fmt.Errorf("sim.tick_rate must be positive, got %v", c.Sim.TickRate)
	}
	if c.Sim.VisibilityRadius < 0 {
		return fmt.Errorf("sim.visibility_radius must not be negative, got %v", c.Sim.VisibilityRadius)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config { return defaults() }

func defaults() *Config {
	return &Config{
		World: WorldConfig{
			MapSize:   2300,
			Seed:      1,
			PlayerPos: 0,
		},
		Sim: SimConfig{
			TickRate:         Duration{50 * time.Millisecond},
			VisibilityRadius: 1150,
			PlayerSpeed:      120,
		},
		Render: RenderConfig{
			Enabled: true,
		},
		Data: DataConfig{
			SpeciesFile: "data/species.yaml",
			ScriptsDir:  "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
