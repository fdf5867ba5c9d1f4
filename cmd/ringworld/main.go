package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ringworld/sim/internal/config"
	"github.com/ringworld/sim/internal/data"
	"github.com/ringworld/sim/internal/game"
	"github.com/ringworld/sim/internal/loop"
	"github.com/ringworld/sim/internal/render"
	"github.com/ringworld/sim/internal/rng"
	"github.com/ringworld/sim/internal/scripting"
	"github.com/ringworld/sim/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultConfigPath = "config/ringworld.toml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := defaultConfigPath
	if p := os.Getenv("RINGWORLD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.Render.Enabled && cfg.Sim.MaxTicks <= 0 {
		return errors.New("headless mode needs sim.max_ticks > 0")
	}

	// 2. Init logger. With the terminal renderer active the screen belongs
	// to tcell, so logs go to a file instead of stderr.
	log, err := newLogger(cfg.Logging, cfg.Render.Enabled)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Load species tables and behavior scripts
	species, err := data.LoadSpeciesTable(cfg.Data.SpeciesFile)
	if err != nil {
		return fmt.Errorf("load species: %w", err)
	}
	scripts, err := scripting.NewEngine(cfg.Data.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("init scripting: %w", err)
	}
	defer scripts.Close()

	// 4. Build and seed the world
	env := &game.Env{
		Scripts: scripts,
		Species: species,
		MapSize: cfg.World.MapSize,
	}
	w := world.NewWithPlayer[game.Entity, game.System, game.Layer](
		cfg.World.MapSize,
		rng.Seed(cfg.World.Seed),
		cfg.World.PlayerPos,
		game.NewPlayer(cfg.Sim.PlayerSpeed),
	)
	w = env.RegisterSystems(w)
	w, err = env.Seed(w)
	if err != nil {
		return fmt.Errorf("seed world: %w", err)
	}
	log.Info("world ready",
		zap.Float64("map_size", cfg.World.MapSize),
		zap.Uint64("seed", cfg.World.Seed),
		zap.Int("species", species.Count()),
		zap.Int("entities", w.Len()))

	// 5. Presenter (nil = headless)
	var presenter loop.Presenter
	if cfg.Render.Enabled {
		term, err := render.NewTerminal()
		if err != nil {
			return fmt.Errorf("init terminal: %w", err)
		}
		defer term.Close()
		presenter = term
	}

	// 6. Run
	l := loop.New(env, presenter, loop.Options{
		TickRate:         cfg.Sim.TickRate.Duration,
		VisibilityRadius: cfg.Sim.VisibilityRadius,
		PlayerSpeed:      cfg.Sim.PlayerSpeed,
		MaxTicks:         cfg.Sim.MaxTicks,
	}, log)
	final := l.Run(w)

	log.Info("simulation stopped",
		zap.Int("entities", final.Len()),
		zap.Float64("viewpoint", final.ViewpointPos()))
	return nil
}

// loadConfig falls back to defaults when the default config file is absent;
// an explicitly configured path must exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) && path == defaultConfigPath {
		return config.Default(), nil
	}
	return cfg, err
}

func newLogger(cfg config.LoggingConfig, toFile bool) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if toFile {
		zapCfg.OutputPaths = []string{"ringworld.log"}
		zapCfg.ErrorOutputPaths = []string{"ringworld.log"}
	}
	return zapCfg.Build()
}
