package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/l1jgo/planter/internal/component"
	"github.com/l1jgo/planter/internal/config"
	"github.com/l1jgo/planter/internal/core/event"
	"github.com/l1jgo/planter/internal/core/geom"
	coresys "github.com/l1jgo/planter/internal/core/system"
	"github.com/l1jgo/planter/internal/data"
	"github.com/l1jgo/planter/internal/host"
	"github.com/l1jgo/planter/internal/scripting"
	"github.com/l1jgo/planter/internal/system"
	"github.com/l1jgo/planter/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	headless := flag.Bool("headless", false, "run without a window")
	ticks := flag.Uint64("ticks", 0, "headless: stop after this many ticks (0 runs until interrupted)")
	flag.Parse()

	// 1. Config; the default path may be absent
	cfgPath, optional := "config/planter.toml", true
	if p := os.Getenv("PLANTER_CONFIG"); p != "" {
		cfgPath, optional = p, false
	}
	cfg, err := config.Load(cfgPath, optional)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Static data and scripting
	seeds, err := data.LoadSeedTable(cfg.Data.Seeds)
	if err != nil {
		return fmt.Errorf("load seed table: %w", err)
	}
	log.Info("seed table loaded", zap.Int("seeds", seeds.Count()), zap.Strings("names", seeds.Names()))

	var lua *scripting.Engine
	if cfg.Data.Scripts != "" {
		lua, err = scripting.NewEngine(cfg.Data.Scripts, log)
		if err != nil {
			return fmt.Errorf("lua engine: %w", err)
		}
		defer lua.Close()
	}

	// 4. World: one wallet for the current player and the player body
	ws := world.NewState()
	wallet := ws.CreateEntity(world.WithCurrentPlayer(), world.WithResources(component.Resources{}))
	player := ws.CreateEntity(
		world.WithPlayerControlled(),
		world.WithPosition(geom.Splat(128)),
		world.WithVelocity(geom.Splat(128)),
		world.WithSprite(host.VisualGreenCircle),
	)
	log.Info("world ready", zap.Stringer("wallet", wallet), zap.Stringer("player", player))

	bus := event.NewBus()
	system.SubscribeLog(bus, log)

	// 5. Pipeline
	deps := buildDeps(cfg, *headless, seeds, lua, bus, log)
	runner, err := system.Build(ws, deps)
	if err != nil {
		return err
	}

	if *headless {
		return runHeadless(ws, runner, cfg.Simulation.TickInterval(), *ticks, log)
	}

	opts := host.Options{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Title:    cfg.Window.Title,
		TickRate: cfg.Simulation.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	game, err := host.NewGame(ws, runner, opts, log)
	if err != nil {
		return err
	}
	log.Info("window opening", zap.Int("width", opts.Width), zap.Int("height", opts.Height), zap.Int("tps", opts.TickRate))
	return host.Run(game, opts)
}

// buildDeps picks the collaborators for the run mode: the window's keyboard
// and mouse with the wall clock, or idle input on a fixed step when headless.
func buildDeps(cfg *config.Config, headless bool, seeds *data.SeedTable, lua *scripting.Engine, bus *event.Bus, log *zap.Logger) system.Deps {
	deps := system.Deps{
		Input:       host.Input{},
		Clock:       system.NewRealClock(),
		MaxStep:     cfg.Simulation.MaxStep,
		CellSize:    cfg.Simulation.CellSize,
		Seeds:       seeds,
		DefaultSeed: cfg.Planter.DefaultSeed,
		Lua:         lua,
		Bus:         bus,
		Log:         log,
	}
	if headless {
		deps.Input = system.IdleInput
		deps.Clock = system.StepClock{Step: cfg.Simulation.TickInterval()}
	}
	return deps
}

// runHeadless ticks on a wall-clock ticker until limit ticks have run or a
// shutdown signal arrives.
func runHeadless(ws *world.State, r *coresys.Runner, interval time.Duration, limit uint64, log *zap.Logger) error {
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("headless loop started", zap.Duration("interval", interval), zap.Uint64("limit", limit))
	for {
		select {
		case <-ticker.C:
			r.Tick()
			if limit > 0 && r.Ticks() >= limit {
				logWallets(ws, log)
				log.Info("tick limit reached", zap.Uint64("ticks", r.Ticks()))
				return nil
			}
		case sig := <-shutdownCh:
			logWallets(ws, log)
			log.Info("shutdown signal", zap.String("signal", sig.String()), zap.Uint64("ticks", r.Ticks()))
			return nil
		}
	}
}

func logWallets(ws *world.State, log *zap.Logger) {
	for id, res := range ws.Resources.All() {
		log.Info("wallet", zap.Stringer("owner", id), zap.Stringer("resources", res))
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
