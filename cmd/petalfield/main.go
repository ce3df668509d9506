package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"chosenoffset.com/petalfield/internal/dice"
	"chosenoffset.com/petalfield/internal/game"
	"chosenoffset.com/petalfield/internal/logging"
	ebitenrender "chosenoffset.com/petalfield/internal/render/ebiten"
	"chosenoffset.com/petalfield/internal/session"
	"chosenoffset.com/petalfield/internal/simulation"
	"chosenoffset.com/petalfield/internal/telemetry"
)

func main() {
	var (
		configPath string
		presetName string
		presetDir  string
		seed       int64
		logLevel   string
		noColor    bool
		noMetrics  bool
	)
	flag.StringVar(&configPath, "config", "", "path to a YAML/JSON/TOML config file")
	flag.StringVar(&presetName, "preset", "", "name of a config file in the presets directory")
	flag.StringVar(&presetDir, "presets", "configs", "directory searched by -preset")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 uses the config value, then the clock)")
	flag.StringVar(&logLevel, "log-level", "", "trace|debug|info|warn|error (overrides config)")
	flag.BoolVar(&noColor, "no-color", false, "disable coloured log output")
	flag.BoolVar(&noMetrics, "no-metrics", false, "disable OpenTelemetry counters")
	flag.Parse()

	boot := logging.New(os.Stderr, "info", noColor)
	if configPath == "" && presetName != "" {
		path, err := simulation.FindPreset(presetDir, presetName)
		if err != nil {
			boot.Fatal().Err(err).Str("presets", presetDir).Msg("Failed to resolve preset")
		}
		configPath = path
	}

	cfg, err := simulation.Load(configPath)
	if err != nil {
		boot.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config")
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, noColor)
	logger.Info().
		Str("config", configPath).
		Int64("seed", cfg.Seed).
		Float64("worldSize", cfg.World.Size).
		Int("mobs", cfg.World.MobCount).
		Int("bosses", cfg.World.BossCount).
		Int("tps", cfg.World.TicksPerSecond).
		Msg("Starting petalfield")

	metrics := telemetry.Nop()
	if !noMetrics {
		if metrics, err = telemetry.Global(); err != nil {
			logger.Warn().Err(err).Msg("Failed to register metrics, continuing without")
			metrics = telemetry.Nop()
		}
	}

	sess := session.New(cfg, dice.NewSeeded(cfg.Seed), logger, metrics)

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	manager := game.NewManager(sess, renderer, inputMgr, cfg.Window.Width, cfg.Window.Height, logger)
	manager.Engine = engine

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetFullscreen(cfg.Window.Fullscreen)
	engine.SetTPS(cfg.World.TicksPerSecond)

	if err := engine.RunGame(manager); err != nil {
		logger.WithLevel(zerolog.FatalLevel).Err(err).Msg("Game loop failed")
		os.Exit(1)
	}
	logger.Info().Msg("Bye")
}
