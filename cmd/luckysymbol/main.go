// Package main is the entry point for Lucky Symbol.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/samdwyer/luckysymbol/internal/app"
	"github.com/samdwyer/luckysymbol/internal/clock"
	"github.com/samdwyer/luckysymbol/internal/config"
	"github.com/samdwyer/luckysymbol/internal/game"
	"github.com/samdwyer/luckysymbol/internal/gamedata"
	"github.com/samdwyer/luckysymbol/internal/logging"
	"github.com/samdwyer/luckysymbol/internal/telemetry"
	"github.com/samdwyer/luckysymbol/internal/ui"
)

// pendingTriggers bounds fired callbacks waiting for the loop.
const pendingTriggers = 16

func main() {
	os.Exit(start())
}

// start runs the game and returns the exit code once every deferred
// cleanup has run.
func start() int {
	settings, err := config.Load(".env")
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	logger, err := logging.New(settings.LogFile, settings.LogLevel)
	if err != nil {
		log.Printf("Failed to set up logging: %v", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupOTelEnv()
	shutdown, err := telemetry.Setup(ctx, settings.Telemetry)
	if err != nil {
		// Not fatal - the game runs without traces
		logger.Warn("telemetry setup failed", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("telemetry shutdown failed", zap.Error(err))
			}
		}()
	}

	if err := run(ctx, settings, logger); err != nil {
		logger.Error("game error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "luckysymbol: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, settings config.Settings, logger *zap.Logger) error {
	assets, err := gamedata.LoadAssetRegistry()
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	if assets.SymbolCount() < settings.Game.Choices {
		return fmt.Errorf("only %d symbols available for %d choices", assets.SymbolCount(), settings.Game.Choices)
	}

	seed := settings.SeedOrNow()
	logger.Info("starting",
		zap.Int64("seed", seed),
		zap.Int("choices", settings.Game.Choices),
		zap.Int("fps", settings.FPS),
	)

	timers := clock.NewReal(pendingTriggers)
	world := game.NewWorld(settings.Game, timers, rand.New(rand.NewSource(seed)), logger.Named("game"))
	machine, err := game.NewMachine(world)
	if err != nil {
		return fmt.Errorf("create machine: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	a := app.New(screen, ui.NewRenderer(screen, assets), machine, timers, settings.FrameInterval(), logger.Named("app"))
	return a.Run(ctx)
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set
// and no endpoint has been configured explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_LUCKYSYMBOL_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_LUCKYSYMBOL_DATASET")
	if dataset == "" {
		dataset = "luckysymbol"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
