// Package main is the entry point for the modeswitch client.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/modeswitch/internal/config"
	"github.com/Faultbox/modeswitch/internal/game"
	"github.com/Faultbox/modeswitch/internal/game/modes"
	"github.com/Faultbox/modeswitch/internal/logger"
	"github.com/Faultbox/modeswitch/internal/states"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== modeswitch ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	reg := states.NewRegistry()
	if err := modes.Register(reg, modes.Options{
		SplashDuration: cfg.States.SplashDuration,
	}); err != nil {
		logger.Error("failed to register states", zap.Error(err))
		os.Exit(1)
	}

	g, err := game.New(cfg, reg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}

	runErr := g.Run()
	if err := g.Close(); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
	if runErr != nil {
		logger.Error("game error", zap.Error(runErr))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("game closed normally")
}
