// Package main is the entry point for the pathgen mesh generator.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/soBigRice/three.path/internal/config"
	"github.com/soBigRice/three.path/internal/logger"
	"github.com/soBigRice/three.path/internal/scene"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("pathgen starting",
		zap.Int("paths", len(cfg.Paths)),
		zap.String("out", cfg.Output.Dir))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := scene.New(cfg).Run(); err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("pathgen finished")
}
