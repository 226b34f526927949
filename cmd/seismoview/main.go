// Package main is the entry point for the interactive seismic wave viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/seismo/internal/config"
	"github.com/Faultbox/seismo/internal/logger"
	"github.com/Faultbox/seismo/internal/viewer"
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

	logger.Info("=== Seismo Viewer ===",
		zap.String("model", cfg.Wave.Model),
		zap.Int("resolution", cfg.Geometry.Resolution),
	)
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
