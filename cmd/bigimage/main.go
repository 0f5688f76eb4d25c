// Package main is the entry point for the bigimage generator.
//
// bigimage produces an intentionally oversized labeled-grid JPEG: the file
// on disk stays small, but a naive full-resolution decode needs several
// gigabytes of memory. Crossing the built-in pixel limit requires --force.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/bigimage/internal/config"
	"github.com/Faultbox/bigimage/internal/generator"
	"github.com/Faultbox/bigimage/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	logger.Info("=== bigimage generator ===")

	if err := generator.New(cfg).Run(); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
