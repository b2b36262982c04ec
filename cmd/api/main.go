package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/api"
	"storefront/internal/config"
	"storefront/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := newLogger(cfg)

	// Initialize API server
	server, err := api.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize server: %v", err)
	}

	// Start server
	errs := make(chan error, 1)
	go func() {
		errs <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		if err != nil {
			logger.Fatal("Failed to start server: %v", err)
		}
	case <-quit:
	}

	// in-flight pipelines get the full write timeout to finish
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Error("Server shutdown: %v", err)
	}
}

// newLogger writes JSON lines in production and console output elsewhere
func newLogger(cfg *config.Config) *logger.Logger {
	if cfg.Env == "production" {
		return logger.NewWithWriter(cfg.LogLevel, os.Stderr)
	}
	return logger.New(cfg.LogLevel)
}
