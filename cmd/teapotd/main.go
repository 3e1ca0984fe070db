// Teapot Core - tea brewing API server
//
// This is the main entry point for the teapot service. It serves a
// resource-oriented HTTP API over an in-memory store: teapots, teas,
// brews and their steeps.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/teapotframework/teapot-core/internal/api"
	"github.com/teapotframework/teapot-core/internal/brewing"
	"github.com/teapotframework/teapot-core/internal/infrastructure/config"
	"github.com/teapotframework/teapot-core/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
func run(ctx context.Context) error {
	log := logging.Default()
	log.Info("starting teapot core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// The store lives and dies with the process. State is not persisted.
	store := brewing.NewStore()

	server, err := api.New(api.Deps{
		Config:  cfg.API,
		Metrics: cfg.Metrics,
		Logger:  log,
		Store:   store,
		Version: version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	log.Info("initialisation complete, waiting for shutdown signal")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	return nil
}

// loadConfig reads the config file named by TEAPOT_CONFIG or the default
// path. A missing default file is not an error: the built-in defaults are
// enough to run.
func loadConfig(log *logging.Logger) (*config.Config, error) {
	path := os.Getenv("TEAPOT_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			log.Info("no config file found, using defaults", "path", path)
			return config.Default(), nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log.Info("configuration loaded", "path", path)
	return cfg, nil
}
