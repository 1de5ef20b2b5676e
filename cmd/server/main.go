// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

/*
Gustline serves a read-only REST API over blog content and wind turbine
telemetry stored in MongoDB.

Startup order:

 1. Configuration: koanf (defaults, optional YAML, .env, environment)
 2. Logging: zerolog
 3. MongoDB: connect and ping, create the time-series collection and indexes
 4. Seeding: fill empty collections from the JSON source and CSV directory
 5. Supervisor tree: HTTP server under suture

The MongoDB client is released on every exit path, including startup
failures. SIGINT and SIGTERM cancel the root context, which stops the
HTTP server gracefully.

	export MONGO_URI=mongodb://localhost
	export JSON_PLACEHOLDER=https://jsonplaceholder.typicode.com
	export CSV_DATA_PATH=./data/turbines
	./gustline
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/gustline/docs" // Import generated swagger docs
	"github.com/tomtom215/gustline/internal/api"
	"github.com/tomtom215/gustline/internal/config"
	"github.com/tomtom215/gustline/internal/database"
	"github.com/tomtom215/gustline/internal/logging"
	"github.com/tomtom215/gustline/internal/seed"
	"github.com/tomtom215/gustline/internal/supervisor"
	"github.com/tomtom215/gustline/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Gustline exited with error")
		os.Exit(1)
	}
}

// run owns every resource so deferred cleanup executes before the process
// exits, whatever the outcome.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("addr", cfg.Server.Addr()).
		Str("content_db", cfg.Database.ContentDatabase).
		Str("telemetry_db", cfg.Database.TelemetryDatabase).
		Bool("seed_enabled", cfg.Seed.Enabled).
		Msg("Starting Gustline")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	db, err := database.New(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close MongoDB client")
		}
	}()

	if err := db.EnsureTimeSeriesCollection(ctx); err != nil {
		return err
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		return err
	}

	if cfg.Seed.Enabled {
		seeder := seed.New(
			db,
			seed.NewJSONSource(&cfg.Seed),
			seed.NewCSVSource(cfg.Seed.CSVDir, cfg.Seed.BatchSize),
			cfg.Database.TelemetryCollection,
		)
		if err := seeder.EnsureAll(ctx); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
	} else {
		logging.Info().Msg("Seeding disabled")
	}

	if cfg.HasWildcardCORS() && cfg.IsProduction() {
		logging.Warn().Msg("CORS allows any origin in production")
	}

	handler := api.NewHandler(db, cfg)
	router := api.NewRouter(handler, &cfg.Security)

	server := &http.Server{
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), 10*time.Second))

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var runErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			runErr = fmt.Errorf("supervisor tree: %w", err)
		}
	}
	cancel()

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Gustline stopped")
	return runErr
}
