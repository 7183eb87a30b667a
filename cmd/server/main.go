// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

// Package main is the entry point for the Convene server.
//
// Convene is a self-hosted event and social networking platform API:
// users publish events, RSVP, connect with each other and receive
// recommendations for events near them and people worth meeting.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional YAML file, CONVENE_ environment
//     variables (Koanf v2)
//  2. Store: BadgerDB key-value storage with a background value-log GC
//  3. Engines: event and connection recommendation, dashboard aggregation
//  4. HTTP server: chi router with the REST API, health and metrics
//     endpoints
//
// All long-lived components run under a Suture supervisor tree so a
// crashing maintenance job is restarted without taking down the API.
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, drains in-flight requests within the
// configured shutdown timeout and closes the store.
//
// # Example Usage
//
//	export CONVENE_DATABASE_PATH=/data/convene
//	export CONVENE_SERVER_PORT=8080
//	./convene
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/convene/internal/api"
	"github.com/tomtom215/convene/internal/config"
	"github.com/tomtom215/convene/internal/dashboard"
	"github.com/tomtom215/convene/internal/logging"
	"github.com/tomtom215/convene/internal/recommend"
	"github.com/tomtom215/convene/internal/store"
	"github.com/tomtom215/convene/internal/supervisor"
	"github.com/tomtom215/convene/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config is not available yet, so the default logger reports this.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Bool("in_memory", cfg.Database.InMemory).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")

	s, err := store.Open(store.Options{
		Path:       cfg.Database.Path,
		InMemory:   cfg.Database.InMemory,
		GCInterval: cfg.Database.GCInterval,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := s.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()
	logging.Info().Msg("Store opened")

	recCfg := recommend.Config{
		InterestWeight:         cfg.Recommend.InterestWeight,
		ProximityWeight:        cfg.Recommend.ProximityWeight,
		SharedInterestWeight:   cfg.Recommend.SharedInterestWeight,
		MutualConnectionWeight: cfg.Recommend.MutualConnectionWeight,
		SharedEventWeight:      cfg.Recommend.SharedEventWeight,
		DefaultLimit:           cfg.Recommend.DefaultLimit,
		DefaultMaxDistanceKm:   cfg.Recommend.DefaultMaxDistanceKm,
	}
	if err := recCfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("Invalid recommendation configuration")
	}

	eventEngine := recommend.NewEventEngine(s, recCfg)
	connEngine := recommend.NewConnectionEngine(s, recCfg)
	aggregator := dashboard.New(s)

	handler := api.NewHandler(s, eventEngine, connEngine, aggregator, cfg.API)
	router := api.NewRouter(handler, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog.
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddDataService(services.NewStoreGCService(s))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Server stopped gracefully")
}
