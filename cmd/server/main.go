// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinetrack/internal/api"
	"github.com/tomtom215/cinetrack/internal/config"
	"github.com/tomtom215/cinetrack/internal/gateway"
	"github.com/tomtom215/cinetrack/internal/logging"
	"github.com/tomtom215/cinetrack/internal/stats"
	"github.com/tomtom215/cinetrack/internal/store"
	"github.com/tomtom215/cinetrack/internal/supervisor"
	"github.com/tomtom215/cinetrack/internal/supervisor/services"
	ws "github.com/tomtom215/cinetrack/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("store", cfg.Store.Type).
		Str("environment", cfg.Server.Environment).
		Bool("ai_enabled", cfg.Gemini.Enabled()).
		Msg("Starting CineTrack")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entryStore, err := store.Open(cfg.Store)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open entry store")
	}
	defer func() {
		if err := entryStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing entry store")
		}
	}()

	if cfg.Store.SeedDemoData {
		if _, err := store.Seed(ctx, entryStore); err != nil {
			logging.Error().Err(err).Msg("Failed to seed demo data")
		}
	}

	gw, err := gateway.NewFromConfig(ctx, cfg.Gemini)
	if err != nil {
		// Recommendations degrade to fallbacks; the log itself stays usable.
		logging.Error().Err(err).Msg("Failed to create AI provider client")
		gw = gateway.New(cfg.Gemini, nil)
	}
	defer gw.Close()

	engine := stats.NewEngine(engineOptions(cfg.Stats))
	wsHub := ws.NewHub()

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(entryStore, engine, gw, wsHub, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		// Recommendation calls may take up to the gateway timeout.
		WriteTimeout: cfg.Server.Timeout + cfg.Gemini.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if gc, ok := entryStore.(store.GarbageCollector); ok && cfg.Store.GCInterval > 0 {
		tree.AddDataService(services.NewStoreGCService(gc, cfg.Store.GCInterval))
		logging.Info().Dur("interval", cfg.Store.GCInterval).Msg("Store GC service added")
	}
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
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
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("CineTrack stopped")
}
