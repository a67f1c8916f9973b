// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/app"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("loader", cfg.Data.Loader).
		Str("movies", cfg.Data.MoviesPath).
		Str("ratings", cfg.Data.RatingsPath).
		Msg("Starting ReelMatch")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin; set CORS_ORIGINS to restrict it")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	engine, err := app.LoadEngine(ctx, cfg, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation engine")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(engine, version)
	chiMW := api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(cfg.Security))
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler, chiMW).SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logging.Logger()))
	if cfg.Recommend.CacheEnabled {
		tree.AddMaintenanceService(services.NewCacheJanitorService(engine, cfg.Recommend.CacheTTL, logging.Logger()))
	}

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("ReelMatch stopped")
}
