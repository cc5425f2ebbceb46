// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

// Command server runs the VibeTravels HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robm15/vibetravels/internal/ai"
	"github.com/robm15/vibetravels/internal/api"
	"github.com/robm15/vibetravels/internal/auth"
	"github.com/robm15/vibetravels/internal/config"
	"github.com/robm15/vibetravels/internal/logging"
	"github.com/robm15/vibetravels/internal/models"
	"github.com/robm15/vibetravels/internal/planner"
	"github.com/robm15/vibetravels/internal/quota"
	"github.com/robm15/vibetravels/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	db, err := store.Open(cfg.Store)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("Failed to open store")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close store")
		}
	}()

	tracker := quota.NewTracker(cfg.AI.DailyLimit)
	completions := ai.NewFromConfig(cfg.AI)
	service := planner.NewService(db.Notes(), db.Preferences(), db.Plans(), tracker, completions)
	handler := api.NewHandler(service, db.Notes(), db.Preferences(), cfg)

	resolver, err := buildResolver(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to configure authentication")
	}

	limiter := auth.NewRateLimiter(cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow, cfg.Security.RateLimitDisabled)
	defer limiter.Stop()

	router := api.NewRouter(handler, resolver, limiter, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", server.Addr).
			Bool("offline", cfg.OfflineMode()).
			Int("daily_limit", cfg.AI.DailyLimit).
			Msg("VibeTravels server starting")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Server failed")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	} else {
		logging.Info().Msg("Server stopped")
	}
}

// buildResolver picks the principal source: JWT verification when a secret is
// configured, otherwise the fixed local principal for offline single-user use.
func buildResolver(cfg *config.Config) (*auth.Resolver, error) {
	if cfg.OfflineMode() {
		logging.Warn().Msg("No JWT secret configured; running with the static local principal")
		return auth.NewStaticResolver(models.Principal{
			ID:    auth.LocalPrincipalID,
			Email: "local@localhost",
			Role:  "user",
		}), nil
	}

	verifier, err := auth.NewJWTVerifier(cfg.Security.JWTSecret)
	if err != nil {
		return nil, err
	}
	return auth.NewResolver(verifier), nil
}
