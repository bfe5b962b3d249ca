// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/foodiug/docs" // registers the swagger document
	"github.com/tomtom215/foodiug/internal/api"
	"github.com/tomtom215/foodiug/internal/auth"
	"github.com/tomtom215/foodiug/internal/config"
	"github.com/tomtom215/foodiug/internal/logging"
	"github.com/tomtom215/foodiug/internal/restaurant"
	"github.com/tomtom215/foodiug/internal/seed"
	"github.com/tomtom215/foodiug/internal/store"
	"github.com/tomtom215/foodiug/internal/store/badgerstore"
	"github.com/tomtom215/foodiug/internal/store/mongostore"
	"github.com/tomtom215/foodiug/internal/supervisor"
	"github.com/tomtom215/foodiug/internal/supervisor/services"
)

const storeCloseTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Foodiug stopped with an error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.FromSettings(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Caller))

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("store_driver", cfg.Store.Driver).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Foodiug")

	base, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeCloseTimeout)
		defer cancel()
		if err := base.Close(ctx); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	instrumented := store.Instrument(base, cfg.Store.OperationTimeout)

	if cfg.Store.SeedDir != "" {
		if _, err := seed.LoadDir(context.Background(), instrumented, cfg.Store.SeedDir); err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}
	}

	var st store.Store = instrumented
	if cfg.Store.Breaker.Enabled {
		st = store.WithBreakers(instrumented, cfg.Store.Breaker)
		logging.Info().
			Float64("failure_ratio", cfg.Store.Breaker.FailureRatio).
			Dur("open_timeout", cfg.Store.Breaker.Timeout).
			Msg("Store circuit breakers enabled")
	}

	issuer, err := auth.NewTokenIssuer(cfg.Security.JWTSecret)
	if err != nil {
		return fmt.Errorf("token issuer: %w", err)
	}
	credentials := auth.NewCredentialService(st, auth.NewPasswordHasher(cfg.Security.BcryptCost))
	handler := api.NewHandler(credentials, issuer, restaurant.NewService(st), st)

	chiConfig := api.DefaultChiMiddlewareConfig()
	if len(cfg.Security.CORSOrigins) > 0 {
		chiConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	}
	router := api.NewRouter(handler, auth.NewMiddleware(issuer), chiConfig)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// sutureslog expects slog; the adapter forwards to zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	// Ping and Close bypass the breakers, so the monitor sees the raw backend.
	tree.AddStoreService(services.NewStoreMonitorService(st, services.DefaultMonitorInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}
	return nil
}

// openStore connects the configured backend. Mongo connects, pings and
// ensures indexes; Badger opens its directory.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case config.DriverBadger:
		st, err := badgerstore.Open(cfg.Store.Badger)
		if err != nil {
			return nil, fmt.Errorf("open badger store: %w", err)
		}
		logging.Info().
			Str("path", cfg.Store.Badger.Path).
			Bool("in_memory", cfg.Store.Badger.InMemory).
			Msg("Badger store opened")
		return st, nil

	case config.DriverMongo:
		st, err := mongostore.Open(context.Background(), cfg.Store.Mongo)
		if err != nil {
			return nil, err
		}
		return st, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
