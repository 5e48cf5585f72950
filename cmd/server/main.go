// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/streamscout/internal/api"
	"github.com/tomtom215/streamscout/internal/cache"
	"github.com/tomtom215/streamscout/internal/catalog"
	"github.com/tomtom215/streamscout/internal/config"
	"github.com/tomtom215/streamscout/internal/events"
	"github.com/tomtom215/streamscout/internal/logging"
	"github.com/tomtom215/streamscout/internal/metrics"
	"github.com/tomtom215/streamscout/internal/recommend"
	"github.com/tomtom215/streamscout/internal/supervisor"
	"github.com/tomtom215/streamscout/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

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
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("catalog_source", cfg.Catalog.Source).
		Msg("Starting Streamscout")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows all origins; set CORS_ORIGINS in production")
	}

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	engine, err := recommend.NewEngine(engineConfig(cfg), logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	source, err := initSource(cfg, logging.WithComponent("catalog"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create catalog source")
	}
	closers := []func() error{source.Close}

	reloader := catalog.NewReloader(engine, source.Source, reloaderConfig(cfg), logging.WithComponent("reloader"))

	bus, err := events.NewBus(eventsConfig(cfg), logging.WithComponent("events"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create event bus")
	}
	closers = append(closers, bus.Close)

	resultCache, err := cache.New(cacheConfig(cfg), logging.WithComponent("cache"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create result cache")
	}
	if c, ok := resultCache.(io.Closer); ok {
		closers = append(closers, c.Close)
	}

	handler := api.NewHandler(engine, handlerDeps(resultCache, bus, reloader, source.Breaker))
	router := api.NewRouter(handler, api.NewChiMiddleware(middlewareConfig(cfg)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewCatalogService(reloader, services.CatalogServiceConfig{
		ReloadInterval: cfg.Catalog.ReloadInterval,
	}, logging.WithComponent("catalog-service")))
	tree.AddMessagingService(services.NewReloadListenerService(bus, reloader, logging.WithComponent("reload-listener")))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree stopped unexpectedly")
		}
		cancel()
	case <-ctx.Done():
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Warn().Err(err).Msg("Supervisor tree stopped with error")
		}
	}

	if report, err := tree.UnstoppedServiceReport(); err != nil {
		logging.Warn().Err(err).Msg("Failed to get unstopped service report")
	} else if len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within timeout")
		}
	}

	if err := closeAll(closers...); err != nil {
		logging.Warn().Err(err).Msg("Error releasing resources")
	}

	logging.Info().Msg("Streamscout stopped")
}
