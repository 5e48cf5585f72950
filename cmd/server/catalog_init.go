// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/streamscout/internal/api"
	"github.com/tomtom215/streamscout/internal/cache"
	"github.com/tomtom215/streamscout/internal/catalog"
	"github.com/tomtom215/streamscout/internal/config"
	"github.com/tomtom215/streamscout/internal/events"
	"github.com/tomtom215/streamscout/internal/recommend"
)

// sourceComponents is the catalog source selected by configuration.
type sourceComponents struct {
	Source catalog.Source

	// Breaker is the circuit breaker around the source, nil when disabled.
	Breaker *catalog.BreakerSource

	// Close releases database handles held by SQL sources.
	Close func() error
}

// initSource builds the catalog source named by catalog.source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func initSource(cfg *config.Config, logger zerolog.Logger) (*sourceComponents, error) {
	comp := &sourceComponents{Close: func() error { return nil }}

	switch cfg.Catalog.Source {
	case config.SourceFile:
		comp.Source = catalog.NewFileSource(cfg.Catalog.Path, logger)

	case config.SourceS3:
		s3cfg := cfg.Catalog.S3
		src, err := catalog.NewS3Source(catalog.S3Config{
			Bucket:       s3cfg.Bucket,
			Key:          s3cfg.Key,
			Region:       s3cfg.Region,
			Endpoint:     s3cfg.Endpoint,
			AccessKey:    s3cfg.AccessKey,
			SecretKey:    s3cfg.SecretKey,
			UsePathStyle: s3cfg.UsePathStyle,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("create s3 catalog source: %w", err)
		}
		comp.Source = src

	case config.SourceSQLite, config.SourceDuckDB:
		src, err := catalog.OpenSQLSource(cfg.Catalog.Source, cfg.Catalog.SQL.DSN, cfg.Catalog.SQL.Query, logger)
		if err != nil {
			return nil, err
		}
		comp.Source = src
		comp.Close = src.Close

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	if b := cfg.Catalog.Breaker; b.Enabled {
		comp.Breaker = catalog.NewBreakerSource(comp.Source, catalog.BreakerConfig{
			MaxRequests:      b.MaxRequests,
			Interval:         b.Interval,
			Timeout:          b.Timeout,
			FailureThreshold: b.FailureThreshold,
		}, logger)
		comp.Source = comp.Breaker
	}

	return comp, nil
}

func engineConfig(cfg *config.Config) *recommend.Config {
	return &recommend.Config{
		Limits: recommend.LimitsConfig{
			DefaultK: cfg.Recommend.DefaultLimit,
			MaxK:     cfg.Recommend.MaxLimit,
		},
		Overview: recommend.OverviewConfig{
			TopGenres: cfg.Recommend.OverviewGenres,
			TopRated:  cfg.Recommend.OverviewTopRated,
		},
	}
}

func reloaderConfig(cfg *config.Config) catalog.ReloaderConfig {
	return catalog.ReloaderConfig{
		MinInterval:   cfg.Catalog.MinReloadInterval,
		LoadTimeout:   cfg.Catalog.LoadTimeout,
		RetainOnEmpty: cfg.Catalog.RetainOnEmpty,
	}
}

func cacheConfig(cfg *config.Config) cache.Config {
	return cache.Config{
		Backend:  cfg.Cache.Backend,
		TTL:      cfg.Cache.TTL,
		Capacity: cfg.Cache.Capacity,
		Redis: cache.RedisConfig{
			Addr:      cfg.Cache.Redis.Addr,
			Password:  cfg.Cache.Redis.Password,
			DB:        cfg.Cache.Redis.DB,
			KeyPrefix: cfg.Cache.Redis.KeyPrefix,
			OpTimeout: cfg.Cache.Redis.OpTimeout,
		},
	}
}

func eventsConfig(cfg *config.Config) events.Config {
	return events.Config{
		Transport: cfg.Events.Transport,
		NATSURL:   cfg.Events.NATSURL,
		QueueSize: cfg.Events.QueueSize,
	}
}

func middlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return mw
}

// handlerDeps assembles the optional API collaborators. Nil pointers stay
// nil interfaces so the handler sees them as absent.
func handlerDeps(resultCache cache.ResultCache, bus *events.Bus, reloader *catalog.Reloader, breaker *catalog.BreakerSource) api.Deps {
	deps := api.Deps{Cache: resultCache, Version: version}
	if bus != nil {
		deps.Publisher = bus
	}
	if reloader != nil {
		deps.Reloads = reloader
	}
	if breaker != nil {
		deps.Breaker = breaker
	}
	return deps
}

// closeAll runs closers and joins their errors.
func closeAll(closers ...func() error) error {
	var errs []error
	for _, c := range closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
