// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/streamscout/internal/catalog"
	"github.com/tomtom215/streamscout/internal/recommend"
)

// Reload reasons recorded by the services.
const (
	ReasonStartup  = "startup"
	ReasonInterval = "interval"
	ReasonEvent    = "event"
)

// CatalogReloader rebuilds the catalog index. Satisfied by *catalog.Reloader.
type CatalogReloader interface {
	Reload(ctx context.Context, reason string) (recommend.Status, error)
}

// CatalogServiceConfig configures a CatalogService.
type CatalogServiceConfig struct {
	// ReloadInterval is the period of scheduled reloads. Zero disables them.
	ReloadInterval time.Duration
}

// CatalogService builds the catalog index on start and then rebuilds it on
// a fixed interval. Failed reloads are logged; the service keeps running
// and the previously published index stays in place.
type CatalogService struct {
	reloader CatalogReloader
	config   CatalogServiceConfig
	logger   zerolog.Logger
}

// NewCatalogService creates the service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogService(reloader CatalogReloader, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		reloader: reloader,
		config:   cfg,
		logger:   logger.With().Str("service", "catalog").Logger(),
	}
}

// Serve implements suture.Service.
func (s *CatalogService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("reload_interval", s.config.ReloadInterval).Msg("catalog service starting")

	s.reload(ctx, ReasonStartup)

	if s.config.ReloadInterval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.ReloadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog service stopping")
			return ctx.Err()
		case <-ticker.C:
			s.reload(ctx, ReasonInterval)
		}
	}
}

func (s *CatalogService) reload(ctx context.Context, reason string) {
	status, err := s.reloader.Reload(ctx, reason)
	switch {
	case err == nil:
		return
	case errors.Is(err, catalog.ErrReloadThrottled):
		s.logger.Debug().Str("reason", reason).Msg("scheduled reload skipped, throttled")
	case ctx.Err() != nil:
		// shutting down
	default:
		s.logger.Warn().Err(err).
			Str("reason", reason).
			Str("state", status.State.String()).
			Uint64("generation", status.Generation).
			Msg("catalog reload failed, will retry")
	}
}

// String names the service in supervisor events.
func (s *CatalogService) String() string {
	return "catalog-service"
}
