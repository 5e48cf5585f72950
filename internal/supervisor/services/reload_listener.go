// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/streamscout/internal/catalog"
	"github.com/tomtom215/streamscout/internal/events"
)

// ReloadSubscriber delivers reload request messages. Satisfied by
// *events.Bus.
type ReloadSubscriber interface {
	Subscribe(ctx context.Context) (<-chan *message.Message, error)
}

// ReloadListenerService reloads the catalog for every reload request
// received on the event bus.
type ReloadListenerService struct {
	subscriber ReloadSubscriber
	reloader   CatalogReloader
	logger     zerolog.Logger
}

// NewReloadListenerService creates the service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewReloadListenerService(subscriber ReloadSubscriber, reloader CatalogReloader, logger zerolog.Logger) *ReloadListenerService {
	return &ReloadListenerService{
		subscriber: subscriber,
		reloader:   reloader,
		logger:     logger.With().Str("service", "reload-listener").Logger(),
	}
}

// Serve implements suture.Service. When the subscription ends without ctx
// being canceled the bus was closed, and the service is not restarted.
func (s *ReloadListenerService) Serve(ctx context.Context) error {
	msgs, err := s.subscriber.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to reload events: %w", err)
	}
	s.logger.Info().Str("topic", events.TopicCatalogReload).Msg("listening for reload requests")

	events.Consume(ctx, msgs, s.handle, s.logger)

	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.logger.Warn().Msg("reload subscription closed")
	return suture.ErrDoNotRestart
}

func (s *ReloadListenerService) handle(ctx context.Context, req events.ReloadRequest) error {
	status, err := s.reloader.Reload(ctx, ReasonEvent+":"+req.Reason)
	if errors.Is(err, catalog.ErrReloadThrottled) {
		s.logger.Info().
			Str("request_id", req.RequestID).
			Uint64("generation", status.Generation).
			Msg("reload request throttled, serving current index")
		return nil
	}
	return err
}

// String names the service in supervisor events.
func (s *ReloadListenerService) String() string {
	return "reload-listener"
}
