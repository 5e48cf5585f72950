// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/streamscout/internal/cache"
	"github.com/tomtom215/streamscout/internal/catalog"
	"github.com/tomtom215/streamscout/internal/events"
	"github.com/tomtom215/streamscout/internal/recommend"
)

// ReloadPublisher requests an asynchronous catalog reload.
type ReloadPublisher interface {
	PublishReload(ctx context.Context, reason string) (events.ReloadRequest, error)
}

// ReloadReporter describes the catalog source and its last reload.
type ReloadReporter interface {
	LastResult() *catalog.ReloadResult
	SourceName() string
}

// BreakerReporter exposes the state of the circuit breaker guarding the
// catalog source.
type BreakerReporter interface {
	State() string
}

// Deps holds the optional collaborators of a Handler.
type Deps struct {
	// Cache stores computed payloads. Nil disables caching.
	Cache cache.ResultCache

	// Publisher receives reload requests. Nil makes POST /catalog/reload
	// answer 503.
	Publisher ReloadPublisher

	// Reloads reports the last reload in /catalog/status.
	Reloads ReloadReporter

	// Breaker reports the source circuit breaker state.
	Breaker BreakerReporter

	// Version is reported by the health endpoints.
	Version string
}

// Handler serves the HTTP API.
type Handler struct {
	engine    *recommend.Engine
	cache     cache.ResultCache
	suggest   *cache.SuggestIndex
	publisher ReloadPublisher
	reloads   ReloadReporter
	breaker   BreakerReporter
	version   string
	startTime time.Time
}

// NewHandler creates a handler reading from engine.
func NewHandler(engine *recommend.Engine, deps Deps) *Handler {
	c := deps.Cache
	if c == nil {
		// "none" never fails
		c, _ = cache.New(cache.Config{Backend: cache.BackendNone}, zerolog.Nop())
	}
	return &Handler{
		engine:    engine,
		cache:     c,
		suggest:   cache.NewSuggestIndex(),
		publisher: deps.Publisher,
		reloads:   deps.Reloads,
		breaker:   deps.Breaker,
		version:   deps.Version,
		startTime: time.Now(),
	}
}
