// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/streamscout/internal/metrics"
	"github.com/tomtom215/streamscout/internal/recommend"
)

// BreakerConfig configures the circuit breaker around a source.
type BreakerConfig struct {
	// MaxRequests is the number of trial loads allowed while half-open.
	MaxRequests uint32

	// Interval resets the failure counts while closed. Zero never resets.
	Interval time.Duration

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration

	// FailureThreshold is the number of consecutive failures that opens
	// the breaker.
	FailureThreshold uint32
}

// DefaultBreakerConfig returns conservative breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      1,
		Interval:         0,
		Timeout:          60 * time.Second,
		FailureThreshold: 3,
	}
}

// BreakerSource protects a source with a circuit breaker. While the breaker
// is open, Load fails fast with ErrSourceUnavailable.
type BreakerSource struct {
	inner  Source
	cb     *gobreaker.CircuitBreaker[[]recommend.TitleRecord]
	logger zerolog.Logger
}

// NewBreakerSource wraps inner.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBreakerSource(inner Source, cfg BreakerConfig, logger zerolog.Logger) *BreakerSource {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 1
	}
	name := "catalog-" + inner.Name()
	b := &BreakerSource{
		inner:  inner,
		logger: logger.With().Str("breaker", name).Logger(),
	}
	b.cb = gobreaker.NewCircuitBreaker[[]recommend.TitleRecord](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
			b.logger.Warn().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("catalog source circuit breaker state changed")
		},
	})
	return b
}

// Name implements Source.
func (b *BreakerSource) Name() string {
	return b.inner.Name()
}

// State returns the breaker state name.
func (b *BreakerSource) State() string {
	return b.cb.State().String()
}

// Load implements Source.
func (b *BreakerSource) Load(ctx context.Context) ([]recommend.TitleRecord, error) {
	records, err := b.cb.Execute(func() ([]recommend.TitleRecord, error) {
		return b.inner.Load(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return records, err
}
