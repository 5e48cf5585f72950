// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/streamscout/internal/metrics"
	"github.com/tomtom215/streamscout/internal/recommend"
)

// ReloaderConfig configures a Reloader.
type ReloaderConfig struct {
	// MinInterval is the minimum spacing between reloads. Zero disables
	// throttling.
	MinInterval time.Duration

	// Burst is the number of reloads allowed back to back. Default: 1.
	Burst int

	// LoadTimeout bounds a single source load. Zero means no timeout.
	LoadTimeout time.Duration

	// RetainOnEmpty treats a load that yields no titles as a failure and
	// keeps the published index. By default an empty load publishes an
	// unbuilt index.
	RetainOnEmpty bool
}

// ReloadResult describes the last reload attempt.
type ReloadResult struct {
	Reason    string    `json:"reason"`
	Source    string    `json:"source"`
	At        time.Time `json:"at"`
	Succeeded bool      `json:"succeeded"`
	Error     string    `json:"error,omitempty"`
}

// Reloader loads a source and rebuilds the engine from it.
type Reloader struct {
	engine  *recommend.Engine
	source  Source
	limiter *rate.Limiter
	timeout time.Duration
	retain  bool
	logger  zerolog.Logger

	loadMu sync.Mutex

	mu   sync.Mutex
	last *ReloadResult
}

// NewReloader creates a reloader for engine fed by source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewReloader(engine *recommend.Engine, source Source, cfg ReloaderConfig, logger zerolog.Logger) *Reloader {
	r := &Reloader{
		engine:  engine,
		source:  source,
		timeout: cfg.LoadTimeout,
		retain:  cfg.RetainOnEmpty,
		logger:  logger.With().Str("component", "catalog-reloader").Str("source", source.Name()).Logger(),
	}
	if cfg.MinInterval > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		r.limiter = rate.NewLimiter(rate.Every(cfg.MinInterval), burst)
	}
	return r
}

// Reload loads the catalog and rebuilds the engine. If the load fails, the
// published index is left untouched and the error is returned. A load that
// yields no titles publishes an unbuilt index, unless RetainOnEmpty is set, in
// which case it fails with ErrEmptyCatalog. Concurrent reloads are serialized.
func (r *Reloader) Reload(ctx context.Context, reason string) (recommend.Status, error) {
	if r.limiter != nil && !r.limiter.Allow() {
		metrics.RecordCatalogReload(r.source.Name(), "throttled")
		r.logger.Debug().Str("reason", reason).Msg("catalog reload throttled")
		return r.engine.Status(), ErrReloadThrottled
	}

	r.loadMu.Lock()
	defer r.loadMu.Unlock()

	loadCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	records, err := r.source.Load(loadCtx)
	if err == nil && len(records) == 0 && r.retain {
		err = ErrEmptyCatalog
	}
	if err != nil {
		outcome := "failure"
		if errors.Is(err, ErrEmptyCatalog) {
			outcome = "empty"
		}
		metrics.RecordCatalogReload(r.source.Name(), outcome)
		r.record(reason, err)
		r.logger.Error().Err(err).
			Str("reason", reason).
			Str("state", r.engine.State().String()).
			Msg("catalog reload failed, keeping published index")
		return r.engine.Status(), fmt.Errorf("reload catalog from %s: %w", r.source.Name(), err)
	}
	loadDuration := time.Since(start)

	state := r.engine.Build(records)
	status := r.engine.Status()

	metrics.RecordCatalogBuild(time.Duration(status.BuildDurationMS)*time.Millisecond,
		status.Titles, status.FeatureWidth, state == recommend.StateReady, status.Generation)
	r.record(reason, nil)

	if len(records) == 0 {
		metrics.RecordCatalogReload(r.source.Name(), "empty")
		r.logger.Warn().
			Str("reason", reason).
			Uint64("generation", status.Generation).
			Msg("catalog source returned no titles, published unbuilt index")
		return status, nil
	}
	metrics.RecordCatalogReload(r.source.Name(), "success")

	r.logger.Info().
		Str("reason", reason).
		Int("titles", status.Titles).
		Uint64("generation", status.Generation).
		Dur("load_duration", loadDuration).
		Int64("build_ms", status.BuildDurationMS).
		Msg("catalog reloaded")

	return status, nil
}

// LastResult returns the outcome of the most recent reload attempt that
// reached the source, or nil before the first one.
func (r *Reloader) LastResult() *ReloadResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return nil
	}
	res := *r.last
	return &res
}

// SourceName returns the name of the underlying source.
func (r *Reloader) SourceName() string {
	return r.source.Name()
}

func (r *Reloader) record(reason string, err error) {
	res := &ReloadResult{
		Reason:    reason,
		Source:    r.source.Name(),
		At:        time.Now(),
		Succeeded: err == nil,
	}
	if err != nil {
		res.Error = err.Error()
	}
	r.mu.Lock()
	r.last = res
	r.mu.Unlock()
}
