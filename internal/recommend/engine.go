// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package recommend

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Note: This package has no dependencies on other internal packages.
// Loading, caching and metrics are layered on top by the callers.

// largeCatalogWarning is the title count above which Build logs the memory
// held by the similarity matrix.
const largeCatalogWarning = 20000

// snapshot is an immutable published index. It is replaced as a whole.
type snapshot struct {
	catalog    []TitleRecord
	lowered    []string
	features   *FeatureMatrix
	similarity *SimilarityMatrix

	generation    uint64
	fingerprint   string
	builtAt       time.Time
	buildDuration time.Duration
}

func (s *snapshot) state() State {
	if s == nil || len(s.catalog) == 0 {
		return StateUnbuilt
	}
	return StateReady
}

// Engine encodes a catalog and answers similarity queries against it.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	current    atomic.Pointer[snapshot]
	buildMu    sync.Mutex
	generation atomic.Uint64

	queryCount atomic.Int64
	missCount  atomic.Int64
}

// NewEngine creates an unbuilt engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Build encodes the catalog, computes the similarity matrix and publishes
// both atomically. Rebuilding replaces the previous index entirely. An empty
// catalog publishes an unbuilt index.
func (e *Engine) Build(catalog []TitleRecord) State {
	e.buildMu.Lock()
	defer e.buildMu.Unlock()

	start := time.Now()
	records := cloneCatalog(catalog)

	snap := &snapshot{
		catalog: records,
		lowered: make([]string, len(records)),
	}
	for i := range records {
		snap.lowered[i] = strings.ToLower(strings.TrimSpace(records[i].Title))
	}
	snap.fingerprint = fingerprint(records, e.config.Overview)
	snap.features = Encode(records)
	snap.similarity = BuildSimilarity(snap.features)
	snap.builtAt = time.Now()
	snap.buildDuration = time.Since(start)
	snap.generation = e.generation.Add(1)

	e.current.Store(snap)

	if len(records) > largeCatalogWarning {
		e.logger.Warn().
			Int("titles", len(records)).
			Int64("similarity_bytes", snap.similarity.Bytes()).
			Msg("large catalog: similarity matrix is quadratic in title count")
	}

	e.logger.Info().
		Int("titles", len(records)).
		Int("features", snap.features.Cols).
		Int("genres", len(snap.features.Genres)).
		Uint64("generation", snap.generation).
		Str("fingerprint", snap.fingerprint).
		Dur("duration", snap.buildDuration).
		Str("state", snap.state().String()).
		Msg("catalog index built")

	return snap.state()
}

// Recommend returns up to limit titles most similar to the queried title,
// best first, excluding the matched title itself. It returns an empty list
// when the engine is unbuilt, the query matches nothing or limit <= 0.
func (e *Engine) Recommend(title string, limit int) []Result {
	return e.View().Match(title, limit).Results
}

// Resolve returns the catalog title a query resolves to. The second return
// value is false when nothing matches or the engine is unbuilt.
func (e *Engine) Resolve(title string) (string, bool) {
	return e.View().Resolve(title)
}

// State returns the state of the published index.
func (e *Engine) State() State {
	return e.View().State()
}

// Generation returns the generation of the published index. It is 0 before
// the first Build and increases by one on every Build.
func (e *Engine) Generation() uint64 {
	return e.View().Generation()
}

// Status describes the published index.
func (e *Engine) Status() Status {
	return e.View().Status()
}

// QueryStats returns the number of Recommend calls and how many of them
// produced no results.
func (e *Engine) QueryStats() (queries, misses int64) {
	return e.queryCount.Load(), e.missCount.Load()
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

func cloneCatalog(catalog []TitleRecord) []TitleRecord {
	out := make([]TitleRecord, len(catalog))
	for i, rec := range catalog {
		out[i] = rec
		out[i].Rating = finiteOrZero(rec.Rating)
		if rec.Genres != nil {
			out[i].Genres = append([]string(nil), rec.Genres...)
		}
		if rec.Platforms != nil {
			out[i].Platforms = make(map[string]bool, len(rec.Platforms))
			for k, v := range rec.Platforms {
				out[i].Platforms[k] = v
			}
		}
	}
	return out
}

// fingerprint hashes everything a query answer depends on: the records in
// catalog order and the overview sizes.
func fingerprint(records []TitleRecord, overview OverviewConfig) string {
	h := sha256.New()
	var buf []byte
	buf = strconv.AppendInt(buf, int64(overview.TopGenres), 10)
	buf = append(buf, '/')
	buf = strconv.AppendInt(buf, int64(overview.TopRated), 10)
	buf = append(buf, 0x1e)
	h.Write(buf)
	for i := range records {
		rec := &records[i]
		buf = buf[:0]
		buf = append(buf, rec.Title...)
		buf = append(buf, 0x1f)
		buf = append(buf, strings.Join(genreSet(rec.Genres), "\x1d")...)
		buf = append(buf, 0x1f)
		buf = strconv.AppendFloat(buf, rec.Rating, 'g', -1, 64)
		buf = append(buf, 0x1f)
		buf = strconv.AppendInt(buf, int64(rec.Year), 10)
		buf = append(buf, 0x1f)
		buf = append(buf, strings.Join(rec.PlatformList(), "\x1d")...)
		buf = append(buf, 0x1e)
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil)[:12])
}
