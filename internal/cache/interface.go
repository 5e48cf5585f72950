// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ResultCache stores encoded query responses. Implementations never return
// errors to the caller: a failing backend behaves like a miss.
type ResultCache interface {
	// Get returns the cached payload for key.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores payload under key with the backend's TTL.
	Set(ctx context.Context, key string, payload []byte)

	// Name identifies the backend in logs and metrics.
	Name() string
}

// Backend names.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Config selects and sizes the result cache.
type Config struct {
	// Backend is "memory", "redis" or "none".
	Backend string

	// TTL bounds how long a payload is served.
	TTL time.Duration

	// Capacity is the maximum number of entries of the memory backend.
	Capacity int

	// Redis configures the redis backend.
	Redis RedisConfig
}

// New creates the configured cache. The "none" backend returns a cache that
// never hits.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg Config, logger zerolog.Logger) (ResultCache, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryCache(cfg.Capacity, cfg.TTL), nil
	case BackendRedis:
		return NewRedisCache(cfg.Redis, cfg.TTL, logger)
	case BackendNone:
		return noopCache{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// UnbuiltScope scopes keys computed before any catalog was published.
const UnbuiltScope = "unbuilt"

// Key builds a cache key scoped to the content fingerprint of an index.
// Processes that share a backend only share entries when they serve the same
// catalog, and a rebuild from a changed catalog never reads older payloads.
func Key(fingerprint, kind string, parts ...string) string {
	if fingerprint == "" {
		fingerprint = UnbuiltScope
	}
	var b strings.Builder
	b.WriteString(fingerprint)
	b.WriteByte(':')
	b.WriteString(kind)
	for _, p := range parts {
		b.WriteByte(':')
		b.WriteString(strings.ToLower(strings.TrimSpace(p)))
	}
	return b.String()
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (noopCache) Set(context.Context, string, []byte)        {}
func (noopCache) Name() string                               { return BackendNone }

// Verify interface implementations at compile time
var (
	_ ResultCache = (*MemoryCache)(nil)
	_ ResultCache = (*RedisCache)(nil)
	_ ResultCache = noopCache{}
)
