// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package cache

import (
	"context"
	"time"

	"github.com/tomtom215/streamscout/internal/metrics"
)

// MemoryCache is an in-process ResultCache backed by an LFU. Popular titles
// are queried far more often than the long tail, which suits frequency-based
// eviction.
type MemoryCache struct {
	lfu *LFU[[]byte]
}

// NewMemoryCache creates a memory cache.
func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{lfu: NewLFU[[]byte](capacity, ttl)}
}

// Get implements ResultCache.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	payload, ok := c.lfu.Get(key)
	metrics.RecordCacheLookup(BackendMemory, ok)
	return payload, ok
}

// Set implements ResultCache.
func (c *MemoryCache) Set(_ context.Context, key string, payload []byte) {
	c.lfu.Set(key, payload)
}

// Name implements ResultCache.
func (c *MemoryCache) Name() string {
	return BackendMemory
}

// Len returns the number of cached payloads.
func (c *MemoryCache) Len() int {
	return c.lfu.Len()
}
