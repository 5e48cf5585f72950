// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/streamscout/internal/testinfra"
)

func TestRedisCache_Integration(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx := context.Background()
	container, err := testinfra.NewRedisContainer(ctx)
	if err != nil {
		t.Fatalf("NewRedisContainer() error = %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, container)

	c, err := NewRedisCache(RedisConfig{Addr: container.Addr, KeyPrefix: "test:"}, time.Second, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRedisCache() error = %v", err)
	}
	defer c.Close()

	key := Key("3f9a", "recommend", "The Matrix", "10")
	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("Get() on empty redis hit")
	}

	c.Set(ctx, key, []byte(`[{"title":"Inception"}]`))
	payload, ok := c.Get(ctx, key)
	if !ok || string(payload) != `[{"title":"Inception"}]` {
		t.Errorf("Get() = %q, %v", payload, ok)
	}

	// Entries expire with the configured TTL.
	time.Sleep(1500 * time.Millisecond)
	if _, ok := c.Get(ctx, key); ok {
		t.Error("entry survived its TTL")
	}
}
