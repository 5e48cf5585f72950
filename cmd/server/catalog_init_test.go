// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package main

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/streamscout/internal/catalog"
	"github.com/tomtom215/streamscout/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Catalog.Source = config.SourceFile
	cfg.Catalog.Path = "data/titles.json"
	cfg.Catalog.MinReloadInterval = 5 * time.Second
	cfg.Catalog.LoadTimeout = 30 * time.Second
	cfg.Recommend.DefaultLimit = 10
	cfg.Recommend.MaxLimit = 100
	cfg.Recommend.OverviewGenres = 5
	cfg.Recommend.OverviewTopRated = 3
	return cfg
}

func TestInitSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		configure   func(*testing.T, *config.Config)
		wantName    string
		wantBreaker bool
		wantErr     bool
	}{
		{
			name:     "file",
			wantName: "file",
		},
		{
			name: "file with breaker",
			configure: func(t *testing.T, c *config.Config) {
				c.Catalog.Breaker.Enabled = true
				c.Catalog.Breaker.MaxRequests = 1
				c.Catalog.Breaker.FailureThreshold = 3
				c.Catalog.Breaker.Timeout = time.Minute
			},
			wantName:    "file",
			wantBreaker: true,
		},
		{
			name: "sqlite",
			configure: func(t *testing.T, c *config.Config) {
				c.Catalog.Source = config.SourceSQLite
				c.Catalog.SQL.DSN = filepath.Join(t.TempDir(), "catalog.db")
			},
			wantName: "sqlite",
		},
		{
			name: "s3",
			configure: func(t *testing.T, c *config.Config) {
				c.Catalog.Source = config.SourceS3
				c.Catalog.S3.Bucket = "catalog"
				c.Catalog.S3.Key = "titles.json"
				c.Catalog.S3.Region = "us-east-1"
			},
			wantName: "s3",
		},
		{
			name:      "unknown source",
			configure: func(t *testing.T, c *config.Config) { c.Catalog.Source = "ftp" },
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			if tt.configure != nil {
				tt.configure(t, cfg)
			}

			comp, err := initSource(cfg, zerolog.Nop())
			if tt.wantErr {
				if err == nil {
					t.Fatal("initSource() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("initSource() error = %v", err)
			}
			t.Cleanup(func() { _ = comp.Close() })

			if got := comp.Source.Name(); got != tt.wantName {
				t.Errorf("Source.Name() = %q, want %q", got, tt.wantName)
			}
			if (comp.Breaker != nil) != tt.wantBreaker {
				t.Errorf("Breaker = %v, want breaker=%v", comp.Breaker, tt.wantBreaker)
			}
			if tt.wantBreaker {
				if _, ok := comp.Source.(*catalog.BreakerSource); !ok {
					t.Errorf("Source = %T, want *catalog.BreakerSource", comp.Source)
				}
				if got := comp.Breaker.State(); got != "closed" {
					t.Errorf("Breaker.State() = %q, want closed", got)
				}
			}
		})
	}
}

func TestEngineConfig(t *testing.T) {
	t.Parallel()

	got := engineConfig(testConfig())
	if got.Limits.DefaultK != 10 || got.Limits.MaxK != 100 {
		t.Errorf("Limits = %+v", got.Limits)
	}
	if got.Overview.TopGenres != 5 || got.Overview.TopRated != 3 {
		t.Errorf("Overview = %+v", got.Overview)
	}
}

func TestReloaderConfig(t *testing.T) {
	t.Parallel()

	got := reloaderConfig(testConfig())
	if got.MinInterval != 5*time.Second {
		t.Errorf("MinInterval = %v, want 5s", got.MinInterval)
	}
	if got.LoadTimeout != 30*time.Second {
		t.Errorf("LoadTimeout = %v, want 30s", got.LoadTimeout)
	}
	if got.RetainOnEmpty {
		t.Error("RetainOnEmpty = true, want the unbuilt default")
	}

	cfg := testConfig()
	cfg.Catalog.RetainOnEmpty = true
	if !reloaderConfig(cfg).RetainOnEmpty {
		t.Error("RetainOnEmpty not carried over")
	}
}

func TestMiddlewareConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Security.CORSOrigins = []string{"https://example.com"}
	cfg.Security.RateLimitReqs = 50
	cfg.Security.RateLimitWindow = time.Minute
	cfg.Security.RateLimitDisabled = true

	got := middlewareConfig(cfg)
	if len(got.CORSAllowedOrigins) != 1 || got.CORSAllowedOrigins[0] != "https://example.com" {
		t.Errorf("CORSAllowedOrigins = %v", got.CORSAllowedOrigins)
	}
	if got.RateLimitRequests != 50 || got.RateLimitWindow != time.Minute || !got.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", got.RateLimitRequests, got.RateLimitWindow, got.RateLimitDisabled)
	}
	if len(got.CORSAllowedMethods) == 0 {
		t.Error("CORSAllowedMethods should keep defaults")
	}
}

func TestHandlerDeps_NilCollaborators(t *testing.T) {
	t.Parallel()

	deps := handlerDeps(nil, nil, nil, nil)
	if deps.Publisher != nil || deps.Reloads != nil || deps.Breaker != nil {
		t.Errorf("deps = %+v, want nil interfaces", deps)
	}
	if deps.Version != version {
		t.Errorf("Version = %q, want %q", deps.Version, version)
	}
}

func TestCloseAll(t *testing.T) {
	t.Parallel()

	errA := errors.New("a")
	errB := errors.New("b")
	calls := 0
	closer := func(err error) func() error {
		return func() error {
			calls++
			return err
		}
	}

	err := closeAll(closer(errA), closer(nil), closer(errB))
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("closeAll() = %v, want both errors", err)
	}
	if err := closeAll(closer(nil)); err != nil {
		t.Errorf("closeAll() = %v, want nil", err)
	}
}
