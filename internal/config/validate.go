// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid.
// Errors name the environment variable that sets the offending value.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateEvents(); err != nil {
		return err
	}
	return c.validateSecurity()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

func (c *Config) validateCatalog() error {
	cat := &c.Catalog
	switch cat.Source {
	case SourceFile:
		if cat.Path == "" {
			return fmt.Errorf("CATALOG_PATH is required when CATALOG_SOURCE=file")
		}
	case SourceS3:
		if cat.S3.Bucket == "" || cat.S3.Key == "" {
			return fmt.Errorf("CATALOG_S3_BUCKET and CATALOG_S3_KEY are required when CATALOG_SOURCE=s3")
		}
		if (cat.S3.AccessKey == "") != (cat.S3.SecretKey == "") {
			return fmt.Errorf("CATALOG_S3_ACCESS_KEY and CATALOG_S3_SECRET_KEY must be set together")
		}
	case SourceSQLite, SourceDuckDB:
		if cat.SQL.DSN == "" && cat.Source == SourceSQLite {
			return fmt.Errorf("CATALOG_SQL_DSN is required when CATALOG_SOURCE=sqlite")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be file, s3, sqlite or duckdb, got %q", cat.Source)
	}

	if err := nonNegative("CATALOG_RELOAD_INTERVAL", cat.ReloadInterval); err != nil {
		return err
	}
	if err := nonNegative("CATALOG_MIN_RELOAD_INTERVAL", cat.MinReloadInterval); err != nil {
		return err
	}
	if err := nonNegative("CATALOG_LOAD_TIMEOUT", cat.LoadTimeout); err != nil {
		return err
	}
	if cat.Breaker.Enabled {
		if cat.Breaker.FailureThreshold == 0 {
			return fmt.Errorf("CATALOG_BREAKER_FAILURES must be at least 1 when the breaker is enabled")
		}
		if cat.Breaker.Timeout <= 0 {
			return fmt.Errorf("CATALOG_BREAKER_TIMEOUT must be positive, got %v", cat.Breaker.Timeout)
		}
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxLimit < 1 {
		return fmt.Errorf("RECOMMEND_MAX_LIMIT must be at least 1, got %d", r.MaxLimit)
	}
	if r.DefaultLimit < 1 || r.DefaultLimit > r.MaxLimit {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMIT must be between 1 and %d, got %d", r.MaxLimit, r.DefaultLimit)
	}
	if r.OverviewGenres < 0 || r.OverviewTopRated < 0 {
		return fmt.Errorf("RECOMMEND_OVERVIEW_GENRES and RECOMMEND_OVERVIEW_TOP_RATED must not be negative")
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case "none":
		return nil
	case "memory":
		if c.Cache.Capacity < 1 {
			return fmt.Errorf("CACHE_CAPACITY must be at least 1, got %d", c.Cache.Capacity)
		}
	case "redis":
		if c.Cache.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be memory, redis or none, got %q", c.Cache.Backend)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %v", c.Cache.TTL)
	}
	return nil
}

func (c *Config) validateEvents() error {
	switch c.Events.Transport {
	case TransportChannel:
	case TransportNATS:
		if c.Events.NATSURL == "" {
			return fmt.Errorf("NATS_URL is required when EVENTS_TRANSPORT=nats")
		}
	default:
		return fmt.Errorf("EVENTS_TRANSPORT must be gochannel or nats, got %q", c.Events.Transport)
	}
	if c.Events.QueueSize < 0 {
		return fmt.Errorf("EVENTS_QUEUE_SIZE must not be negative, got %d", c.Events.QueueSize)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

// ShouldWarnAboutCORS reports whether a wildcard CORS origin is configured in
// production.
func (c *Config) ShouldWarnAboutCORS() bool {
	if !c.Server.IsProduction() {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func nonNegative(envVar string, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%s must not be negative, got %v", envVar, d)
	}
	return nil
}
