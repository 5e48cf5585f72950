// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/streamscout/config.yaml",
	"/etc/streamscout/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvFile is loaded into the process environment by Load when present.
// Variables already set in the environment win.
const DotEnvFile = ".env"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Source:            SourceFile,
			Path:              "data/titles.json",
			S3:                S3Config{Region: "us-east-1"},
			ReloadInterval:    0, // reload on events only
			MinReloadInterval: 10 * time.Second,
			LoadTimeout:       2 * time.Minute,
			Breaker: BreakerConfig{
				Enabled:          true,
				MaxRequests:      1,
				Interval:         0,
				Timeout:          60 * time.Second,
				FailureThreshold: 3,
			},
		},
		Recommend: RecommendConfig{
			DefaultLimit:     10,
			MaxLimit:         100,
			OverviewGenres:   10,
			OverviewTopRated: 10,
		},
		Cache: CacheConfig{
			Backend:  "memory",
			TTL:      5 * time.Minute,
			Capacity: 10000,
			Redis: RedisConfig{
				Addr:      "127.0.0.1:6379",
				KeyPrefix: "streamscout:",
				OpTimeout: 100 * time.Millisecond,
			},
		},
		Events: EventsConfig{
			Transport: TransportChannel,
			NATSURL:   "nats://127.0.0.1:4222",
			QueueSize: 16,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
	}
}

// Load loads configuration with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// A .env file in the working directory is merged into the process
// environment before layer 3 is read.
func Load() (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}
	return load(findConfigFile())
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// CATALOG_SOURCE -> catalog.source, REDIS_ADDR -> cache.redis.addr
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings; YAML lists are left untouched.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog mappings
	"catalog_source":              "catalog.source",
	"catalog_path":                "catalog.path",
	"catalog_reload_interval":     "catalog.reload_interval",
	"catalog_min_reload_interval": "catalog.min_reload_interval",
	"catalog_load_timeout":        "catalog.load_timeout",
	"catalog_retain_on_empty":     "catalog.retain_on_empty",
	"catalog_s3_bucket":           "catalog.s3.bucket",
	"catalog_s3_key":              "catalog.s3.key",
	"catalog_s3_region":           "catalog.s3.region",
	"catalog_s3_endpoint":         "catalog.s3.endpoint",
	"catalog_s3_access_key":       "catalog.s3.access_key",
	"catalog_s3_secret_key":       "catalog.s3.secret_key",
	"catalog_s3_path_style":       "catalog.s3.use_path_style",
	"catalog_sql_dsn":             "catalog.sql.dsn",
	"catalog_sql_query":           "catalog.sql.query",
	"catalog_breaker_enabled":     "catalog.breaker.enabled",
	"catalog_breaker_timeout":     "catalog.breaker.timeout",
	"catalog_breaker_failures":    "catalog.breaker.failure_threshold",

	// Recommendation mappings
	"recommend_default_limit":      "recommend.default_limit",
	"recommend_max_limit":          "recommend.max_limit",
	"recommend_overview_genres":    "recommend.overview_genres",
	"recommend_overview_top_rated": "recommend.overview_top_rated",

	// Cache mappings
	"cache_backend":    "cache.backend",
	"cache_ttl":        "cache.ttl",
	"cache_capacity":   "cache.capacity",
	"redis_addr":       "cache.redis.addr",
	"redis_password":   "cache.redis.password",
	"redis_db":         "cache.redis.db",
	"redis_key_prefix": "cache.redis.key_prefix",
	"redis_op_timeout": "cache.redis.op_timeout",

	// Event mappings
	"events_transport":  "events.transport",
	"events_queue_size": "events.queue_size",
	"nats_url":          "events.nats_url",

	// Security mappings
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped so that unrelated environment
// variables never leak into the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
