// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package config

import "time"

// Config holds all application configuration.
// It is populated by Load from defaults, an optional YAML file and
// environment variables.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Cache     CacheConfig     `koanf:"cache"`
	Events    EventsConfig    `koanf:"events"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging or production
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Catalog source types.
const (
	SourceFile   = "file"
	SourceS3     = "s3"
	SourceSQLite = "sqlite"
	SourceDuckDB = "duckdb"
)

// CatalogConfig selects where the title catalog is loaded from and how often
// it is rebuilt.
type CatalogConfig struct {
	// Source is one of file, s3, sqlite or duckdb.
	Source string `koanf:"source"`

	// Path is the JSON catalog file for the file source.
	Path string `koanf:"path"`

	S3  S3Config  `koanf:"s3"`
	SQL SQLConfig `koanf:"sql"`

	// ReloadInterval rebuilds the index periodically. Zero disables the timer;
	// reload events still apply.
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// MinReloadInterval is the minimum spacing between two rebuilds.
	MinReloadInterval time.Duration `koanf:"min_reload_interval"`

	// LoadTimeout bounds a single source load.
	LoadTimeout time.Duration `koanf:"load_timeout"`

	// RetainOnEmpty keeps the published index when a reload yields no
	// titles instead of publishing an unbuilt one.
	RetainOnEmpty bool `koanf:"retain_on_empty"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// S3Config locates the catalog document in an S3-compatible object store.
type S3Config struct {
	Bucket       string `koanf:"bucket"`
	Key          string `koanf:"key"`
	Region       string `koanf:"region"`
	Endpoint     string `koanf:"endpoint"`
	AccessKey    string `koanf:"access_key"`
	SecretKey    string `koanf:"secret_key"`
	UsePathStyle bool   `koanf:"use_path_style"`
}

// SQLConfig configures the sqlite and duckdb sources.
type SQLConfig struct {
	DSN   string `koanf:"dsn"`
	Query string `koanf:"query"` // empty uses the default titles query
}

// BreakerConfig configures the circuit breaker around the catalog source.
type BreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
}

// RecommendConfig holds query limits of the recommendation engine.
type RecommendConfig struct {
	DefaultLimit     int `koanf:"default_limit"`
	MaxLimit         int `koanf:"max_limit"`
	OverviewGenres   int `koanf:"overview_genres"`
	OverviewTopRated int `koanf:"overview_top_rated"`
}

// CacheConfig configures the response cache.
type CacheConfig struct {
	// Backend is memory, redis or none.
	Backend  string        `koanf:"backend"`
	TTL      time.Duration `koanf:"ttl"`
	Capacity int           `koanf:"capacity"`
	Redis    RedisConfig   `koanf:"redis"`
}

// RedisConfig holds the redis cache connection settings.
type RedisConfig struct {
	Addr      string        `koanf:"addr"`
	Password  string        `koanf:"password"`
	DB        int           `koanf:"db"`
	KeyPrefix string        `koanf:"key_prefix"`
	OpTimeout time.Duration `koanf:"op_timeout"`
}

// Event transports.
const (
	TransportChannel = "gochannel"
	TransportNATS    = "nats"
)

// EventsConfig selects the transport of catalog reload events.
type EventsConfig struct {
	// Transport is gochannel (in-process) or nats. nats requires a binary
	// built with the nats tag.
	Transport string `koanf:"transport"`
	NATSURL   string `koanf:"nats_url"`
	QueueSize int64  `koanf:"queue_size"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Addr returns the HTTP listen address.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}
