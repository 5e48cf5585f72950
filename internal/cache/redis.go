// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tomtom215/streamscout/internal/metrics"
)

// RedisConfig holds redis connection options.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string

	// OpTimeout bounds each cache operation. Default: 100ms.
	OpTimeout time.Duration
}

// RedisCache is a ResultCache shared between instances through redis.
type RedisCache struct {
	client  *redis.Client
	ttl     time.Duration
	prefix  string
	timeout time.Duration
	logger  zerolog.Logger
}

// NewRedisCache connects to redis and verifies the connection with PING.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRedisCache(cfg RedisConfig, ttl time.Duration, logger zerolog.Logger) (*RedisCache, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis cache requires an address")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	c := NewRedisCacheFromClient(client, cfg.KeyPrefix, ttl, cfg.OpTimeout, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}
	return c, nil
}

// NewRedisCacheFromClient wraps an existing client.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRedisCacheFromClient(client *redis.Client, prefix string, ttl, opTimeout time.Duration, logger zerolog.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if opTimeout <= 0 {
		opTimeout = 100 * time.Millisecond
	}
	if prefix == "" {
		prefix = "streamscout:"
	}
	return &RedisCache{
		client:  client,
		ttl:     ttl,
		prefix:  prefix,
		timeout: opTimeout,
		logger:  logger.With().Str("component", "cache").Str("backend", BackendRedis).Logger(),
	}
}

// Get implements ResultCache.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := c.client.Get(ctx, c.prefix+key).Bytes()
	switch {
	case err == nil:
		metrics.RecordCacheLookup(BackendRedis, true)
		return payload, true
	case errors.Is(err, redis.Nil):
		metrics.RecordCacheLookup(BackendRedis, false)
		return nil, false
	default:
		metrics.RecordCacheError(BackendRedis, "get")
		c.logger.Warn().Err(err).Str("key", key).Msg("redis get failed")
		return nil, false
	}
}

// Set implements ResultCache.
func (c *RedisCache) Set(ctx context.Context, key string, payload []byte) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.client.Set(ctx, c.prefix+key, payload, c.ttl).Err(); err != nil {
		metrics.RecordCacheError(BackendRedis, "set")
		c.logger.Warn().Err(err).Str("key", key).Msg("redis set failed")
	}
}

// Name implements ResultCache.
func (c *RedisCache) Name() string {
	return BackendRedis
}

// Close closes the redis client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
