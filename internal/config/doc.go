// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

// Package config loads and validates Streamscout configuration.
//
// Configuration is layered with koanf v2, later layers overriding earlier
// ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file: $CONFIG_PATH, config.yaml, config.yml or
//     /etc/streamscout/config.yaml
//  3. Environment variables, including those read from a .env file
//
// Only environment variables listed in the mapping table are honored, for
// example:
//
//	CATALOG_SOURCE=s3         catalog.source
//	CATALOG_S3_BUCKET=media   catalog.s3.bucket
//	CACHE_BACKEND=redis       cache.backend
//	REDIS_ADDR=redis:6379     cache.redis.addr
//	CORS_ORIGINS=a.com,b.com  security.cors_origins
//
// Example YAML:
//
//	catalog:
//	  source: sqlite
//	  sql:
//	    dsn: /data/catalog.db
//	  reload_interval: 1h
//	cache:
//	  backend: memory
//	  ttl: 5m
package config
