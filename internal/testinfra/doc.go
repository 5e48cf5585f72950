// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to manage Docker containers for integration tests.
// It is only compiled with the integration build tag:
//
//	go test -tags integration ./...
//
// # Containers
//
//   - RedisContainer: backs the redis result cache tests
//   - MinIOContainer: an S3-compatible store for the S3 catalog source tests
//
// Example:
//
//	func TestRedisCache(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    redis, err := testinfra.NewRedisContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, redis)
//	    // use redis.Addr
//	}
//
// Tests are skipped gracefully if Docker is unavailable. The first run may
// need to download container images.
package testinfra
