// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Catalog Metrics:
  - catalog_build_duration_seconds: Encode plus similarity time (histogram)
  - catalog_titles: Titles in the published index (gauge)
  - catalog_feature_width: Feature columns (gauge)
  - catalog_index_ready: 0=unbuilt, 1=ready (gauge)
  - catalog_index_generation: Published generation (gauge)
  - catalog_reloads_total: Reload attempts (counter)
    Labels: source, outcome
  - catalog_last_success_timestamp: Last successful reload (gauge)

Recommendation Metrics:
  - recommendation_queries_total: Queries by outcome (counter)
    Labels: outcome (hit, empty)
  - recommendation_results: Results per query (histogram)

Cache Metrics:
  - cache_hits_total, cache_misses_total: Lookups (counter)
    Labels: backend
  - cache_errors_total: Backend failures (counter)
    Labels: backend, operation

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_state_transitions_total (counter)
    Labels: name, from_state, to_state

Event Metrics:
  - events_published_total (counter), Labels: topic
  - events_consumed_total (counter), Labels: topic, result

# Usage

	start := time.Now()
	// ... handle request ...
	metrics.RecordAPIRequest("GET", "/api/v1/recommendations", "200", time.Since(start))

# Thread Safety

All functions are safe for concurrent use; Prometheus collectors handle
their own synchronization.
*/
package metrics
