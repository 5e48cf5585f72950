// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

/*
Package api provides the HTTP interface of Streamscout.

Every endpoint answers with a models.APIResponse envelope. Handlers read the
published catalog index through the recommend.Engine and never block on a
rebuild: a reload swaps the index atomically, and requests in flight keep
using the index they started with.

# Routes

	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /api/v1/recommendations?title=&limit=
	GET  /api/v1/titles/search?q=&limit=
	GET  /api/v1/titles/suggest?prefix=&limit=
	GET  /api/v1/platforms/{platform}
	GET  /api/v1/catalog/overview
	GET  /api/v1/catalog/top-rated?limit=
	GET  /api/v1/catalog/status
	POST /api/v1/catalog/reload
	GET  /metrics

# Caching

Recommendation, search and top-rated payloads are stored in the configured
cache.ResultCache under keys scoped to the catalog content fingerprint, so a
replica or restart serving different content never sees stale results.
Cached responses set metadata.cached.

# Middleware

The router installs, in order: request ID with logging context, real IP,
panic recovery, CORS, Prometheus instrumentation and response compression.
Routes under /api/v1 are additionally rate limited per client IP with
go-chi/httprate and carry the API security headers.
*/
package api
