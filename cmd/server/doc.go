// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

/*
Package main is the Streamscout server.

Streamscout loads a catalog of streaming titles, encodes each title as a
weighted feature vector (genres, rating, platforms, release year) and answers
"more like this" queries from an all-pairs cosine similarity index. The
catalog comes from a JSON file, an S3 object, or a SQLite or DuckDB table and
is rebuilt on a timer or when a reload event arrives.

# Startup

  - Load configuration (defaults, config.yaml, environment)
  - Initialize zerolog
  - Create the recommendation engine and the catalog source
  - Create the reloader, event bus and result cache
  - Build the chi router
  - Start the supervisor tree and serve until SIGINT or SIGTERM

# Supervisor Tree

	streamscout
	├── data-layer
	│   └── catalog-service      initial load and scheduled reloads
	├── messaging-layer
	│   └── reload-listener      reloads on catalog.reload events
	└── api-layer
	    └── http-server

Each service is restarted by its supervisor with exponential backoff. A
source that keeps failing leaves the API serving the last published index.

# Configuration

See internal/config for every option. Common environment variables:

	HTTP_PORT=8080
	LOG_LEVEL=info
	CATALOG_SOURCE=file
	CATALOG_PATH=/data/catalog.json
	CACHE_BACKEND=memory
	EVENTS_TRANSPORT=gochannel

# Endpoints

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
*/
package main
