// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

/*
Package catalog loads title catalogs and publishes them to the recommendation
engine.

# Sources

A Source produces the ordered catalog:

  - FileSource: a JSON array of title objects on local disk
  - S3Source: the same JSON document stored in an S3-compatible bucket
  - SQLSource: rows of a query against SQLite or DuckDB
  - BreakerSource: wraps any source in a circuit breaker

Every source decodes loosely typed rows with DecodeRecord, which accepts the
column spellings found in exported streaming datasets:

	{"Title": "Inception", "Genres": "Action,Sci-Fi", "IMDb": "8.8",
	 "Year": 2010, "Netflix": 1, "Hulu": 0, "Prime Video": 1, "Disney+": 0}

# Reloading

Reloader loads a source and rebuilds the engine. Reloads are rate limited.
A failed load leaves the published index untouched, so queries keep
answering from the last good catalog. An empty load publishes an unbuilt
index; set RetainOnEmpty to treat it as a failure instead.

	reloader := catalog.NewReloader(engine, source, catalog.ReloaderConfig{
	    MinInterval: 30 * time.Second,
	    LoadTimeout: 2 * time.Minute,
	}, logger)

	status, err := reloader.Reload(ctx, "startup")
*/
package catalog
