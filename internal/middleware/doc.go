// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

// Package middleware provides HTTP middleware shared by the API router.
//
// All middleware uses the standard func(http.Handler) http.Handler shape and
// is installed with chi's r.Use:
//
//	r.Use(middleware.RequestID)
//	r.Use(middleware.PrometheusMetrics)
//
// RequestID assigns or propagates X-Request-ID and stores it for
// logging.Ctx. PrometheusMetrics records api_requests_total,
// api_request_duration_seconds and api_active_requests, labelled with the
// chi route pattern.
package middleware
