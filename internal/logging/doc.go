// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

// Package logging provides centralized zerolog-based structured logging for Streamscout.
//
// JSON output is the default; console output is available for development.
// The global logger is configured once at startup:
//
//	logging.Init(logging.Config{
//	    Level:     "info",
//	    Format:    "json",
//	    Timestamp: true,
//	})
//
//	logging.Info().Int("titles", n).Msg("catalog loaded")
//
// # Request Context
//
// HTTP middleware stores a request ID in the request context; background
// reloads carry a correlation ID. Ctx attaches both to log lines:
//
//	logging.Ctx(r.Context()).Warn().Str("title", q).Msg("no catalog title matches query")
//
// # Adapters
//
// SlogHandler exposes zerolog as an slog.Handler for the supervisor tree's
// event hook. WatermillAdapter implements watermill.LoggerAdapter for the
// event bus.
package logging
