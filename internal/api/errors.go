// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package api

import "errors"

// Error codes returned in models.APIError.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodeNotReady         = "SERVICE_NOT_READY"
	CodeReloadFailed     = "RELOAD_FAILED"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrReloadUnavailable is returned when no reload publisher is configured.
var ErrReloadUnavailable = errors.New("catalog reload is not available")
