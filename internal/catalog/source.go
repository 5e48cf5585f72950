// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package catalog

import (
	"context"
	"errors"

	"github.com/tomtom215/streamscout/internal/recommend"
)

var (
	// ErrSourceUnavailable indicates the source could not be read.
	ErrSourceUnavailable = errors.New("catalog source unavailable")

	// ErrInvalidDocument indicates the source content could not be parsed.
	ErrInvalidDocument = errors.New("invalid catalog document")

	// ErrEmptyCatalog indicates the source produced no usable titles.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrReloadThrottled indicates a reload was rejected by the rate limiter.
	ErrReloadThrottled = errors.New("catalog reload throttled")

	// ErrMissingTitle indicates a row without a title.
	ErrMissingTitle = errors.New("record has no title")
)

// Source produces an ordered catalog.
type Source interface {
	// Load reads the full catalog.
	Load(ctx context.Context) ([]recommend.TitleRecord, error)

	// Name identifies the source in logs and metrics.
	Name() string
}
