// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/tomtom215/streamscout/internal/recommend"
)

// FileSource reads a JSON catalog from local disk.
type FileSource struct {
	path   string
	logger zerolog.Logger
}

// NewFileSource creates a source for the JSON file at path.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFileSource(path string, logger zerolog.Logger) *FileSource {
	return &FileSource{
		path:   path,
		logger: logger.With().Str("source", "file").Str("path", path).Logger(),
	}
}

// Name implements Source.
func (s *FileSource) Name() string {
	return "file"
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) ([]recommend.TitleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrSourceUnavailable, s.path, err)
	}
	return decodeDocument(data, s.logger)
}

// decodeDocument parses and decodes a JSON catalog document.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func decodeDocument(data []byte, logger zerolog.Logger) ([]recommend.TitleRecord, error) {
	rows, err := parseDocument(data)
	if err != nil {
		return nil, err
	}
	records, skipped := DecodeRecords(rows)
	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Msg("dropped catalog rows without a title")
	}
	return records, nil
}
