// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver

	"github.com/tomtom215/streamscout/internal/recommend"
)

// DefaultQuery selects the whole titles table in insertion order.
const DefaultQuery = "SELECT * FROM titles ORDER BY rowid"

// SQLSource reads the catalog from a SQL query. Every result column becomes
// a field of the decoded row, so the query controls the column names.
type SQLSource struct {
	db     *sql.DB
	driver string
	query  string
	logger zerolog.Logger
}

// OpenSQLSource opens a database with driver "sqlite" or "duckdb".
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func OpenSQLSource(driver, dsn, query string, logger zerolog.Logger) (*SQLSource, error) {
	switch driver {
	case "sqlite", "duckdb":
	default:
		return nil, fmt.Errorf("unsupported catalog driver %q (want sqlite or duckdb)", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s catalog: %w", driver, err)
	}
	return NewSQLSource(db, driver, query, logger), nil
}

// NewSQLSource wraps an open database. An empty query selects DefaultQuery.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSQLSource(db *sql.DB, driver, query string, logger zerolog.Logger) *SQLSource {
	if query == "" {
		query = DefaultQuery
	}
	return &SQLSource{
		db:     db,
		driver: driver,
		query:  query,
		logger: logger.With().Str("source", "sql").Str("driver", driver).Logger(),
	}
}

// Name implements Source.
func (s *SQLSource) Name() string {
	return s.driver
}

// Load implements Source.
func (s *SQLSource) Load(ctx context.Context) ([]recommend.TitleRecord, error) {
	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("%w: query catalog: %v", ErrSourceUnavailable, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: read columns: %v", ErrSourceUnavailable, err)
	}

	var records []recommend.TitleRecord
	skipped := 0
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", ErrSourceUnavailable, err)
		}
		fields := make(map[string]any, len(columns))
		for i, col := range columns {
			fields[col] = values[i]
		}
		rec, err := DecodeRecord(fields)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrSourceUnavailable, err)
	}

	if skipped > 0 {
		s.logger.Warn().Int("skipped", skipped).Msg("dropped catalog rows without a title")
	}
	return records, nil
}

// Close closes the database.
func (s *SQLSource) Close() error {
	return s.db.Close()
}
