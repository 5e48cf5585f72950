// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package catalog

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/streamscout/internal/recommend"
)

// Field aliases, lowercase. The first present alias wins.
var (
	titleFields    = []string{"title", "name"}
	genreFields    = []string{"genres", "genre"}
	ratingFields   = []string{"imdb", "imdb_rating", "rating"}
	yearFields     = []string{"year", "release_year"}
	platformFields = []string{"platforms", "platform"}
)

// platformColumns maps lowercase column spellings to canonical platforms.
var platformColumns = map[string]string{
	"netflix":     recommend.PlatformNetflix,
	"hulu":        recommend.PlatformHulu,
	"prime video": recommend.PlatformPrimeVideo,
	"prime_video": recommend.PlatformPrimeVideo,
	"primevideo":  recommend.PlatformPrimeVideo,
	"disney+":     recommend.PlatformDisneyPlus,
	"disney_plus": recommend.PlatformDisneyPlus,
	"disneyplus":  recommend.PlatformDisneyPlus,
}

// DecodeRecord converts a loosely typed row into a TitleRecord. Keys are
// matched case-insensitively. Unparseable numbers decode as 0. A row without
// a non-blank title returns ErrMissingTitle.
func DecodeRecord(fields map[string]any) (recommend.TitleRecord, error) {
	row := make(map[string]any, len(fields))
	for k, v := range fields {
		key := strings.ToLower(strings.TrimSpace(k))
		if _, exists := row[key]; !exists {
			row[key] = v
		}
	}

	rec := recommend.TitleRecord{
		Title: strings.TrimSpace(asString(lookup(row, titleFields))),
	}
	if rec.Title == "" {
		return rec, ErrMissingTitle
	}

	rec.Genres = asList(lookup(row, genreFields))
	rec.Rating = asFloat(lookup(row, ratingFields))
	rec.Year = asYear(lookup(row, yearFields))

	for column, platform := range platformColumns {
		if v, ok := row[column]; ok && truthy(v) {
			setPlatform(&rec, platform)
		}
	}
	switch x := lookup(row, platformFields).(type) {
	case map[string]any:
		for name, available := range x {
			if platform, ok := platformName(name); ok && truthy(available) {
				setPlatform(&rec, platform)
			}
		}
	case map[string]bool:
		for name, available := range x {
			if platform, ok := platformName(name); ok && available {
				setPlatform(&rec, platform)
			}
		}
	default:
		for _, name := range asList(x) {
			if platform, ok := platformName(name); ok {
				setPlatform(&rec, platform)
			}
		}
	}

	return rec, nil
}

// platformName resolves a platform spelled either as its display name or as
// one of the column spellings.
func platformName(name string) (string, bool) {
	if platform, ok := recommend.CanonicalPlatform(name); ok {
		return platform, true
	}
	platform, ok := platformColumns[strings.ToLower(strings.TrimSpace(name))]
	return platform, ok
}

// DecodeRecords decodes rows in order, dropping rows without a title. It
// returns the number of dropped rows.
func DecodeRecords(rows []map[string]any) ([]recommend.TitleRecord, int) {
	out := make([]recommend.TitleRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		rec, err := DecodeRecord(row)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, rec)
	}
	return out, skipped
}

// parseDocument parses a JSON catalog: either an array of objects or an
// object holding the array under "titles" or "data".
func parseDocument(data []byte) ([]map[string]any, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if obj, ok := raw.(map[string]any); ok {
		switch {
		case obj["titles"] != nil:
			raw = obj["titles"]
		case obj["data"] != nil:
			raw = obj["data"]
		default:
			return nil, fmt.Errorf("%w: object without titles array", ErrInvalidDocument)
		}
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array of titles", ErrInvalidDocument)
	}
	rows := make([]map[string]any, 0, len(items))
	for i, item := range items {
		row, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrInvalidDocument, i)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func lookup(row map[string]any, aliases []string) any {
	for _, alias := range aliases {
		if v, ok := row[alias]; ok && v != nil {
			return v
		}
	}
	return nil
}

func setPlatform(rec *recommend.TitleRecord, platform string) {
	if rec.Platforms == nil {
		rec.Platforms = make(map[string]bool, len(recommend.Platforms))
	}
	rec.Platforms[platform] = true
}

func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case json.Number:
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// floater is implemented by numeric driver types such as duckdb.Decimal.
type floater interface {
	Float64() float64
}

func asFloat(v any) float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		f = x
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string, []byte:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(asString(x)), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case *big.Int:
		if x == nil {
			return 0
		}
		f, _ = new(big.Float).SetInt(x).Float64()
	case floater:
		f = x.Float64()
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			f = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			f = rv.Float()
		default:
			return 0
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// asYear decodes a release year. Dates contribute their year; numbers are
// truncated and clamped to the int32 range.
func asYear(v any) int {
	if t, ok := v.(time.Time); ok {
		return t.Year()
	}
	f := math.Trunc(asFloat(v))
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

func asList(v any) []string {
	var parts []string
	switch x := v.(type) {
	case nil:
		return nil
	case []string:
		parts = x
	case []any:
		parts = make([]string, 0, len(x))
		for _, item := range x {
			parts = append(parts, asString(item))
		}
	default:
		parts = strings.Split(asString(x), ",")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string, []byte:
		switch strings.ToLower(strings.TrimSpace(asString(x))) {
		case "1", "1.0", "true", "yes":
			return true
		}
		return false
	default:
		return asFloat(x) == 1
	}
}
