// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package recommend

import (
	"math"
	"sort"
	"strings"
)

// FeatureMatrix is the encoded catalog: one row per title, in catalog order.
// Columns are laid out as [genres..., rating, platforms..., year].
type FeatureMatrix struct {
	Rows int
	Cols int

	// Data is row-major, len(Data) == Rows*Cols.
	Data []float64

	// Genres is the genre vocabulary in column order.
	Genres []string
}

// Row returns row i. The slice aliases the matrix and must not be modified.
func (m *FeatureMatrix) Row(i int) []float64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// RatingColumn is the index of the rating column.
func (m *FeatureMatrix) RatingColumn() int {
	return len(m.Genres)
}

// PlatformColumn is the index of the first platform column.
func (m *FeatureMatrix) PlatformColumn() int {
	return len(m.Genres) + 1
}

// YearColumn is the index of the year column.
func (m *FeatureMatrix) YearColumn() int {
	return len(m.Genres) + 1 + len(Platforms)
}

// Encode builds the weighted feature matrix for the catalog. It never fails:
// missing or invalid values encode as zeros.
func Encode(catalog []TitleRecord) *FeatureMatrix {
	genreSets := make([][]string, len(catalog))
	vocabSet := make(map[string]struct{})
	for i := range catalog {
		genreSets[i] = genreSet(catalog[i].Genres)
		for _, g := range genreSets[i] {
			vocabSet[g] = struct{}{}
		}
	}

	vocab := make([]string, 0, len(vocabSet))
	for g := range vocabSet {
		vocab = append(vocab, g)
	}
	sort.Strings(vocab)

	genreCol := make(map[string]int, len(vocab))
	for i, g := range vocab {
		genreCol[g] = i
	}

	m := &FeatureMatrix{
		Rows:   len(catalog),
		Cols:   len(vocab) + 1 + len(Platforms) + 1,
		Genres: vocab,
	}
	m.Data = make([]float64, m.Rows*m.Cols)

	ratings := make([]float64, len(catalog))
	years := make([]float64, len(catalog))
	for i := range catalog {
		ratings[i] = finiteOrZero(catalog[i].Rating)
		years[i] = float64(catalog[i].Year)
	}
	minMaxScale(ratings)
	minMaxScale(years)

	sGenre, sRating, sPlatform, sYear := blockScales()

	for i := range catalog {
		row := m.Row(i)

		if n := len(genreSets[i]); n > 0 {
			v := sGenre / math.Sqrt(float64(n))
			for _, g := range genreSets[i] {
				row[genreCol[g]] = v
			}
		}

		row[m.RatingColumn()] = ratings[i] * sRating

		available := 0
		for _, p := range Platforms {
			if catalog[i].AvailableOn(p) {
				available++
			}
		}
		if available > 0 {
			v := sPlatform / math.Sqrt(float64(available))
			for j, p := range Platforms {
				if catalog[i].AvailableOn(p) {
					row[m.PlatformColumn()+j] = v
				}
			}
		}

		row[m.YearColumn()] = years[i] * sYear
	}

	return m
}

// genreSet trims tags and drops blanks and duplicates, keeping first-seen order.
func genreSet(genres []string) []string {
	if len(genres) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(genres))
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

// minMaxScale rescales values in place to [0, 1]. When every value is the
// same the column becomes all zeros.
func minMaxScale(values []float64) {
	if len(values) == 0 {
		return
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	for i, v := range values {
		if span == 0 {
			values[i] = 0
			continue
		}
		values[i] = (v - lo) / span
	}
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
