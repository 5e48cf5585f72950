// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package recommend

import (
	"math"
	"reflect"
	"testing"
)

func TestBuildSimilarity_Properties(t *testing.T) {
	catalog := []TitleRecord{
		{Title: "A", Genres: []string{"Action"}, Rating: 8, Year: 2020, Platforms: map[string]bool{PlatformNetflix: true}},
		{Title: "B", Genres: []string{"Action", "Drama"}, Rating: 7, Year: 2019, Platforms: map[string]bool{PlatformHulu: true}},
		{Title: "C", Genres: []string{"Comedy"}, Rating: 9, Year: 2021},
		{Title: "D"},
	}

	s := BuildSimilarity(Encode(catalog))
	if s.N != len(catalog) {
		t.Fatalf("N = %d, want %d", s.N, len(catalog))
	}
	for i := 0; i < s.N; i++ {
		if s.At(i, i) != 1 {
			t.Errorf("At(%d, %d) = %f, want 1", i, i, s.At(i, i))
		}
		for j := 0; j < s.N; j++ {
			v := s.At(i, j)
			if v < 0 || v > 1 {
				t.Errorf("At(%d, %d) = %f, want within [0, 1]", i, j, v)
			}
			if v != s.At(j, i) {
				t.Errorf("At(%d, %d) = %f but At(%d, %d) = %f", i, j, v, j, i, s.At(j, i))
			}
		}
	}
}

func TestBuildSimilarity_ZeroRow(t *testing.T) {
	// Constant rating and year with no genres or platforms encode to zeros.
	catalog := []TitleRecord{
		{Title: "A", Rating: 5, Year: 2000},
		{Title: "B", Rating: 5, Year: 2000},
	}

	s := BuildSimilarity(Encode(catalog))
	if got := s.At(0, 1); got != 0 {
		t.Errorf("similarity of zero rows = %f, want 0", got)
	}
}

func TestBuildSimilarity_MatchesCosine(t *testing.T) {
	catalog := []TitleRecord{
		{Title: "A", Genres: []string{"Action"}, Rating: 8, Year: 2020, Platforms: map[string]bool{PlatformNetflix: true}},
		{Title: "B", Genres: []string{"Action"}, Rating: 7, Year: 2019, Platforms: map[string]bool{PlatformNetflix: true}},
		{Title: "C", Genres: []string{"Comedy"}, Rating: 9, Year: 2021, Platforms: map[string]bool{PlatformHulu: true}},
	}

	m := Encode(catalog)
	s := BuildSimilarity(m)

	cosine := func(a, b []float64) float64 {
		var dot, na, nb float64
		for i := range a {
			dot += a[i] * b[i]
			na += a[i] * a[i]
			nb += b[i] * b[i]
		}
		return dot / math.Sqrt(na*nb)
	}

	for i := 0; i < m.Rows; i++ {
		for j := i + 1; j < m.Rows; j++ {
			want := cosine(m.Row(i), m.Row(j))
			if got := float64(s.At(i, j)); math.Abs(got-want) > 1e-5 {
				t.Errorf("At(%d, %d) = %f, want %f", i, j, got, want)
			}
		}
	}
}

func TestResolveTitle(t *testing.T) {
	lowered := []string{"the matrix reloaded", "the matrix", "matrix", "the matrix"}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"exact match beats earlier substring", "The Matrix", 1},
		{"exact match is case-insensitive", "MATRIX", 2},
		{"first duplicate wins", "the matrix", 1},
		{"substring fallback takes first", "reload", 0},
		{"surrounding space is ignored", "  matrix  ", 2},
		{"no match", "Inception", -1},
		{"blank query", "   ", -1},
		{"regex metacharacters are literal", "matrix.*", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := resolveTitle(lowered, tt.query); got != tt.want {
				t.Errorf("resolveTitle(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestRankNeighbors_StableTies(t *testing.T) {
	s := &SimilarityMatrix{N: 5, Data: []float32{
		1, 0.5, 0.9, 0.5, 0.5,
		0.5, 1, 0, 0, 0,
		0.9, 0, 1, 0, 0,
		0.5, 0, 0, 1, 0,
		0.5, 0, 0, 0, 1,
	}}

	got := rankNeighbors(s, 0, 10)
	if want := []int{2, 1, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("rankNeighbors() = %v, want %v", got, want)
	}

	got = rankNeighbors(s, 0, 2)
	if want := []int{2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("rankNeighbors(limit=2) = %v, want %v", got, want)
	}

	if got := rankNeighbors(s, 0, 0); len(got) != 0 {
		t.Errorf("rankNeighbors(limit=0) = %v, want empty", got)
	}
}

func TestScorePercent(t *testing.T) {
	tests := []struct {
		sim  float32
		want float64
	}{
		{0, 0},
		{1, 100},
		{0.5, 50},
		{0.123456, 12.35},
		{1.0000001, 100},
	}
	for _, tt := range tests {
		if got := scorePercent(tt.sim); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("scorePercent(%v) = %v, want %v", tt.sim, got, tt.want)
		}
	}
}
