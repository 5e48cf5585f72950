// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package recommend

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// SimilarityMatrix holds the all-pairs cosine similarity of the catalog.
// Entry (i, j) is the similarity of title i and title j. The matrix is
// symmetric, its diagonal is 1 and every entry lies in [0, 1].
type SimilarityMatrix struct {
	N    int
	Data []float32
}

// At returns the similarity of titles i and j.
func (s *SimilarityMatrix) At(i, j int) float32 {
	return s.Data[i*s.N+j]
}

// Row returns the similarity vector of title i. The slice aliases the matrix.
func (s *SimilarityMatrix) Row(i int) []float32 {
	return s.Data[i*s.N : (i+1)*s.N]
}

// Bytes reports the memory held by the matrix.
func (s *SimilarityMatrix) Bytes() int64 {
	return int64(len(s.Data)) * 4
}

// BuildSimilarity computes the cosine similarity of every pair of rows of f.
// Rows are L2-normalized and multiplied as U*Uᵀ. A zero row has similarity 0
// with every other row.
func BuildSimilarity(f *FeatureMatrix) *SimilarityMatrix {
	n, d := f.Rows, f.Cols
	s := &SimilarityMatrix{N: n, Data: make([]float32, n*n)}
	if n == 0 || d == 0 {
		return s
	}

	unit := make([]float32, n*d)
	for i := 0; i < n; i++ {
		row := f.Row(i)
		var sum float64
		for _, v := range row {
			sum += v * v
		}
		if sum == 0 {
			continue
		}
		norm := math.Sqrt(sum)
		dst := unit[i*d : (i+1)*d]
		for j, v := range row {
			dst[j] = float32(v / norm)
		}
	}

	u := blas32.General{Rows: n, Cols: d, Stride: d, Data: unit}
	blas32.Gemm(blas.NoTrans, blas.Trans, 1, u, u, 0,
		blas32.General{Rows: n, Cols: n, Stride: n, Data: s.Data})

	for i := 0; i < n; i++ {
		s.Data[i*n+i] = 1
		for j := i + 1; j < n; j++ {
			v := clampUnit(s.Data[i*n+j])
			s.Data[i*n+j] = v
			s.Data[j*n+i] = v
		}
	}
	return s
}

func clampUnit(v float32) float32 {
	switch {
	case v < 0 || v != v:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// resolveTitle finds the row of the query title. An exact case-insensitive
// match wins; otherwise the first title containing the query as a
// case-insensitive substring is used. It returns -1 when nothing matches.
func resolveTitle(lowered []string, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return -1
	}
	for i, t := range lowered {
		if t == q {
			return i
		}
	}
	for i, t := range lowered {
		if strings.Contains(t, q) {
			return i
		}
	}
	return -1
}

// rankNeighbors orders every row except row by descending similarity to it.
// Ties keep catalog order. At most limit indices are returned.
func rankNeighbors(s *SimilarityMatrix, row, limit int) []int {
	if limit <= 0 || s.N < 2 {
		return nil
	}
	sims := s.Row(row)
	order := make([]int, 0, s.N-1)
	for j := 0; j < s.N; j++ {
		if j != row {
			order = append(order, j)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sims[order[a]] > sims[order[b]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// scorePercent converts a similarity to a percentage rounded to 2 decimals.
func scorePercent(sim float32) float64 {
	v := math.Round(float64(sim)*100*100) / 100
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
