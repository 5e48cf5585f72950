// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

// Package recommend implements the content-based recommendation core.
//
// # Architecture
//
// The core has two stages that always run together:
//
//   - Catalog Encoder: turns the ordered catalog into a weighted feature
//     matrix (genre, rating, platform and year blocks)
//   - Similarity Index: computes the all-pairs cosine similarity matrix
//     once and answers title queries with a lookup and a stable sort
//
// Block weights are fixed:
//
//	genre    0.40  multi-hot, L2-normalized per row
//	rating   0.30  min-max scaled
//	platform 0.20  0/1 per platform, L2-normalized per row
//	year     0.10  min-max scaled
//
// Each block is multiplied by the square root of its weight before the
// blocks are concatenated, so the squared contributions to a dot product
// equal the nominal weights.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	state := engine.Build(catalog)
//	results := engine.Recommend("The Matrix", 10)
//
// # Thread Safety
//
// Build publishes the catalog, the feature matrix and the similarity matrix
// as one immutable snapshot through an atomic pointer. Queries never take a
// lock and always observe either the previous snapshot or the new one.
// Concurrent Build calls are serialized.
//
// Queries never fail: an unbuilt engine, an unknown title and a blank query
// all produce an empty result list.
package recommend
