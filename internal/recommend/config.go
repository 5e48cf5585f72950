// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package recommend

import (
	"fmt"
	"math"
)

// Feature block weights. They must sum to 1.0.
const (
	WeightGenre    = 0.40
	WeightRating   = 0.30
	WeightPlatform = 0.20
	WeightYear     = 0.10
)

// Config contains the tunables of the engine. The feature weights are not
// part of it; they are fixed constants.
type Config struct {
	// Limits contains query limits.
	Limits LimitsConfig `json:"limits"`

	// Overview contains sizes for the catalog overview.
	Overview OverviewConfig `json:"overview"`
}

// LimitsConfig bounds query sizes.
type LimitsConfig struct {
	// DefaultK is the number of results when the caller does not ask for a
	// specific count.
	// Default: 10.
	DefaultK int `json:"default_k"`

	// MaxK caps the number of results of a single query.
	// Default: 100.
	MaxK int `json:"max_k"`
}

// OverviewConfig sizes the catalog overview lists.
type OverviewConfig struct {
	// TopGenres is the number of genres listed by count.
	// Default: 10.
	TopGenres int `json:"top_genres"`

	// TopRated is the number of titles listed by rating.
	// Default: 10.
	TopRated int `json:"top_rated"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultK: 10,
			MaxK:     100,
		},
		Overview: OverviewConfig{
			TopGenres: 10,
			TopRated:  10,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Limits.DefaultK <= 0 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k (%d) must be >= limits.default_k (%d)", c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Overview.TopGenres < 0 {
		return fmt.Errorf("overview.top_genres must be non-negative, got %d", c.Overview.TopGenres)
	}
	if c.Overview.TopRated < 0 {
		return fmt.Errorf("overview.top_rated must be non-negative, got %d", c.Overview.TopRated)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// blockScales returns sqrt(weight) for each block in column order.
func blockScales() (genre, rating, platform, year float64) {
	return math.Sqrt(WeightGenre), math.Sqrt(WeightRating), math.Sqrt(WeightPlatform), math.Sqrt(WeightYear)
}
