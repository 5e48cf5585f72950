// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package recommend

import (
	"strings"
	"time"
)

// Platform names recognized by the encoder, in column order.
const (
	PlatformNetflix    = "Netflix"
	PlatformHulu       = "Hulu"
	PlatformPrimeVideo = "Prime Video"
	PlatformDisneyPlus = "Disney+"
)

// NoPlatform is rendered when a title is not available anywhere.
const NoPlatform = "None"

// Platforms lists the fixed platform set in encoding order.
var Platforms = []string{
	PlatformNetflix,
	PlatformHulu,
	PlatformPrimeVideo,
	PlatformDisneyPlus,
}

// CanonicalPlatform maps a platform name to its canonical spelling using a
// case-insensitive comparison. The second return value is false for names
// outside the fixed set.
func CanonicalPlatform(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, p := range Platforms {
		if strings.EqualFold(p, name) {
			return p, true
		}
	}
	return "", false
}

// TitleRecord is one catalog entry.
type TitleRecord struct {
	// Title is the display name and lookup key. It is not guaranteed unique.
	Title string `json:"title"`

	// Genres holds zero or more genre tags. Blank tags and duplicates are ignored.
	Genres []string `json:"genres,omitempty"`

	// Rating is the critical rating on an open scale.
	Rating float64 `json:"rating"`

	// Year is the release year.
	Year int `json:"year"`

	// Platforms maps platform names to availability. Only names in Platforms
	// are encoded.
	Platforms map[string]bool `json:"platforms,omitempty"`
}

// AvailableOn reports whether the title is flagged as available on the
// canonical platform p.
func (r *TitleRecord) AvailableOn(p string) bool {
	if r.Platforms == nil {
		return false
	}
	if r.Platforms[p] {
		return true
	}
	for name, ok := range r.Platforms {
		if ok && strings.EqualFold(strings.TrimSpace(name), p) {
			return true
		}
	}
	return false
}

// PlatformList returns the platforms the title is available on, in
// Platforms order.
func (r *TitleRecord) PlatformList() []string {
	out := make([]string, 0, len(Platforms))
	for _, p := range Platforms {
		if r.AvailableOn(p) {
			out = append(out, p)
		}
	}
	return out
}

// PlatformString joins the available platforms with ", " or returns
// NoPlatform when the list is empty.
func (r *TitleRecord) PlatformString() string {
	list := r.PlatformList()
	if len(list) == 0 {
		return NoPlatform
	}
	return strings.Join(list, ", ")
}

// Result is one recommended title.
type Result struct {
	Title    string  `json:"title"`
	Platform string  `json:"platform"`
	Rating   float64 `json:"imdb_rating"`
	Year     int     `json:"release_year"`

	// Score is the cosine similarity as a percentage, rounded to 2 decimals.
	Score float64 `json:"similarity_score"`
}

// TitleSummary is the catalog view of a title used by search and listing.
type TitleSummary struct {
	Title     string   `json:"title"`
	Genres    []string `json:"genres"`
	Platform  string   `json:"platform"`
	Platforms []string `json:"platforms"`
	Rating    float64  `json:"imdb_rating"`
	Year      int      `json:"release_year"`
}

// State is the build state of the engine.
type State int

const (
	// StateUnbuilt means no catalog has been published or the published
	// catalog was empty.
	StateUnbuilt State = iota
	// StateReady means a non-empty catalog is indexed.
	StateReady
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "unbuilt"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// MarshalText renders the state as its name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Status describes the published snapshot.
type Status struct {
	State           State     `json:"state"`
	Generation      uint64    `json:"generation"`
	Fingerprint     string    `json:"fingerprint,omitempty"`
	Titles          int       `json:"titles"`
	FeatureWidth    int       `json:"feature_width"`
	GenreCount      int       `json:"genre_count"`
	BuiltAt         time.Time `json:"built_at,omitempty"`
	BuildDurationMS int64     `json:"build_duration_ms"`
}

// CountEntry is a named count used in Overview.
type CountEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Overview summarizes the published catalog.
type Overview struct {
	TotalTitles int            `json:"total_titles"`
	Platforms   []CountEntry   `json:"platforms"`
	TopGenres   []CountEntry   `json:"top_genres"`
	TopRated    []TitleSummary `json:"top_rated"`
}
