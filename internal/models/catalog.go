// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package models

import (
	"github.com/tomtom215/streamscout/internal/catalog"
	"github.com/tomtom215/streamscout/internal/recommend"
)

// RecommendationsResponse is the payload of GET /api/v1/recommendations.
// MatchedTitle is the catalog title the query resolved to; it is empty when
// nothing matched and Results is then empty.
type RecommendationsResponse struct {
	Query        string             `json:"query"`
	MatchedTitle string             `json:"matched_title,omitempty"`
	Count        int                `json:"count"`
	Results      []recommend.Result `json:"results"`
}

// TitleListResponse is the payload of title listings: search, platform
// availability and top-rated.
type TitleListResponse struct {
	Count  int                      `json:"count"`
	Titles []recommend.TitleSummary `json:"titles"`
}

// SuggestionsResponse is the payload of GET /api/v1/titles/suggest.
type SuggestionsResponse struct {
	Prefix      string   `json:"prefix"`
	Suggestions []string `json:"suggestions"`
}

// PlatformTitlesResponse is the payload of GET /api/v1/platforms/{platform}.
type PlatformTitlesResponse struct {
	Platform string                   `json:"platform"`
	Count    int                      `json:"count"`
	Titles   []recommend.TitleSummary `json:"titles"`
}

// CatalogStatusResponse combines the published index status with the most
// recent reload attempt.
type CatalogStatusResponse struct {
	recommend.Status
	Source       string                `json:"source"`
	BreakerState string                `json:"breaker_state,omitempty"`
	LastReload   *catalog.ReloadResult `json:"last_reload,omitempty"`
	Queries      int64                 `json:"queries"`
	EmptyQueries int64                 `json:"empty_queries"`
}

// ReloadAccepted is the payload of POST /api/v1/catalog/reload.
type ReloadAccepted struct {
	RequestID string `json:"request_id"`
	Reason    string `json:"reason"`
}

// HealthResponse is the payload of the health endpoints.
type HealthResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version,omitempty"`
	CatalogState string `json:"catalog_state,omitempty"`
	Titles       int    `json:"titles,omitempty"`
	Uptime       string `json:"uptime,omitempty"`
}
