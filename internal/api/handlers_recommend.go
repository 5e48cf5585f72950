// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/streamscout/internal/cache"
	"github.com/tomtom215/streamscout/internal/logging"
	"github.com/tomtom215/streamscout/internal/metrics"
	"github.com/tomtom215/streamscout/internal/models"
	"github.com/tomtom215/streamscout/internal/recommend"
)

type recommendationsRequest struct {
	Title string `query:"title" validate:"required,notblank,max=500"`
	Limit int    `query:"limit" validate:"min=1"`
}

// Recommendations returns the titles most similar to the queried one.
//
// GET /api/v1/recommendations?title=<title>&limit=<1..100>
//
// The title is matched exactly, then as a substring, ignoring case. A query
// that matches nothing, or any query before the catalog is built, yields an
// empty list with status 200.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limits := h.engine.Config().Limits

	limit, apiErr := intParam(r, "limit", limits.DefaultK)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	req := recommendationsRequest{
		Title: r.URL.Query().Get("title"),
		Limit: limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	if apiErr := checkMaxLimit(req.Limit, limits.MaxK); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	query := strings.TrimSpace(req.Title)
	view := h.engine.View()
	key := cache.Key(view.Fingerprint(), "recommend", query, strconv.Itoa(req.Limit))

	match, hit := cached(r.Context(), h.cache, key, func() recommend.Match {
		return view.Match(query, req.Limit)
	})
	if match.Results == nil {
		match.Results = []recommend.Result{}
	}
	metrics.RecordRecommendation(len(match.Results))

	logging.Ctx(r.Context()).Debug().
		Str("title", sanitizeLogValue(query)).
		Str("matched", match.MatchedTitle).
		Int("results", len(match.Results)).
		Bool("cached", hit).
		Msg("recommendations served")

	respondSuccess(w, http.StatusOK, models.RecommendationsResponse{
		Query:        query,
		MatchedTitle: match.MatchedTitle,
		Count:        len(match.Results),
		Results:      match.Results,
	}, viewMetadata(view, start, hit))
}
