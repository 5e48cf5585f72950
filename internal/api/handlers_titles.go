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

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/streamscout/internal/cache"
	"github.com/tomtom215/streamscout/internal/models"
	"github.com/tomtom215/streamscout/internal/recommend"
)

type searchRequest struct {
	Query string `query:"q" validate:"required,notblank,max=500"`
	Limit int    `query:"limit" validate:"min=1"`
}

type suggestRequest struct {
	Prefix string `query:"prefix" validate:"required,notblank,max=500"`
	Limit  int    `query:"limit" validate:"min=1"`
}

type platformRequest struct {
	Platform string `query:"platform" validate:"required,notblank,max=100"`
}

// SearchTitles lists titles containing q, ignoring case, in catalog order.
//
// GET /api/v1/titles/search?q=<text>&limit=<1..100>
func (h *Handler) SearchTitles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limits := h.engine.Config().Limits

	limit, apiErr := intParam(r, "limit", limits.DefaultK)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	req := searchRequest{Query: r.URL.Query().Get("q"), Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	if apiErr := checkMaxLimit(req.Limit, limits.MaxK); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	view := h.engine.View()
	key := cache.Key(view.Fingerprint(), "search", req.Query, strconv.Itoa(req.Limit))
	titles, hit := cached(r.Context(), h.cache, key, func() []recommend.TitleSummary {
		return view.Search(req.Query, req.Limit)
	})
	if titles == nil {
		titles = []recommend.TitleSummary{}
	}

	respondSuccess(w, http.StatusOK, models.TitleListResponse{
		Count:  len(titles),
		Titles: titles,
	}, viewMetadata(view, start, hit))
}

// SuggestTitles completes a title prefix, ignoring case. Titles that appear
// more than once in the catalog rank first.
//
// GET /api/v1/titles/suggest?prefix=<text>&limit=<1..100>
func (h *Handler) SuggestTitles(w http.ResponseWriter, r *http.Request) {
	limits := h.engine.Config().Limits

	limit, apiErr := intParam(r, "limit", limits.DefaultK)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	req := suggestRequest{Prefix: r.URL.Query().Get("prefix"), Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	if apiErr := checkMaxLimit(req.Limit, limits.MaxK); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	view := h.engine.View()
	trie := h.suggest.For(view.Generation(), view.Titles)
	matches := trie.Suggest(req.Prefix, req.Limit)

	suggestions := make([]string, len(matches))
	for i, m := range matches {
		suggestions[i] = m.Title
	}

	respondSuccess(w, http.StatusOK, models.SuggestionsResponse{
		Prefix:      strings.TrimSpace(req.Prefix),
		Suggestions: suggestions,
	}, models.Metadata{Generation: view.Generation(), Fingerprint: view.Fingerprint()})
}

// PlatformTitles lists the titles available on a platform, in catalog
// order. The platform name is matched case-insensitively; "prime video"
// and "Prime Video" are the same platform. An unknown platform yields an
// empty list.
//
// GET /api/v1/platforms/{platform}
func (h *Handler) PlatformTitles(w http.ResponseWriter, r *http.Request) {
	req := platformRequest{Platform: chi.URLParam(r, "platform")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	view := h.engine.View()
	platform, known := recommend.CanonicalPlatform(req.Platform)
	titles, _ := view.ByPlatform(platform)
	if !known {
		platform = strings.TrimSpace(req.Platform)
		titles = []recommend.TitleSummary{}
	}

	respondSuccess(w, http.StatusOK, models.PlatformTitlesResponse{
		Platform: platform,
		Count:    len(titles),
		Titles:   titles,
	}, models.Metadata{Generation: view.Generation(), Fingerprint: view.Fingerprint()})
}
