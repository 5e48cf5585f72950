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
	"github.com/tomtom215/streamscout/internal/models"
	"github.com/tomtom215/streamscout/internal/recommend"
)

type topRatedRequest struct {
	Limit int `query:"limit" validate:"min=1"`
}

type reloadRequest struct {
	Reason string `query:"reason" validate:"max=200"`
}

// CatalogOverview summarizes the published catalog: platform counts, the
// most common genres and the highest-rated titles.
//
// GET /api/v1/catalog/overview
func (h *Handler) CatalogOverview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	view := h.engine.View()
	overview, hit := cached(r.Context(), h.cache, cache.Key(view.Fingerprint(), "overview"), view.Overview)

	respondSuccess(w, http.StatusOK, overview, viewMetadata(view, start, hit))
}

// CatalogTopRated lists the highest-rated titles. Equal ratings keep
// catalog order.
//
// GET /api/v1/catalog/top-rated?limit=<1..100>
func (h *Handler) CatalogTopRated(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limits := h.engine.Config().Limits

	limit, apiErr := intParam(r, "limit", limits.DefaultK)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	req := topRatedRequest{Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	if apiErr := checkMaxLimit(req.Limit, limits.MaxK); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	view := h.engine.View()
	key := cache.Key(view.Fingerprint(), "top-rated", strconv.Itoa(req.Limit))
	titles, hit := cached(r.Context(), h.cache, key, func() []recommend.TitleSummary {
		return view.TopRated(req.Limit)
	})
	if titles == nil {
		titles = []recommend.TitleSummary{}
	}

	respondSuccess(w, http.StatusOK, models.TitleListResponse{
		Count:  len(titles),
		Titles: titles,
	}, viewMetadata(view, start, hit))
}

// CatalogStatus reports the published index, the catalog source and the
// outcome of the last reload.
//
// GET /api/v1/catalog/status
func (h *Handler) CatalogStatus(w http.ResponseWriter, r *http.Request) {
	status := h.engine.Status()
	queries, misses := h.engine.QueryStats()

	resp := models.CatalogStatusResponse{
		Status:       status,
		Queries:      queries,
		EmptyQueries: misses,
	}
	if h.reloads != nil {
		resp.Source = h.reloads.SourceName()
		resp.LastReload = h.reloads.LastResult()
	}
	if h.breaker != nil {
		resp.BreakerState = h.breaker.State()
	}

	respondSuccess(w, http.StatusOK, resp, models.Metadata{
		Generation:  status.Generation,
		Fingerprint: status.Fingerprint,
	})
}

// CatalogReload requests a catalog reload. The reload runs asynchronously;
// the response only confirms that the request was published.
//
// POST /api/v1/catalog/reload?reason=<text>
func (h *Handler) CatalogReload(w http.ResponseWriter, r *http.Request) {
	if h.publisher == nil {
		respondError(w, http.StatusServiceUnavailable, CodeReloadFailed, ErrReloadUnavailable.Error(), nil)
		return
	}

	req := reloadRequest{Reason: strings.TrimSpace(r.URL.Query().Get("reason"))}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	published, err := h.publisher.PublishReload(r.Context(), req.Reason)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, CodeReloadFailed, "Failed to request catalog reload", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("reload_id", published.RequestID).
		Str("reason", sanitizeLogValue(published.Reason)).
		Msg("catalog reload requested")

	respondSuccess(w, http.StatusAccepted, models.ReloadAccepted{
		RequestID: published.RequestID,
		Reason:    published.Reason,
	}, models.Metadata{Generation: h.engine.Generation()})
}
