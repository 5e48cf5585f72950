// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/streamscout/internal/models"
	"github.com/tomtom215/streamscout/internal/recommend"
)

// HealthLive answers liveness probes. It succeeds whenever the process can
// serve HTTP, whatever the catalog state.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, models.HealthResponse{
		Status:  "alive",
		Version: h.version,
		Uptime:  h.uptime(),
	}, models.Metadata{})
}

// HealthReady answers readiness probes: 200 once a non-empty catalog index
// is published, 503 before that.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.engine.Status()
	resp := models.HealthResponse{
		Version:      h.version,
		CatalogState: status.State.String(),
		Titles:       status.Titles,
		Uptime:       h.uptime(),
	}

	if status.State != recommend.StateReady {
		resp.Status = "not_ready"
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   "error",
			Data:     resp,
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error: &models.APIError{
				Code:    CodeNotReady,
				Message: "catalog index is " + status.State.String(),
			},
		})
		return
	}

	resp.Status = "ready"
	respondSuccess(w, http.StatusOK, resp, models.Metadata{Generation: status.Generation})
}

func (h *Handler) uptime() string {
	return time.Since(h.startTime).Round(time.Second).String()
}
