// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package api

import (
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/tomtom215/streamscout/internal/cache"
	"github.com/tomtom215/streamscout/internal/models"
	"github.com/tomtom215/streamscout/internal/recommend"
)

func TestRecommendations(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, Deps{})

	tests := []struct {
		name        string
		target      string
		wantMatched string
		wantCount   int
	}{
		{name: "exact match", target: "/api/v1/recommendations?title=The+Matrix", wantMatched: "The Matrix", wantCount: 4},
		{name: "case-insensitive", target: "/api/v1/recommendations?title=the%20office", wantMatched: "The Office", wantCount: 4},
		{name: "substring match", target: "/api/v1/recommendations?title=matrix", wantMatched: "The Matrix", wantCount: 4},
		{name: "limit", target: "/api/v1/recommendations?title=Up&limit=2", wantMatched: "Up", wantCount: 2},
		{name: "no match", target: "/api/v1/recommendations?title=Nonexistent", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := doRequest(t, srv, http.MethodGet, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
			}

			var resp models.RecommendationsResponse
			decodeData(t, decodeEnvelope(t, rec), &resp)

			if resp.MatchedTitle != tt.wantMatched {
				t.Errorf("matched_title = %q, want %q", resp.MatchedTitle, tt.wantMatched)
			}
			if resp.Count != tt.wantCount || len(resp.Results) != tt.wantCount {
				t.Fatalf("count = %d, results = %d, want %d", resp.Count, len(resp.Results), tt.wantCount)
			}
			for i, r := range resp.Results {
				if r.Title == resp.MatchedTitle {
					t.Errorf("results include the queried title %q", r.Title)
				}
				if i > 0 && r.Score > resp.Results[i-1].Score {
					t.Errorf("results not sorted by score: %v", resp.Results)
				}
			}
		})
	}
}

func TestRecommendations_SameGenreRanksFirst(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, Deps{})
	rec := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations?title=The+Matrix&limit=2")

	var resp models.RecommendationsResponse
	decodeData(t, decodeEnvelope(t, rec), &resp)

	for _, r := range resp.Results {
		if r.Title != "The Matrix Reloaded" && r.Title != "Inception" {
			t.Errorf("unexpected top result %q", r.Title)
		}
		if r.Score <= 0 || r.Score > 100 {
			t.Errorf("score %v out of (0, 100]", r.Score)
		}
	}
}

func TestRecommendations_InvalidParameters(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, Deps{})

	tests := []struct {
		name     string
		target   string
		wantCode string
	}{
		{name: "missing title", target: "/api/v1/recommendations", wantCode: CodeValidation},
		{name: "blank title", target: "/api/v1/recommendations?title=%20%20", wantCode: CodeValidation},
		{name: "limit zero", target: "/api/v1/recommendations?title=Up&limit=0", wantCode: CodeValidation},
		{name: "limit negative", target: "/api/v1/recommendations?title=Up&limit=-3", wantCode: CodeValidation},
		{name: "limit above max", target: "/api/v1/recommendations?title=Up&limit=101", wantCode: CodeValidation},
		{name: "limit not a number", target: "/api/v1/recommendations?title=Up&limit=ten", wantCode: CodeInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := doRequest(t, srv, http.MethodGet, tt.target)
			expectError(t, rec, http.StatusBadRequest, tt.wantCode)
		})
	}
}

func TestRecommendations_UnbuiltEngine(t *testing.T) {
	t.Parallel()

	srv := newTestServerWithEngine(t, newTestEngine(t, false), Deps{})
	rec := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations?title=The+Matrix")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp models.RecommendationsResponse
	decodeData(t, decodeEnvelope(t, rec), &resp)
	if resp.Count != 0 || resp.Results == nil {
		t.Errorf("expected an empty, non-null result list, got %+v", resp)
	}
}

func TestRecommendations_Cached(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, true)
	srv := newTestServerWithEngine(t, engine, Deps{Cache: cache.NewMemoryCache(100, time.Minute)})

	first := decodeEnvelope(t, doRequest(t, srv, http.MethodGet, "/api/v1/recommendations?title=Up&limit=3"))
	if first.Metadata.Cached {
		t.Error("first request reported cached")
	}

	second := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations?title=UP&limit=3")
	env := decodeEnvelope(t, second)
	if !env.Metadata.Cached {
		t.Error("repeated request was not served from cache")
	}
	var resp models.RecommendationsResponse
	decodeData(t, env, &resp)
	if resp.Query != "UP" {
		t.Errorf("query = %q, want the caller's spelling", resp.Query)
	}
	if resp.Count != 3 {
		t.Errorf("cached count = %d, want 3", resp.Count)
	}

	// Rebuilding identical content keeps the fingerprint, so the entry stays valid.
	engine.Build(testCatalog())
	third := decodeEnvelope(t, doRequest(t, srv, http.MethodGet, "/api/v1/recommendations?title=Up&limit=3"))
	if !third.Metadata.Cached {
		t.Error("rebuild with identical content missed the cache")
	}
	if third.Metadata.Generation != first.Metadata.Generation+1 {
		t.Errorf("generation = %d, want %d", third.Metadata.Generation, first.Metadata.Generation+1)
	}
	if third.Metadata.Fingerprint == "" || third.Metadata.Fingerprint != first.Metadata.Fingerprint {
		t.Errorf("fingerprint = %q, want %q", third.Metadata.Fingerprint, first.Metadata.Fingerprint)
	}

	changed := testCatalog()
	changed[3].Rating = 5.0
	engine.Build(changed)
	fourth := decodeEnvelope(t, doRequest(t, srv, http.MethodGet, "/api/v1/recommendations?title=Up&limit=3"))
	if fourth.Metadata.Cached {
		t.Error("changed catalog served a cached payload")
	}
	if fourth.Metadata.Fingerprint == first.Metadata.Fingerprint {
		t.Error("changed catalog kept the old fingerprint")
	}
}

// Two processes sharing one cache backend must not serve each other's results
// when their catalogs differ, even though both sit at generation 1.
func TestRecommendations_SharedCacheAcrossCatalogs(t *testing.T) {
	t.Parallel()

	shared := cache.NewMemoryCache(100, time.Minute)

	oldEngine := newTestEngine(t, false)
	oldEngine.Build(testCatalog())
	oldSrv := newTestServerWithEngine(t, oldEngine, Deps{Cache: shared})

	fresh := testCatalog()
	fresh[1] = recommend.TitleRecord{Title: "Dark City", Genres: []string{"Action", "Sci-Fi"}, Rating: 7.6, Year: 1998,
		Platforms: map[string]bool{recommend.PlatformNetflix: true}}
	newEngine := newTestEngine(t, false)
	newEngine.Build(fresh)
	newSrv := newTestServerWithEngine(t, newEngine, Deps{Cache: shared})

	const target = "/api/v1/recommendations?title=The+Matrix&limit=4"
	oldEnv := decodeEnvelope(t, doRequest(t, oldSrv, http.MethodGet, target))
	newEnv := decodeEnvelope(t, doRequest(t, newSrv, http.MethodGet, target))

	if oldEnv.Metadata.Generation != newEnv.Metadata.Generation {
		t.Fatalf("generations = %d and %d, want equal", oldEnv.Metadata.Generation, newEnv.Metadata.Generation)
	}
	if newEnv.Metadata.Cached {
		t.Error("second catalog was served the first catalog's cached payload")
	}

	var resp models.RecommendationsResponse
	decodeData(t, newEnv, &resp)
	for _, r := range resp.Results {
		if r.Title == "The Matrix Reloaded" {
			t.Errorf("results %+v contain a title missing from the serving catalog", resp.Results)
		}
	}
}

func TestRecommendations_NonFiniteRating(t *testing.T) {
	t.Parallel()

	records := testCatalog()
	records[2].Rating = math.NaN()
	records[3].Rating = math.Inf(1)
	engine := newTestEngine(t, false)
	engine.Build(records)
	srv := newTestServerWithEngine(t, engine, Deps{})

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations?title=The+Matrix&limit=4")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var resp models.RecommendationsResponse
	decodeData(t, decodeEnvelope(t, rec), &resp)
	if resp.Count != 4 {
		t.Fatalf("count = %d, want 4", resp.Count)
	}
	for _, r := range resp.Results {
		if (r.Title == "Inception" || r.Title == "Up") && r.Rating != 0 {
			t.Errorf("%s rating = %v, want 0", r.Title, r.Rating)
		}
	}
}
