// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/test-record", "200"))

	RecordAPIRequest("GET", "/api/v1/test-record", "200", 15*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/test-record", "200", 5*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/test-record", "200"))
	if after-before != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v", got, before)
	}
}

func TestRecordCatalogBuild(t *testing.T) {
	RecordCatalogBuild(120*time.Millisecond, 42, 17, true, 3)

	if got := testutil.ToFloat64(CatalogTitles); got != 42 {
		t.Errorf("catalog_titles = %v, want 42", got)
	}
	if got := testutil.ToFloat64(CatalogFeatureWidth); got != 17 {
		t.Errorf("catalog_feature_width = %v, want 17", got)
	}
	if got := testutil.ToFloat64(CatalogState); got != 1 {
		t.Errorf("catalog_index_ready = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CatalogGeneration); got != 3 {
		t.Errorf("catalog_index_generation = %v, want 3", got)
	}

	RecordCatalogBuild(time.Millisecond, 0, 6, false, 4)
	if got := testutil.ToFloat64(CatalogState); got != 0 {
		t.Errorf("catalog_index_ready = %v, want 0", got)
	}
}

func TestRecordCatalogReload(t *testing.T) {
	tests := []struct {
		outcome string
	}{
		{"success"},
		{"failure"},
		{"throttled"},
	}
	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			counter := CatalogReloads.WithLabelValues("test-source", tt.outcome)
			before := testutil.ToFloat64(counter)
			RecordCatalogReload("test-source", tt.outcome)
			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Errorf("catalog_reloads_total delta = %v, want 1", got)
			}
		})
	}

	if testutil.ToFloat64(CatalogLastSuccess) == 0 {
		t.Error("catalog_last_success_timestamp not set after success")
	}
}

func TestRecordRecommendation(t *testing.T) {
	hits := RecommendationQueries.WithLabelValues("hit")
	empty := RecommendationQueries.WithLabelValues("empty")
	hitsBefore, emptyBefore := testutil.ToFloat64(hits), testutil.ToFloat64(empty)

	RecordRecommendation(10)
	RecordRecommendation(0)
	RecordRecommendation(3)

	if got := testutil.ToFloat64(hits) - hitsBefore; got != 2 {
		t.Errorf("hit delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(empty) - emptyBefore; got != 1 {
		t.Errorf("empty delta = %v, want 1", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := CacheHits.WithLabelValues("test-backend")
	misses := CacheMisses.WithLabelValues("test-backend")
	hitsBefore, missesBefore := testutil.ToFloat64(hits), testutil.ToFloat64(misses)

	RecordCacheLookup("test-backend", true)
	RecordCacheLookup("test-backend", false)
	RecordCacheLookup("test-backend", false)

	if got := testutil.ToFloat64(hits) - hitsBefore; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(misses) - missesBefore; got != 2 {
		t.Errorf("misses delta = %v, want 2", got)
	}
}

func TestRecordCircuitBreakerTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     float64
	}{
		{"closed", "open", 2},
		{"open", "half-open", 1},
		{"half-open", "closed", 0},
	}
	for _, tt := range tests {
		RecordCircuitBreakerTransition("test-breaker", tt.from, tt.to)
		if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-breaker")); got != tt.want {
			t.Errorf("state after %s->%s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRecordEvents(t *testing.T) {
	published := EventsPublished.WithLabelValues("test.topic")
	nacked := EventsConsumed.WithLabelValues("test.topic", "nack")
	pubBefore, nackBefore := testutil.ToFloat64(published), testutil.ToFloat64(nacked)

	RecordEventPublished("test.topic")
	RecordEventConsumed("test.topic", false)

	if got := testutil.ToFloat64(published) - pubBefore; got != 1 {
		t.Errorf("published delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(nacked) - nackBefore; got != 1 {
		t.Errorf("nack delta = %v, want 1", got)
	}
}
