// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/streamscout/internal/cache"
	"github.com/tomtom215/streamscout/internal/models"
)

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\tand\rcr", `tab\x09and\x0dcr`},
		{"del\x7f", `del\x7f`},
		{"unicode ✓", "unicode ✓"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRespondJSON_Headers(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	respondSuccess(rec, http.StatusOK, map[string]int{"n": 1}, models.Metadata{})

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	etag := rec.Header().Get("ETag")
	if !strings.HasPrefix(etag, `"`) || !strings.HasSuffix(etag, `"`) {
		t.Errorf("ETag = %q, want a quoted value", etag)
	}
	if !strings.Contains(rec.Body.String(), `"status":"success"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte("payload"))
	if a != generateETag([]byte("payload")) {
		t.Error("ETag is not deterministic")
	}
	if a == generateETag([]byte("payload2")) {
		t.Error("different payloads share an ETag")
	}
}

func TestIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{query: "", want: 10},
		{query: "limit=5", want: 5},
		{query: "limit=%205%20", want: 5},
		{query: "limit=-1", want: -1},
		{query: "limit=abc", wantErr: true},
		{query: "limit=2.5", wantErr: true},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
		got, apiErr := intParam(r, "limit", 10)
		if tt.wantErr {
			if apiErr == nil || apiErr.Code != CodeInvalidParameter {
				t.Errorf("intParam(%q) error = %+v, want %s", tt.query, apiErr, CodeInvalidParameter)
			}
			continue
		}
		if apiErr != nil || got != tt.want {
			t.Errorf("intParam(%q) = %d, %+v; want %d", tt.query, got, apiErr, tt.want)
		}
	}
}

func TestCheckMaxLimit(t *testing.T) {
	t.Parallel()

	if err := checkMaxLimit(100, 100); err != nil {
		t.Errorf("checkMaxLimit(100, 100) = %+v, want nil", err)
	}
	err := checkMaxLimit(101, 100)
	if err == nil || err.Code != CodeValidation || err.Message != "limit must be at most 100" {
		t.Errorf("checkMaxLimit(101, 100) = %+v", err)
	}
}

func TestCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := cache.NewMemoryCache(10, time.Minute)
	calls := 0
	compute := func() []string {
		calls++
		return []string{"a", "b"}
	}

	v, hit := cached(ctx, c, "k", compute)
	if hit || calls != 1 || len(v) != 2 {
		t.Fatalf("first call: v=%v hit=%v calls=%d", v, hit, calls)
	}
	v, hit = cached(ctx, c, "k", compute)
	if !hit || calls != 1 || len(v) != 2 || v[1] != "b" {
		t.Fatalf("second call: v=%v hit=%v calls=%d", v, hit, calls)
	}

	c.Set(ctx, "bad", []byte("{not json"))
	v, hit = cached(ctx, c, "bad", compute)
	if hit || calls != 2 || len(v) != 2 {
		t.Errorf("undecodable entry: v=%v hit=%v calls=%d", v, hit, calls)
	}
}
