// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package seed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/gustline/internal/config"
	"github.com/tomtom215/gustline/internal/models"
)

func newTestJSONSource(t *testing.T, handler http.HandlerFunc) *JSONSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewJSONSource(&config.SeedConfig{
		BaseURL:      srv.URL + "/",
		FetchTimeout: 2 * time.Second,
	})
}

func TestJSONSource_Fetch(t *testing.T) {
	t.Parallel()

	src := newTestJSONSource(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"userId": 1, "id": 1, "title": "sunt aut facere", "body": "quia et suscipit"},
			{"userId": 1, "id": "two", "title": "bad id type"},
			{"userId": 0, "id": 3, "title": "missing author"},
			{"userId": 2, "id": 4, "title": "qui est esse", "body": "est rerum"}
		]`)) //nolint:errcheck
	})

	docs, skipped, err := src.Fetch(context.Background(), "posts")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(docs) != 2 || skipped != 2 {
		t.Fatalf("docs = %d, skipped = %d; want 2, 2", len(docs), skipped)
	}
	post, ok := docs[1].(models.Post)
	if !ok {
		t.Fatalf("doc type = %T, want models.Post", docs[1])
	}
	if post.ID != 4 || post.UserID != 2 {
		t.Errorf("post = %+v", post)
	}
}

func TestJSONSource_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusServiceUnavailable, `{}`, ErrUpstreamSeed},
		{"not an array", http.StatusOK, `{"users": []}`, ErrUpstreamSeed},
		{"empty array", http.StatusOK, `[]`, ErrUpstreamSeed},
		{"all invalid", http.StatusOK, `[{"id": 0}]`, ErrUpstreamSeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := newTestJSONSource(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body)) //nolint:errcheck
			})
			if _, _, err := src.Fetch(context.Background(), "users"); !errors.Is(err, tt.wantErr) {
				t.Errorf("Fetch error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestJSONSource_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	src := NewJSONSource(&config.SeedConfig{BaseURL: url, FetchTimeout: time.Second})
	if _, _, err := src.Fetch(context.Background(), "comments"); !errors.Is(err, ErrUpstreamSeed) {
		t.Errorf("Fetch error = %v, want ErrUpstreamSeed", err)
	}
}

func TestJSONSource_UnknownResource(t *testing.T) {
	t.Parallel()

	src := newTestJSONSource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"id": 1}]`)) //nolint:errcheck
	})
	_, _, err := src.Fetch(context.Background(), "albums")
	if err == nil || errors.Is(err, ErrUpstreamSeed) {
		t.Errorf("Fetch error = %v, want a non-upstream error", err)
	}
}

func TestJSONSource_CircuitOpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	src := newTestJSONSource(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 5; i++ {
		if _, _, err := src.Fetch(context.Background(), "users"); !errors.Is(err, ErrUpstreamSeed) {
			t.Fatalf("attempt %d: error = %v, want ErrUpstreamSeed", i, err)
		}
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("server hit %d times, want 3 before the circuit opened", got)
	}
}
