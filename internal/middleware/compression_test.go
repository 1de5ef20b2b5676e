// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompression_WithGzipAccept(t *testing.T) {
	t.Parallel()

	payload := strings.Repeat(`{"id":1,"name":"Leanne Graham"}`, 100)
	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "999")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(payload))
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", rec.Header().Get("Content-Encoding"))
	}
	if rec.Header().Get("Content-Length") != "" {
		t.Error("Content-Length should be removed")
	}

	reader, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(body) != payload {
		t.Error("decompressed body does not match payload")
	}
}

func TestCompression_WithoutGzipAccept(t *testing.T) {
	t.Parallel()

	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain"))
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	if rec.Header().Get("Content-Encoding") != "" {
		t.Error("response should not be compressed")
	}
	if rec.Body.String() != "plain" {
		t.Errorf("body = %q, want plain", rec.Body.String())
	}
}

func TestCompression_NoContentPassesThrough(t *testing.T) {
	t.Parallel()

	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/timeseries", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Content-Encoding") != "" {
		t.Error("204 must not carry Content-Encoding")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("204 body has %d bytes, want 0", rec.Body.Len())
	}
}

func TestCompression_HeadRequestPassesThrough(t *testing.T) {
	t.Parallel()

	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodHead, "/users", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Header().Get("Content-Encoding") != "" {
		t.Error("HEAD must not carry Content-Encoding")
	}
}

func TestCompression_PreEncodedPassesThrough(t *testing.T) {
	t.Parallel()

	var encoded strings.Builder
	gz := gzip.NewWriter(&encoded)
	_, _ = gz.Write([]byte("already compressed"))
	_ = gz.Close()

	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write([]byte(encoded.String()))
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got := rec.Header().Values("Content-Encoding"); len(got) != 1 {
		t.Fatalf("Content-Encoding = %q, want one value", got)
	}
	if rec.Body.String() != encoded.String() {
		t.Error("pre-encoded body should be written unchanged")
	}
}

func BenchmarkCompression(b *testing.B) {
	data := []byte(strings.Repeat("test data ", 200))
	handler := Compression(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(data)
	})
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handler(httptest.NewRecorder(), req)
	}
}
