// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/gustline/internal/models"
)

func TestRoot(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestServer(&fakeStore{}), "/")

	expectStatus(t, rec, http.StatusOK)
	var body models.MessageResponse
	decodeBody(t, rec, &body)
	if body.Message != "Gustline API running" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantStatus string
		wantDB     bool
	}{
		{"connected", nil, "healthy", true},
		{"disconnected", errStoreDown, "degraded", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := doGet(t, newTestServer(&fakeStore{pingErr: tt.pingErr}), "/health")

			expectStatus(t, rec, http.StatusOK)
			var body models.HealthStatus
			decodeBody(t, rec, &body)
			if body.Status != tt.wantStatus || body.DatabaseConnected != tt.wantDB {
				t.Errorf("health = %+v", body)
			}
			if body.Version != Version {
				t.Errorf("version = %q, want %q", body.Version, Version)
			}
		})
	}
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestServer(&fakeStore{pingErr: errStoreDown}), "/health/live")

	expectStatus(t, rec, http.StatusOK)
	var body map[string]any
	decodeBody(t, rec, &body)
	if body["alive"] != true {
		t.Errorf("alive = %v", body["alive"])
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestServer(&fakeStore{}), "/health/ready")
	expectStatus(t, rec, http.StatusOK)

	rec = doGet(t, newTestServer(&fakeStore{pingErr: errStoreDown}), "/health/ready")
	expectStatus(t, rec, http.StatusServiceUnavailable)

	var body map[string]any
	decodeBody(t, rec, &body)
	if body["database_connected"] != false {
		t.Errorf("database_connected = %v", body["database_connected"])
	}
}
