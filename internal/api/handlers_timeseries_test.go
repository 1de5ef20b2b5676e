// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/tomtom215/gustline/internal/models"
)

func TestAggregatedTimeSeries_ReversedRange(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestServer(&fakeStore{}),
		"/aggregated_timeseries?start_date=2023-01-02T00:00:00&end_date=2023-01-01T00:00:00")

	expectDetail(t, rec, http.StatusBadRequest, "start must precede end")
}

func TestAggregatedTimeSeries_EqualBoundsRejected(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestServer(&fakeStore{}),
		"/aggregated_timeseries?start_date=2016-01-01&end_date=2016-01-01")

	expectDetail(t, rec, http.StatusBadRequest, "start must precede end")
}

func TestAggregatedTimeSeries_EmptyIsNoContent(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestServer(&fakeStore{}), "/aggregated_timeseries")

	expectStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("204 body = %q, want empty", rec.Body.String())
	}
}

func TestAggregatedTimeSeries_Buckets(t *testing.T) {
	t.Parallel()

	store := &fakeStore{buckets: []models.AggregatedBucket{
		{WindSpeedBin: 3.0, Count: 12, AveragePower: ptrFloat(104.25), AverageWindSpeed: ptrFloat(3.21)},
		{WindSpeedBin: 3.5, Count: 9, AveragePower: ptrFloat(160.5), AverageWindSpeed: ptrFloat(3.74)},
	}}

	rec := doGet(t, newTestServer(store),
		"/aggregated_timeseries?start_date=2016-01-01&end_date=2016-01-02T00:00&turbine_id=Turbine1")

	expectStatus(t, rec, http.StatusOK)
	var buckets []models.AggregatedBucket
	decodeBody(t, rec, &buckets)
	if len(buckets) != 2 || buckets[0].WindSpeedBin != 3.0 || buckets[1].Count != 9 {
		t.Errorf("buckets = %+v", buckets)
	}

	q := store.gotCurve
	if q.TurbineID != "Turbine1" {
		t.Errorf("turbine = %q", q.TurbineID)
	}
	if q.Start == nil || !q.Start.Equal(time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", q.Start)
	}
	if q.End == nil || !q.End.Equal(time.Date(2016, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", q.End)
	}
}

func TestAggregatedTimeSeries_BadParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		detail string
	}{
		{"bad date", "/aggregated_timeseries?start_date=yesterday", "start_date must be an ISO 8601 date or datetime"},
		{"bad turbine", "/aggregated_timeseries?turbine_id=../etc", "turbine_id must contain only letters, digits, '.', '_' or '-'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := doGet(t, newTestServer(&fakeStore{}), tt.target)
			expectDetail(t, rec, http.StatusBadRequest, tt.detail)
		})
	}
}

func TestAggregatedTimeSeries_IgnoresLimit(t *testing.T) {
	t.Parallel()

	store := &fakeStore{buckets: []models.AggregatedBucket{{WindSpeedBin: 5.0, Count: 1}}}
	rec := doGet(t, newTestServer(store), "/aggregated_timeseries?limit=abc")

	expectStatus(t, rec, http.StatusOK)
}

func TestTimeSeries_BadLimit(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestServer(&fakeStore{}), "/timeseries?limit=abc")

	expectDetail(t, rec, http.StatusBadRequest, "limit must be an integer")
}

func TestTimeSeries_EmptyIsNoContent(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestServer(&fakeStore{}), "/timeseries?turbine_id=Turbine9")

	expectStatus(t, rec, http.StatusNoContent)
}

func TestTimeSeries_Points(t *testing.T) {
	t.Parallel()

	store := &fakeStore{points: []models.TimeSeriesPoint{{
		Timestamp: time.Date(2016, 1, 1, 0, 10, 0, 0, time.UTC),
		Power:     1450.2,
		WindSpeed: ptrFloat(9.8),
		Metadata:  models.TurbineMetadata{TurbineID: "Turbine1"},
	}}}

	rec := doGet(t, newTestServer(store), "/timeseries?turbine_id=Turbine1&start_date=2016-01-01T00:00:00Z&limit=5000")

	expectStatus(t, rec, http.StatusOK)
	var points []models.TimeSeriesPoint
	decodeBody(t, rec, &points)
	if len(points) != 1 || points[0].Metadata.TurbineID != "Turbine1" {
		t.Errorf("points = %+v", points)
	}

	q := store.gotPoints
	if q.Limit != 1000 {
		t.Errorf("limit = %d, want clamp to 1000", q.Limit)
	}
	if q.End != nil {
		t.Errorf("end = %v, want nil", q.End)
	}
	if q.Start == nil || !q.Start.Equal(*ptrTime("2016-01-01T00:00:00Z")) {
		t.Errorf("start = %v", q.Start)
	}
}

func TestTimeSeries_DefaultLimit(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	doGet(t, newTestServer(store), "/timeseries")

	if store.gotPoints.Limit != 100 {
		t.Errorf("limit = %d, want 100", store.gotPoints.Limit)
	}
}

func TestTimeSeries_ReversedRange(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestServer(&fakeStore{}), "/timeseries?start_date=2016-01-02&end_date=2016-01-01")

	expectDetail(t, rec, http.StatusBadRequest, "start must precede end")
}

func TestListTurbines(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestServer(&fakeStore{turbines: []string{"Turbine1", "Turbine2"}}), "/turbines")

	expectStatus(t, rec, http.StatusOK)
	if got := rec.Body.String(); got != `["Turbine1","Turbine2"]` {
		t.Errorf("body = %s", got)
	}
}

func TestListTurbines_StoreFault(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestServer(&fakeStore{err: errStoreDown}), "/turbines")

	expectDetail(t, rec, http.StatusInternalServerError, "Internal error")
}
