// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gustline/internal/config"
	"github.com/tomtom215/gustline/internal/database"
	"github.com/tomtom215/gustline/internal/models"
)

var errStoreDown = errors.New("connection refused")

// fakeStore is an in-memory Store. Zero values behave like an empty database.
type fakeStore struct {
	mu sync.Mutex

	users    []models.User
	posts    []models.Post
	comments []models.Comment
	reports  []models.UserReport
	points   []models.TimeSeriesPoint
	buckets  []models.AggregatedBucket
	turbines []string

	nextCursor *string
	hasMore    bool

	err     error
	pingErr error
	panics  bool

	// last arguments seen
	gotCursor string
	gotLimit  int
	gotUserID *int
	gotPostID *int
	gotPage   int
	gotPoints database.PointQuery
	gotCurve  database.PowerCurveQuery
}

func (f *fakeStore) record(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn()
}

func fakePage[T any](items []T, next *string, more bool) *database.Page[T] {
	if items == nil {
		items = []T{}
	}
	return &database.Page[T]{Items: items, NextCursor: next, HasMore: more}
}

func (f *fakeStore) ListUsers(_ context.Context, cursor string, limit int) (*database.Page[models.User], error) {
	if f.panics {
		panic("boom")
	}
	f.record(func() { f.gotCursor, f.gotLimit = cursor, limit })
	if f.err != nil {
		return nil, f.err
	}
	return fakePage(f.users, f.nextCursor, f.hasMore), nil
}

func (f *fakeStore) ListPosts(_ context.Context, userID *int, cursor string, limit int) (*database.Page[models.Post], error) {
	f.record(func() { f.gotUserID, f.gotCursor, f.gotLimit = userID, cursor, limit })
	if f.err != nil {
		return nil, f.err
	}
	return fakePage(f.posts, f.nextCursor, f.hasMore), nil
}

func (f *fakeStore) ListComments(_ context.Context, postID *int, cursor string, limit int) (*database.Page[models.Comment], error) {
	f.record(func() { f.gotPostID, f.gotCursor, f.gotLimit = postID, cursor, limit })
	if f.err != nil {
		return nil, f.err
	}
	return fakePage(f.comments, f.nextCursor, f.hasMore), nil
}

func (f *fakeStore) GetUser(_ context.Context, id int) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) GetPost(_ context.Context, id int) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.posts {
		if f.posts[i].ID == id {
			return &f.posts[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) GetComment(_ context.Context, id int) (*models.Comment, error) {
	for i := range f.comments {
		if f.comments[i].ID == id {
			return &f.comments[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) ListReports(_ context.Context, page, limit int) ([]models.UserReport, error) {
	f.record(func() { f.gotPage, f.gotLimit = page, limit })
	if f.err != nil {
		return nil, f.err
	}
	if f.reports == nil {
		return []models.UserReport{}, nil
	}
	return f.reports, nil
}

func (f *fakeStore) ReportFor(_ context.Context, userID int) (*models.UserReport, error) {
	for i := range f.reports {
		if f.reports[i].ID == userID {
			return &f.reports[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) PowerCurve(_ context.Context, q database.PowerCurveQuery) ([]models.AggregatedBucket, error) {
	f.record(func() { f.gotCurve = q })
	if _, _, err := database.ResolveWindow(q.Start, q.End); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.buckets, nil
}

func (f *fakeStore) ListPoints(_ context.Context, q database.PointQuery) ([]models.TimeSeriesPoint, error) {
	f.record(func() { f.gotPoints = q })
	if q.Start != nil && q.End != nil && !q.Start.Before(*q.End) {
		return nil, database.ErrInvalidRange
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.points, nil
}

func (f *fakeStore) ListTurbineIDs(context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.turbines == nil {
		return []string{}, nil
	}
	return f.turbines, nil
}

func (f *fakeStore) Ping(context.Context) error {
	return f.pingErr
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{TimeSeriesDefaultLimit: 100, TimeSeriesMaxLimit: 1000},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"http://localhost:3000"},
			RateLimitDisabled: true,
		},
	}
}

func newTestServer(store *fakeStore) http.Handler {
	cfg := testConfig()
	return NewRouter(NewHandler(store, cfg), &cfg.Security).SetupChi()
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

func expectDetail(t *testing.T, rec *httptest.ResponseRecorder, status int, detail string) {
	t.Helper()
	expectStatus(t, rec, status)
	var body models.ErrorResponse
	decodeBody(t, rec, &body)
	if body.Detail != detail {
		t.Errorf("detail = %q, want %q", body.Detail, detail)
	}
}

func ptrTime(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func ptrFloat(v float64) *float64 { return &v }
