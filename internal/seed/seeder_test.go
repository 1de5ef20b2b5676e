// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package seed

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
)

// fakeStore keeps documents in memory per collection.
type fakeStore struct {
	mu        sync.Mutex
	docs      map[string][]any
	inserts   map[string]int
	isEmptyFn func(collection string) (bool, error)
	insertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string][]any{}, inserts: map[string]int{}}
}

func (f *fakeStore) IsEmpty(_ context.Context, collection string) (bool, error) {
	if f.isEmptyFn != nil {
		return f.isEmptyFn(collection)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs[collection]) == 0, nil
}

func (f *fakeStore) InsertMany(_ context.Context, collection string, docs []any) (int, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[collection] = append(f.docs[collection], slices.Clone(docs)...)
	f.inserts[collection]++
	return len(docs), nil
}

type fakeContent struct {
	calls []string
	errs  map[string]error
}

func (f *fakeContent) Fetch(_ context.Context, resource string) ([]any, int, error) {
	f.calls = append(f.calls, resource)
	if err := f.errs[resource]; err != nil {
		return nil, 0, err
	}
	return []any{resource + "-1", resource + "-2"}, 1, nil
}

type fakeTelemetry struct {
	calls int
	err   error
}

func (f *fakeTelemetry) Load(ctx context.Context, flush FlushFunc) (Result, error) {
	f.calls++
	if f.err != nil {
		return Result{}, f.err
	}
	n, err := flush(ctx, []any{"p1", "p2", "p3"})
	return Result{Inserted: n, FilesProcessed: 1}, err
}

const testTelemetry = "seeder_test_ts"

func TestEnsureSeeded_Idempotent(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	content := &fakeContent{}
	s := New(store, content, &fakeTelemetry{}, testTelemetry)

	res, err := s.EnsureSeeded(context.Background(), "users")
	if err != nil {
		t.Fatalf("first EnsureSeeded: %v", err)
	}
	if res.Inserted != 2 || res.Skipped != 1 {
		t.Errorf("result = %+v, want 2 inserted 1 skipped", res)
	}

	res, err = s.EnsureSeeded(context.Background(), "users")
	if err != nil {
		t.Fatalf("second EnsureSeeded: %v", err)
	}
	if res != (Result{}) {
		t.Errorf("second pass result = %+v, want zero", res)
	}
	if len(content.calls) != 1 {
		t.Errorf("source fetched %d times, want 1", len(content.calls))
	}
	if store.inserts["users"] != 1 {
		t.Errorf("users inserted %d times, want 1", store.inserts["users"])
	}
}

func TestEnsureSeeded_Telemetry(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	tel := &fakeTelemetry{}
	s := New(store, &fakeContent{}, tel, testTelemetry)

	res, err := s.EnsureSeeded(context.Background(), testTelemetry)
	if err != nil {
		t.Fatalf("EnsureSeeded: %v", err)
	}
	if res.Inserted != 3 || len(store.docs[testTelemetry]) != 3 {
		t.Errorf("inserted %d (store has %d), want 3", res.Inserted, len(store.docs[testTelemetry]))
	}
}

func TestEnsureSeeded_UnknownCollection(t *testing.T) {
	t.Parallel()

	s := New(newFakeStore(), &fakeContent{}, &fakeTelemetry{}, testTelemetry)
	if _, err := s.EnsureSeeded(context.Background(), "albums"); err == nil {
		t.Error("expected error for collection without a source")
	}
}

func TestEnsureSeeded_StoreCheckFails(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.isEmptyFn = func(string) (bool, error) { return false, errors.New("connection refused") }
	content := &fakeContent{}
	s := New(store, content, &fakeTelemetry{}, testTelemetry)

	if _, err := s.EnsureSeeded(context.Background(), "posts"); err == nil {
		t.Error("expected error when emptiness cannot be checked")
	}
	if len(content.calls) != 0 {
		t.Error("source should not be fetched when the check fails")
	}
}

func TestEnsureAll_ContinuesPastSourceFailures(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	content := &fakeContent{errs: map[string]error{
		"posts": fmt.Errorf("%w: posts: status 503", ErrUpstreamSeed),
	}}
	tel := &fakeTelemetry{err: fmt.Errorf("%w: no CSV files", ErrSeedSourceNotFound)}
	s := New(store, content, tel, testTelemetry)

	if err := s.EnsureAll(context.Background()); err != nil {
		t.Fatalf("EnsureAll should swallow source failures, got %v", err)
	}

	if want := []string{"users", "posts", "comments"}; !slices.Equal(content.calls, want) {
		t.Errorf("fetch order = %v, want %v", content.calls, want)
	}
	if tel.calls != 1 {
		t.Errorf("telemetry loaded %d times, want 1", tel.calls)
	}
	if len(store.docs["users"]) != 2 || len(store.docs["comments"]) != 2 {
		t.Error("users and comments should be seeded despite posts failing")
	}
	if len(store.docs["posts"]) != 0 {
		t.Error("posts should stay empty")
	}
}

func TestEnsureAll_ReturnsStorageFaults(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.insertErr = errors.New("write concern error")
	s := New(store, &fakeContent{}, &fakeTelemetry{}, testTelemetry)

	err := s.EnsureAll(context.Background())
	if err == nil {
		t.Fatal("expected storage faults to be returned")
	}
	if errors.Is(err, ErrUpstreamSeed) || errors.Is(err, ErrSeedSourceNotFound) {
		t.Errorf("storage fault misclassified: %v", err)
	}
}

func TestErrorType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("wrap: %w", ErrSeedSourceNotFound), "source_not_found"},
		{fmt.Errorf("wrap: %w", ErrUpstreamSeed), "upstream"},
		{errors.New("boom"), "storage"},
	}
	for _, tt := range tests {
		if got := errorType(tt.err); got != tt.want {
			t.Errorf("errorType(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestCollections(t *testing.T) {
	t.Parallel()

	s := New(newFakeStore(), &fakeContent{}, &fakeTelemetry{}, "time-series-data")
	want := []string{"users", "posts", "comments", "time-series-data"}
	if got := s.Collections(); !slices.Equal(got, want) {
		t.Errorf("Collections() = %v, want %v", got, want)
	}
}
