// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package database

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestClampLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{20, 20},
		{100, 100},
		{101, 100},
		{10000, 100},
	}
	for _, tt := range tests {
		checkIntEqual(t, "ClampLimit", ClampLimit(tt.in), tt.want)
	}
}

func TestParseCursor(t *testing.T) {
	t.Parallel()

	oid := bson.NewObjectID()
	got, err := ParseCursor(oid.Hex())
	checkNoError(t, err)
	if got != oid {
		t.Errorf("ParseCursor = %s, want %s", got.Hex(), oid.Hex())
	}

	for _, bad := range []string{"abc", "zzzzzzzzzzzzzzzzzzzzzzzz", oid.Hex() + "00"} {
		if _, err := ParseCursor(bad); !errors.Is(err, ErrBadCursor) {
			t.Errorf("ParseCursor(%q) error = %v, want ErrBadCursor", bad, err)
		}
	}
}

func TestCursorFilter(t *testing.T) {
	t.Parallel()

	base := bson.D{{Key: "userId", Value: 3}}

	t.Run("first page keeps filter", func(t *testing.T) {
		t.Parallel()
		got, err := cursorFilter(base, "")
		checkNoError(t, err)
		checkIntEqual(t, "len", len(got), 1)
	})

	t.Run("cursor adds strict upper bound", func(t *testing.T) {
		t.Parallel()
		oid := bson.NewObjectID()
		got, err := cursorFilter(base, oid.Hex())
		checkNoError(t, err)
		checkIntEqual(t, "len", len(got), 2)

		bound, ok := field(t, got, "_id").(bson.D)
		if !ok || len(bound) != 1 || bound[0].Key != "$lt" || bound[0].Value != oid {
			t.Errorf("_id bound = %v, want {$lt: %s}", bound, oid.Hex())
		}
		checkIntEqual(t, "base filter untouched", len(base), 1)
	})

	t.Run("bad cursor", func(t *testing.T) {
		t.Parallel()
		if _, err := cursorFilter(base, "not-an-id"); !errors.Is(err, ErrBadCursor) {
			t.Errorf("error = %v, want ErrBadCursor", err)
		}
	})
}

func newIDs(n int) []bson.ObjectID {
	ids := make([]bson.ObjectID, n)
	for i := range ids {
		ids[i] = bson.NewObjectID()
	}
	return ids
}

func TestBuildPage(t *testing.T) {
	t.Parallel()

	t.Run("extra item signals more", func(t *testing.T) {
		t.Parallel()
		ids := newIDs(4)
		page := buildPage([]int{4, 3, 2, 1}, ids, 3)

		checkIntEqual(t, "Count", page.Count(), 3)
		if !page.HasMore {
			t.Error("HasMore = false, want true")
		}
		if page.NextCursor == nil || *page.NextCursor != ids[2].Hex() {
			t.Errorf("NextCursor = %v, want %s", page.NextCursor, ids[2].Hex())
		}
	})

	t.Run("exact fit has no more", func(t *testing.T) {
		t.Parallel()
		page := buildPage([]int{3, 2, 1}, newIDs(3), 3)

		checkIntEqual(t, "Count", page.Count(), 3)
		if page.HasMore || page.NextCursor != nil {
			t.Errorf("HasMore = %v, NextCursor = %v, want false/nil", page.HasMore, page.NextCursor)
		}
	})

	t.Run("empty result", func(t *testing.T) {
		t.Parallel()
		page := buildPage[string](nil, nil, 20)

		if page.Items == nil {
			t.Error("Items should be an empty slice, not nil")
		}
		checkIntEqual(t, "Count", page.Count(), 0)
		if page.HasMore || page.NextCursor != nil {
			t.Error("empty page should have no cursor")
		}
	})
}

func TestBuildPageNeverExceedsLimit(t *testing.T) {
	t.Parallel()

	for limit := 1; limit <= 5; limit++ {
		for n := 0; n <= limit+1; n++ {
			items := make([]int, n)
			page := buildPage(items, newIDs(n), limit)
			if page.Count() > limit {
				t.Errorf("limit %d, fetched %d: count %d exceeds limit", limit, n, page.Count())
			}
			if page.HasMore != (n == limit+1) {
				t.Errorf("limit %d, fetched %d: HasMore = %v", limit, n, page.HasMore)
			}
		}
	}
}
