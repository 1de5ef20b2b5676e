// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Page size bounds for cursor-paginated listings.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is one slice of a keyset-paginated listing.
//
// Items are ordered by descending _id. NextCursor is the hex _id of the last
// item and is nil when HasMore is false.
type Page[T any] struct {
	Items      []T
	NextCursor *string
	HasMore    bool
}

// Count returns the number of items on the page.
func (p *Page[T]) Count() int {
	return len(p.Items)
}

// ClampLimit bounds a page size to [1, MaxPageLimit].
func ClampLimit(limit int) int {
	switch {
	case limit < 1:
		return 1
	case limit > MaxPageLimit:
		return MaxPageLimit
	default:
		return limit
	}
}

// ParseCursor decodes a cursor into the ObjectID it names.
func ParseCursor(cursor string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(cursor)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q", ErrBadCursor, cursor)
	}
	return oid, nil
}

// cursorFilter extends filter with the strict "older than cursor" bound.
// An empty cursor requests the first page.
func cursorFilter(filter bson.D, cursor string) (bson.D, error) {
	out := make(bson.D, 0, len(filter)+1)
	out = append(out, filter...)
	if cursor == "" {
		return out, nil
	}
	oid, err := ParseCursor(cursor)
	if err != nil {
		return nil, err
	}
	return append(out, bson.E{Key: "_id", Value: bson.D{{Key: "$lt", Value: oid}}}), nil
}

// paginate runs a keyset query against coll. It fetches limit+1 documents
// newest first so that the presence of a further page is known without a
// second round trip.
func paginate[T any](ctx context.Context, coll *mongo.Collection, filter bson.D, cursor string, limit int) (page *Page[T], err error) {
	start := time.Now()
	defer func() { observe("find", coll.Name(), start, err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	limit = ClampLimit(limit)
	query, err := cursorFilter(filter, cursor)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit + 1))

	cur, err := coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer closeCursor(ctx, cur, coll.Name())

	items := make([]T, 0, limit+1)
	ids := make([]bson.ObjectID, 0, limit+1)
	for cur.Next(ctx) {
		oid, ok := cur.Current.Lookup("_id").ObjectIDOK()
		if !ok {
			return nil, fmt.Errorf("document in %s has no ObjectID _id", coll.Name())
		}
		var item T
		if err := cur.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", coll.Name(), err)
		}
		items = append(items, item)
		ids = append(ids, oid)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", coll.Name(), err)
	}

	return buildPage(items, ids, limit), nil
}

// buildPage trims a limit+1 result to limit items and derives the cursor.
func buildPage[T any](items []T, ids []bson.ObjectID, limit int) *Page[T] {
	page := &Page[T]{Items: items}
	if page.Items == nil {
		page.Items = []T{}
	}
	if len(items) > limit {
		page.Items = items[:limit]
		page.HasMore = true
		next := ids[limit-1].Hex()
		page.NextCursor = &next
	}
	return page
}
