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
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// IsEmpty reports whether a collection is missing or holds no documents.
func (db *DB) IsEmpty(ctx context.Context, collection string) (empty bool, err error) {
	start := time.Now()
	defer func() { observe("count", collection, start, err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	coll := db.collection(collection)
	names, err := coll.Database().ListCollectionNames(ctx, bson.D{{Key: "name", Value: collection}})
	if err != nil {
		return false, fmt.Errorf("failed to list collections: %w", err)
	}
	if len(names) == 0 {
		return true, nil
	}

	n, err := coll.CountDocuments(ctx, bson.D{}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return n == 0, nil
}

// InsertMany bulk inserts docs unordered and returns how many were written.
// Documents already present are not checked for.
func (db *DB) InsertMany(ctx context.Context, collection string, docs []any) (inserted int, err error) {
	if len(docs) == 0 {
		return 0, nil
	}

	start := time.Now()
	defer func() { observe("insert_many", collection, start, err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	res, err := db.collection(collection).InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if res != nil {
		inserted = len(res.InsertedIDs)
	}
	if err != nil {
		return inserted, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return inserted, nil
}
