// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tomtom215/gustline/internal/logging"
)

// EnsureTimeSeriesCollection creates the telemetry collection as a MongoDB
// time-series collection if it does not already exist.
func (db *DB) EnsureTimeSeriesCollection(ctx context.Context) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	name := db.cfg.TelemetryCollection
	names, err := db.telemetry.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return fmt.Errorf("failed to list telemetry collections: %w", err)
	}
	if len(names) > 0 {
		return nil
	}

	opts := options.CreateCollection().SetTimeSeriesOptions(
		options.TimeSeries().
			SetTimeField("timestamp").
			SetMetaField("metadata").
			SetGranularity("minutes"),
	)
	if err := db.telemetry.CreateCollection(ctx, name, opts); err != nil && !isNamespaceExists(err) {
		return fmt.Errorf("failed to create time-series collection %s: %w", name, err)
	}

	logging.Info().Str("collection", name).Msg("Created time-series collection")
	return nil
}

// indexSpec pairs a collection with the indexes it needs.
type indexSpec struct {
	collection string
	models     []mongo.IndexModel
}

func (db *DB) indexSpecs() []indexSpec {
	return []indexSpec{
		{UsersCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
		{PostsCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}},
			{Keys: bson.D{{Key: "userId", Value: 1}}},
		}},
		{CommentsCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}},
			{Keys: bson.D{{Key: "postId", Value: 1}}},
		}},
		{db.cfg.TelemetryCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "metadata.turbine_id", Value: 1}, {Key: "timestamp", Value: 1}}},
		}},
	}
}

// EnsureIndexes creates the lookup and join indexes. Creating an index that
// already exists with the same definition is a no-op.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	for _, spec := range db.indexSpecs() {
		names, err := db.collection(spec.collection).Indexes().CreateMany(ctx, spec.models)
		if err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", spec.collection, err)
		}
		logging.Debug().Str("collection", spec.collection).Strs("indexes", names).Msg("Indexes ensured")
	}
	return nil
}
