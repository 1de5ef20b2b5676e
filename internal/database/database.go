// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/tomtom215/gustline/internal/config"
	"github.com/tomtom215/gustline/internal/logging"
)

// Content collection names.
const (
	UsersCollection    = "users"
	PostsCollection    = "posts"
	CommentsCollection = "comments"
)

// defaultQueryTimeout bounds operations whose caller supplied no deadline.
const defaultQueryTimeout = 30 * time.Second

// DB wraps the MongoDB client and provides data access methods.
//
// A single DB is created at startup and shared by all request handlers. The
// underlying client is safe for concurrent use.
type DB struct {
	client    *mongo.Client
	cfg       *config.DatabaseConfig
	content   *mongo.Database
	telemetry *mongo.Database
}

// New connects to MongoDB and verifies the connection with a ping.
// The client is disconnected again if the ping fails.
func New(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetAppName("gustline")

	if cfg.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	db := &DB{
		client:    client,
		cfg:       cfg,
		content:   client.Database(cfg.ContentDatabase),
		telemetry: client.Database(cfg.TelemetryDatabase),
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Failed to disconnect after ping failure")
		}
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logging.Info().
		Str("content_db", cfg.ContentDatabase).
		Str("telemetry_db", cfg.TelemetryDatabase).
		Msg("Connected to MongoDB")

	return db, nil
}

// Close disconnects the client.
func (db *DB) Close() error {
	if db == nil || db.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.client.Disconnect(ctx)
}

// Ping checks that the primary is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if db == nil || db.client == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.client.Ping(ctx, readpref.Primary())
}

// TelemetryCollection returns the configured time-series collection name.
func (db *DB) TelemetryCollection() string {
	return db.cfg.TelemetryCollection
}

// collection resolves a collection name to the database that holds it.
func (db *DB) collection(name string) *mongo.Collection {
	if name == db.cfg.TelemetryCollection {
		return db.telemetry.Collection(name)
	}
	return db.content.Collection(name)
}

// ensureContext applies the default timeout if ctx carries no deadline.
func ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), defaultQueryTimeout)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, defaultQueryTimeout)
	}
	return ctx, func() {}
}
