// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DefaultMongoImage supports time-series collections and $lookup with
// both localField and pipeline.
const DefaultMongoImage = "mongo:7.0"

// MongoContainer represents a running MongoDB container for testing.
type MongoContainer struct {
	*mongodb.MongoDBContainer
	URI string
}

// MongoOption configures the MongoDB container.
type MongoOption func(*mongoConfig)

type mongoConfig struct {
	image        string
	startTimeout time.Duration
}

// WithMongoImage sets a custom MongoDB Docker image.
func WithMongoImage(image string) MongoOption {
	return func(c *mongoConfig) {
		c.image = image
	}
}

// WithStartTimeout sets the timeout for waiting for MongoDB to start.
func WithStartTimeout(timeout time.Duration) MongoOption {
	return func(c *mongoConfig) {
		c.startTimeout = timeout
	}
}

// NewMongoContainer starts a standalone MongoDB and returns its connection URI.
//
// Example:
//
//	mongo, err := testinfra.NewMongoContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, mongo)
//
//	cfg.Database.URI = mongo.URI
func NewMongoContainer(ctx context.Context, opts ...MongoOption) (*MongoContainer, error) {
	cfg := &mongoConfig{
		image:        DefaultMongoImage,
		startTimeout: 90 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	container, err := mongodb.Run(ctx, cfg.image,
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("27017/tcp").WithStartupTimeout(cfg.startTimeout),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		testcontainers.TerminateContainer(container) //nolint:errcheck
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	return &MongoContainer{MongoDBContainer: container, URI: uri}, nil
}
