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
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gustline/internal/logging"
	"github.com/tomtom215/gustline/internal/metrics"
)

// Content resources served by the JSON source. Each is stored in the
// collection of the same name.
var contentResources = []string{"users", "posts", "comments"}

// Store is the storage the seeder populates.
type Store interface {
	IsEmpty(ctx context.Context, collection string) (bool, error)
	InsertMany(ctx context.Context, collection string, docs []any) (int, error)
}

// ContentSource provides the documents for one content resource.
type ContentSource interface {
	Fetch(ctx context.Context, resource string) ([]any, int, error)
}

// TelemetrySource streams telemetry documents into flush.
type TelemetrySource interface {
	Load(ctx context.Context, flush FlushFunc) (Result, error)
}

// Result summarizes one seeding pass.
type Result struct {
	Inserted       int
	Skipped        int
	FilesProcessed int
	FilesSkipped   int
}

// Seeder populates empty collections at startup.
type Seeder struct {
	store               Store
	content             ContentSource
	telemetry           TelemetrySource
	telemetryCollection string
	logger              zerolog.Logger
}

// New creates a Seeder. telemetryCollection names the collection filled
// from the telemetry source.
func New(store Store, content ContentSource, telemetry TelemetrySource, telemetryCollection string) *Seeder {
	return &Seeder{
		store:               store,
		content:             content,
		telemetry:           telemetry,
		telemetryCollection: telemetryCollection,
		logger:              logging.WithComponent("seed"),
	}
}

// Collections returns the collections EnsureAll seeds, in order.
func (s *Seeder) Collections() []string {
	out := make([]string, 0, len(contentResources)+1)
	out = append(out, contentResources...)
	return append(out, s.telemetryCollection)
}

// EnsureSeeded populates collection from its source if the collection is
// missing or empty. Calling it on a populated collection does nothing.
func (s *Seeder) EnsureSeeded(ctx context.Context, collection string) (Result, error) {
	empty, err := s.store.IsEmpty(ctx, collection)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check %s: %w", collection, err)
	}
	if !empty {
		s.logger.Debug().Str("collection", collection).Msg("Collection already populated, skipping seed")
		return Result{}, nil
	}

	s.logger.Info().Str("collection", collection).Msg("Collection missing or empty, seeding")

	start := time.Now()
	var res Result
	switch {
	case collection == s.telemetryCollection:
		res, err = s.seedTelemetry(ctx, collection)
	case slices.Contains(contentResources, collection):
		res, err = s.seedContent(ctx, collection)
	default:
		return Result{}, fmt.Errorf("no seed source for collection %q", collection)
	}
	metrics.RecordSeed(collection, time.Since(start), res.Inserted, res.Skipped, errorType(err))

	if err != nil {
		return res, err
	}

	s.logger.Info().
		Str("collection", collection).
		Int("inserted", res.Inserted).
		Int("skipped", res.Skipped).
		Dur("duration", time.Since(start)).
		Msg("Seeded collection")
	return res, nil
}

// EnsureAll seeds every collection. Source failures are logged and the
// remaining collections are still seeded; only storage faults are returned.
func (s *Seeder) EnsureAll(ctx context.Context) error {
	var errs []error
	for _, collection := range s.Collections() {
		_, err := s.EnsureSeeded(ctx, collection)
		switch {
		case err == nil:
		case errors.Is(err, ErrSeedSourceNotFound), errors.Is(err, ErrUpstreamSeed):
			s.logger.Warn().Err(err).Str("collection", collection).Msg("Seeding skipped")
		default:
			s.logger.Error().Err(err).Str("collection", collection).Msg("Seeding failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Seeder) seedContent(ctx context.Context, collection string) (Result, error) {
	docs, skipped, err := s.content.Fetch(ctx, collection)
	res := Result{Skipped: skipped}
	if err != nil {
		return res, err
	}

	res.Inserted, err = s.store.InsertMany(ctx, collection, docs)
	return res, err
}

func (s *Seeder) seedTelemetry(ctx context.Context, collection string) (Result, error) {
	return s.telemetry.Load(ctx, func(ctx context.Context, batch []any) (int, error) {
		return s.store.InsertMany(ctx, collection, batch)
	})
}
