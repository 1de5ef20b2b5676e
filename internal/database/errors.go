// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tomtom215/gustline/internal/logging"
	"github.com/tomtom215/gustline/internal/metrics"
)

var (
	// ErrNotFound is returned by single-document lookups when no document
	// carries the requested domain id.
	ErrNotFound = errors.New("document not found")

	// ErrBadCursor is returned when a pagination cursor is not a valid
	// ObjectID hex string.
	ErrBadCursor = errors.New("invalid cursor")

	// ErrInvalidRange is returned when a time window does not satisfy start < end.
	ErrInvalidRange = errors.New("start must precede end")
)

// closeCursor closes a result cursor and logs any error.
func closeCursor(ctx context.Context, cur *mongo.Cursor, collection string) {
	if cur == nil {
		return
	}
	if err := cur.Close(ctx); err != nil {
		logging.Warn().Str("collection", collection).Err(err).Msg("Failed to close cursor")
	}
}

// observe records the duration and outcome of one MongoDB operation.
// ErrNotFound is an expected outcome and is not counted as a failure.
func observe(operation, collection string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrBadCursor) || errors.Is(err, ErrInvalidRange) {
		err = nil
	}
	metrics.RecordDBQuery(operation, collection, time.Since(start), err)
}

// isNamespaceExists reports whether err is MongoDB's NamespaceExists (48).
func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 48
	}
	return false
}
