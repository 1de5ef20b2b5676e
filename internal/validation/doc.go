// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process wide. It is used in two
// places: the seeder checks every decoded source record before insertion, and
// the HTTP handlers check parsed query parameters.
//
// Field names in errors follow the query or json tag of the field, so a
// failure on
//
//	Limit int `query:"limit" validate:"min=1,max=100"`
//
// reads "limit must be at most 100".
//
// # Custom Tags
//
//   - turbine_id: letters, digits, '.', '_' and '-', at most 64 characters
//
// The built-in mongodb tag validates ObjectID hex strings and is used for
// pagination cursors.
package validation
