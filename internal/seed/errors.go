// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package seed

import "errors"

var (
	// ErrSeedSourceNotFound means the CSV directory is missing or holds no
	// CSV files.
	ErrSeedSourceNotFound = errors.New("seed source not found")

	// ErrUpstreamSeed means the JSON source was unreachable, answered with a
	// non-2xx status, or returned no usable records.
	ErrUpstreamSeed = errors.New("seed source unavailable")
)

// errorType maps a seeding failure to a metrics label.
func errorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSeedSourceNotFound):
		return "source_not_found"
	case errors.Is(err, ErrUpstreamSeed):
		return "upstream"
	default:
		return "storage"
	}
}
