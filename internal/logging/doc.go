// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

/*
Package logging provides centralized zerolog-based logging for Gustline.

The package owns a single global zerolog.Logger that is usable before Init is
called and reconfigured from the loaded configuration at startup.

# Quick Start

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Str("collection", "posts").Int("inserted", 100).Msg("Seeded collection")
	logging.Error().Err(err).Msg("Aggregation failed")

	// Request scoped, picks up request_id set by the HTTP middleware
	logging.Ctx(r.Context()).Warn().Msg("Rejected cursor")

# Configuration

Environment Variables:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

# slog Bridge

The supervisor tree reports through log/slog (via sutureslog). NewSlogLogger
returns an *slog.Logger whose records are written by the global zerolog logger
so both streams share one format.
*/
package logging
