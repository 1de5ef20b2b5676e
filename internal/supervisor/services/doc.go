// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

// Package services adapts long-running components to suture.Service so the
// supervisor tree can start, restart and stop them. The HTTP API is the only
// supervised component; seeding completes before the tree starts.
package services
