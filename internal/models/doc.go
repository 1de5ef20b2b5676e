// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

/*
Package models defines the data structures shared by storage, seeding and
the HTTP API.

Content (User, Post, Comment) mirrors the JSON source field for field; the
same tags drive JSON decoding of the source, BSON storage and JSON responses.
Validation tags are checked by the seeder before records are inserted.

Telemetry (TimeSeriesPoint) is stored in a MongoDB time-series collection
with TurbineMetadata as the meta field. AggregatedBucket and UserReport are
derived by aggregation pipelines and never stored.
*/
package models
