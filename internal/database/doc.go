// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

/*
Package database provides MongoDB access for content and telemetry.

A single DB wraps one mongo.Client and is shared across all requests. The
content collections (users, posts, comments) live in one database and the
telemetry time-series collection in another; both names are configurable.

# Listings

Users, posts and comments are listed with keyset pagination on the storage
_id in descending order. A page fetches limit+1 documents: the extra
document only signals that another page exists and is dropped. The cursor
is the hex _id of the last returned document, and the next page selects
strictly older documents, so pages never overlap even while inserts happen.

Single documents are looked up by their domain "id" field.

# Reports

ListReports and ReportFor run one aggregation: users are sorted and paged,
then joined to posts on userId and to comments on postId via the joined
post ids. Counts are the sizes of the full joined arrays.

# Power Curve

PowerCurve groups telemetry in [start, end) into 0.5 m/s wind speed bins
with $bucket and returns per-bin averages rounded to two decimals. Values
outside [0, 25.5) or missing wind speed fall into a default bucket that is
removed before results are returned.

# Seeding Support

IsEmpty and InsertMany implement the store used by the seed package.
EnsureTimeSeriesCollection and EnsureIndexes prepare collections at startup.

# Metrics

Every operation records mongo_operation_duration_seconds and, on failure,
mongo_operation_errors_total.
*/
package database
