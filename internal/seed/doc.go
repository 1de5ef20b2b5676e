// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

/*
Package seed populates empty collections once at startup.

EnsureSeeded checks a collection and, only when it is missing or empty,
loads it from its source:

  - users, posts and comments come from a remote JSON API (JSONSource), one
    GET per resource, inserted in a single bulk insert. Requests pass through
    a circuit breaker and a rate limiter; there are no retries.
  - telemetry comes from a directory of semicolon-separated turbine exports
    (CSVSource). The file stem is the turbine id. Rows are inserted in
    batches and malformed rows are skipped individually.

EnsureAll seeds every collection. A missing or failing source is logged and
the remaining collections are still attempted; seeding never stops startup.

Two processes starting at the same time may both see an empty collection and
insert twice. No locking guards against this.
*/
package seed
