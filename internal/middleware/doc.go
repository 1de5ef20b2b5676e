// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

/*
Package middleware provides the HTTP middleware shared by every route.

Components:

  - RequestID: assigns or propagates X-Request-ID and stores it for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    chi route pattern
  - Compression: lazy gzip for clients sending Accept-Encoding: gzip

All three are plain http.HandlerFunc wrappers. The api package adapts them
to chi with chiMiddleware:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))

Endpoint labels come from chi.RouteContext after routing completes, so
PrometheusMetrics must run inside the chi router rather than around it.
*/
package middleware
