// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

/*
Package api provides the read-only HTTP surface over content and turbine
telemetry.

Routes:

	GET /                        banner
	GET /health, /health/live, /health/ready
	GET /users, /users/{id}      keyset pages of users
	GET /posts, /posts/{id}      ?user_id= filters by author
	GET /comments, /comments/{id}  ?post_id= filters by post
	GET /reports, /reports/{user_id}
	GET /timeseries              raw telemetry
	GET /aggregated_timeseries   power curve (0.5 m/s wind speed bins)
	GET /turbines
	GET /metrics                 Prometheus exposition
	GET /swagger/*               Swagger UI

Responses are JSON encoded with goccy/go-json and carry an ETag. Every
error body has the shape {"detail": "..."}; storage faults are logged with
the request ID and returned as a generic 500. Empty telemetry results are
204 with no body, while empty content listings are 200 with an empty array.

Handlers depend on the Store interface rather than *database.DB, so tests
substitute an in-memory fake:

	h := api.NewHandler(db, cfg)
	srv := &http.Server{Handler: api.NewRouter(h, &cfg.Security).SetupChi()}
*/
package api
