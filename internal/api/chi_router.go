// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/gustline/internal/middleware"
)

// SetupChi builds the chi router with all routes and middleware.
//
// Middleware order:
//  1. RequestID - assign X-Request-ID and attach it to the logging context
//  2. RealIP - trust X-Forwarded-For / X-Real-IP for the client address
//  3. recoverJSON - panics become 500 {"detail":"Internal error"}
//  4. CORS - go-chi/cors
//  5. RateLimit - go-chi/httprate keyed by client IP
//  6. PrometheusMetrics - labelled by route pattern
//  7. Compression - gzip when accepted
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(recoverJSON)
	r.Use(router.chiMw.CORS())
	r.Use(router.chiMw.RateLimit())
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", h.Root)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.Health)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Group(func(r chi.Router) {
		r.Use(chiPathValue)

		r.Get("/users", h.ListUsers)
		r.Get("/users/{id}", h.GetUser)
		r.Get("/posts", h.ListPosts)
		r.Get("/posts/{id}", h.GetPost)
		r.Get("/comments", h.ListComments)
		r.Get("/comments/{id}", h.GetComment)

		r.Get("/reports", h.ListReports)
		r.Get("/reports/{user_id}", h.GetReport)

		r.Get("/timeseries", h.GetTimeSeries)
		r.Get("/aggregated_timeseries", h.GetAggregatedTimeSeries)
		r.Get("/turbines", h.ListTurbines)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

// chiMiddleware adapts an http.HandlerFunc middleware to chi's signature.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// chiPathValue copies chi URL params into the request so handlers can read
// them with r.PathValue.
func chiPathValue(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		if rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if i < len(rctx.URLParams.Values) {
					r.SetPathValue(key, rctx.URLParams.Values[i])
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
