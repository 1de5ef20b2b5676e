// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package api

import (
	"github.com/tomtom215/gustline/internal/config"
)

// Router wires handlers and middleware into an http.Handler.
type Router struct {
	handler *Handler
	chiMw   *ChiMiddleware
}

// NewRouter creates a new router
func NewRouter(handler *Handler, sec *config.SecurityConfig) *Router {
	return &Router{
		handler: handler,
		chiMw:   NewChiMiddlewareFromConfig(sec),
	}
}
