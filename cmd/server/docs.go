// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

// Package main provides the Gustline HTTP server
//
// @title Gustline API
// @version 1.0
// @description Read-only REST API over blog content (users, posts, comments) and wind turbine telemetry stored in MongoDB.
// @description
// @description ## Pagination
// @description
// @description List endpoints use keyset pagination ordered newest first. Pass the
// @description returned `next_cursor` as `cursor` to fetch the following page.
// @description
// @description ## Error Responses
// @description
// @description All error responses have the form `{"detail": "message"}`.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/gustline/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Banner and health probes
//
// @tag.name Content
// @tag.description Users, posts and comments
//
// @tag.name Reports
// @tag.description Per-user activity reports
//
// @tag.name Telemetry
// @tag.description Wind turbine time series and power curve
package main
