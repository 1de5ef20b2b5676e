// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package api

import (
	"context"
	"time"

	"github.com/tomtom215/gustline/internal/config"
	"github.com/tomtom215/gustline/internal/database"
	"github.com/tomtom215/gustline/internal/models"
)

// Version is reported by the health endpoint. It is overridden at build time:
//
//	go build -ldflags "-X github.com/tomtom215/gustline/internal/api.Version=1.2.0"
var Version = "dev"

// ContentStore serves users, posts and comments.
type ContentStore interface {
	ListUsers(ctx context.Context, cursor string, limit int) (*database.Page[models.User], error)
	ListPosts(ctx context.Context, userID *int, cursor string, limit int) (*database.Page[models.Post], error)
	ListComments(ctx context.Context, postID *int, cursor string, limit int) (*database.Page[models.Comment], error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetPost(ctx context.Context, id int) (*models.Post, error)
	GetComment(ctx context.Context, id int) (*models.Comment, error)
}

// ReportStore serves per-user activity reports.
type ReportStore interface {
	ListReports(ctx context.Context, page, limit int) ([]models.UserReport, error)
	ReportFor(ctx context.Context, userID int) (*models.UserReport, error)
}

// TelemetryStore serves raw and binned turbine telemetry.
type TelemetryStore interface {
	PowerCurve(ctx context.Context, q database.PowerCurveQuery) ([]models.AggregatedBucket, error)
	ListPoints(ctx context.Context, q database.PointQuery) ([]models.TimeSeriesPoint, error)
	ListTurbineIDs(ctx context.Context) ([]string, error)
}

// Store is everything the handlers read from. *database.DB implements it.
type Store interface {
	ContentStore
	ReportStore
	TelemetryStore
	Ping(ctx context.Context) error
}

// Handler handles all HTTP API requests
type Handler struct {
	store     Store
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new Handler instance
func NewHandler(store Store, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		config:    cfg,
		startTime: time.Now(),
	}
}

// timeSeriesLimits returns the default and maximum row counts for /timeseries.
func (h *Handler) timeSeriesLimits() (def, maxLimit int) {
	def, maxLimit = 100, 1000
	if h.config == nil {
		return def, maxLimit
	}
	if h.config.API.TimeSeriesDefaultLimit > 0 {
		def = h.config.API.TimeSeriesDefaultLimit
	}
	if h.config.API.TimeSeriesMaxLimit > 0 {
		maxLimit = h.config.API.TimeSeriesMaxLimit
	}
	return def, maxLimit
}
