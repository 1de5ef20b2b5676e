// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/gustline/internal/database"
	"github.com/tomtom215/gustline/internal/validation"
)

// PageRequest holds keyset pagination parameters. Limit is clamped rather
// than rejected.
type PageRequest struct {
	Cursor string `query:"cursor" validate:"omitempty,mongodb"`
	Limit  int    `query:"limit"`
}

// ReportsRequest holds /reports paging parameters.
type ReportsRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

// TimeSeriesRequest holds /timeseries and /aggregated_timeseries filters.
type TimeSeriesRequest struct {
	TurbineID string `query:"turbine_id" validate:"omitempty,turbine_id"`
	Start     *time.Time
	End       *time.Time
	Limit     int
}

// badRequest is a parse or validation failure whose message is safe to return.
type badRequest struct {
	detail string
}

func (e *badRequest) Error() string { return e.detail }

func newBadRequest(err error) error {
	return &badRequest{detail: err.Error()}
}

// validateRequest validates a struct using go-playground/validator.
func validateRequest(v any) error {
	if verr := validation.ValidateStruct(v); verr != nil {
		return &badRequest{detail: verr.Error()}
	}
	return nil
}

func parsePageRequest(r *http.Request) (PageRequest, error) {
	limit, err := queryIntDefault(r, "limit", database.DefaultPageLimit)
	if err != nil {
		return PageRequest{}, newBadRequest(err)
	}
	req := PageRequest{
		Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		Limit:  database.ClampLimit(limit),
	}
	if err := validateRequest(&req); err != nil {
		return PageRequest{}, err
	}
	return req, nil
}

func parseReportsRequest(r *http.Request) (ReportsRequest, error) {
	page, err := queryIntDefault(r, "page", 1)
	if err != nil {
		return ReportsRequest{}, newBadRequest(err)
	}
	limit, err := queryIntDefault(r, "limit", database.DefaultReportLimit)
	if err != nil {
		return ReportsRequest{}, newBadRequest(err)
	}
	req := ReportsRequest{Page: page, Limit: limit}
	if err := validateRequest(&req); err != nil {
		return ReportsRequest{}, err
	}
	return req, nil
}

// parseTelemetryFilter reads the turbine and window filters shared by the
// raw listing and the power curve.
func parseTelemetryFilter(r *http.Request) (TimeSeriesRequest, error) {
	var req TimeSeriesRequest
	var err error

	req.TurbineID = strings.TrimSpace(r.URL.Query().Get("turbine_id"))
	if req.Start, err = queryTime(r, "start_date"); err != nil {
		return req, newBadRequest(err)
	}
	if req.End, err = queryTime(r, "end_date"); err != nil {
		return req, newBadRequest(err)
	}

	if err := validateRequest(&req); err != nil {
		return req, err
	}
	return req, nil
}

// parseTimeSeriesRequest reads the telemetry filters plus the raw listing
// limit, clamped to [1, maxLimit].
func parseTimeSeriesRequest(r *http.Request, defLimit, maxLimit int) (TimeSeriesRequest, error) {
	req, err := parseTelemetryFilter(r)
	if err != nil {
		return req, err
	}

	limit, err := queryIntDefault(r, "limit", defLimit)
	if err != nil {
		return req, newBadRequest(err)
	}
	req.Limit = min(max(limit, 1), maxLimit)
	return req, nil
}
