// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package api

import (
	"net/http"

	"github.com/tomtom215/gustline/internal/database"
)

// GetTimeSeries returns raw telemetry in ascending time order.
//
// @Summary List raw turbine telemetry
// @Tags Telemetry
// @Produce json
// @Param turbine_id query string false "Turbine id (CSV file stem)"
// @Param start_date query string false "Inclusive lower bound, ISO 8601"
// @Param end_date query string false "Exclusive upper bound, ISO 8601"
// @Param limit query int false "Row cap" default(100)
// @Success 200 {array} models.TimeSeriesPoint
// @Success 204 "No telemetry matched"
// @Failure 400 {object} models.ErrorResponse
// @Router /timeseries [get]
func (h *Handler) GetTimeSeries(w http.ResponseWriter, r *http.Request) {
	def, maxLimit := h.timeSeriesLimits()
	req, err := parseTimeSeriesRequest(r, def, maxLimit)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	points, err := h.store.ListPoints(r.Context(), database.PointQuery{
		Start:     req.Start,
		End:       req.End,
		TurbineID: req.TurbineID,
		Limit:     req.Limit,
	})
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}
	if len(points) == 0 {
		respondNoContent(w)
		return
	}
	respondJSON(w, http.StatusOK, points)
}

// GetAggregatedTimeSeries returns the power curve: telemetry averaged per
// 0.5 m/s wind speed bin. Without dates the reference day 2016-01-01 is used;
// with one date the window extends one day from it.
//
// @Summary Power curve by wind speed bin
// @Tags Telemetry
// @Produce json
// @Param turbine_id query string false "Turbine id (CSV file stem)"
// @Param start_date query string false "Inclusive lower bound, ISO 8601"
// @Param end_date query string false "Exclusive upper bound, ISO 8601"
// @Success 200 {array} models.AggregatedBucket
// @Success 204 "No telemetry in window"
// @Failure 400 {object} models.ErrorResponse "start must precede end"
// @Router /aggregated_timeseries [get]
func (h *Handler) GetAggregatedTimeSeries(w http.ResponseWriter, r *http.Request) {
	req, err := parseTelemetryFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	buckets, err := h.store.PowerCurve(r.Context(), database.PowerCurveQuery{
		Start:     req.Start,
		End:       req.End,
		TurbineID: req.TurbineID,
	})
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}
	if len(buckets) == 0 {
		respondNoContent(w)
		return
	}
	respondJSON(w, http.StatusOK, buckets)
}

// ListTurbines returns the ids of every turbine with stored telemetry.
//
// @Summary List turbine ids
// @Tags Telemetry
// @Produce json
// @Success 200 {array} string
// @Router /turbines [get]
func (h *Handler) ListTurbines(w http.ResponseWriter, r *http.Request) {
	ids, err := h.store.ListTurbineIDs(r.Context())
	if err != nil {
		respondInternal(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, ids)
}
