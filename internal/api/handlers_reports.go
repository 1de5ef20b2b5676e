// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package api

import (
	"net/http"
)

// ListReports summarizes a page of users with their posts and the comments
// on those posts. Paging bounds the number of users, never the contents of
// a report.
//
// @Summary List user activity reports
// @Tags Reports
// @Produce json
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "Users per page, 1 to 100" default(10)
// @Success 200 {array} models.UserReport
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /reports [get]
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportsRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	reports, err := h.store.ListReports(r.Context(), req.Page, req.Limit)
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

// GetReport summarizes one user.
//
// @Summary Get user activity report
// @Tags Reports
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} models.UserReport
// @Failure 400 {object} models.ErrorResponse "Non-numeric id"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /reports/{user_id} [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user_id")
	if !ok {
		return
	}

	report, err := h.store.ReportFor(r.Context(), userID)
	if err != nil {
		respondStoreError(w, r, err, "User not found")
		return
	}
	respondJSON(w, http.StatusOK, report)
}
