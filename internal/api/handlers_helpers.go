// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gustline/internal/database"
	"github.com/tomtom215/gustline/internal/logging"
	"github.com/tomtom215/gustline/internal/models"
)

// internalErrorDetail is the only detail a client sees for a server fault.
const internalErrorDetail = "Internal error"

// dateLayouts are tried in order. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if status < http.StatusBadRequest {
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Header().Set("ETag", generateETag(data))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondNoContent signals a successful query that matched nothing.
func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// generateETag creates a weak validator from data using FNV-1a
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError sends {"detail": ...} with the given status.
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, models.ErrorResponse{Detail: detail})
}

// respondInternal logs err against the request and sends a generic 500.
func respondInternal(w http.ResponseWriter, r *http.Request, err error) {
	logging.CtxErr(r.Context(), err).
		Str("method", r.Method).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Msg("Request failed")
	respondError(w, http.StatusInternalServerError, internalErrorDetail)
}

// respondStoreError maps storage errors to responses. notFound is the detail
// used for database.ErrNotFound.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, notFound)
	case errors.Is(err, database.ErrBadCursor):
		respondError(w, http.StatusBadRequest, "cursor is not a valid cursor")
	case errors.Is(err, database.ErrInvalidRange):
		respondError(w, http.StatusBadRequest, database.ErrInvalidRange.Error())
	default:
		respondInternal(w, r, err)
	}
}

// pathID reads an integer path parameter. On failure it writes the 400 and
// returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		respondError(w, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter.
func queryInt(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &n, nil
}

// queryIntDefault reads an integer query parameter, returning def when absent.
func queryIntDefault(r *http.Request, key string, def int) (int, error) {
	n, err := queryInt(r, key)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return def, nil
	}
	return *n, nil
}

// queryTime reads an optional date or datetime query parameter.
func queryTime(r *http.Request, key string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an ISO 8601 date or datetime", key)
	}
	return &t, nil
}

func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
