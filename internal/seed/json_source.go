// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package seed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/gustline/internal/config"
	"github.com/tomtom215/gustline/internal/logging"
	"github.com/tomtom215/gustline/internal/models"
	"github.com/tomtom215/gustline/internal/validation"
)

// maxSourceBody bounds a single resource download.
const maxSourceBody = 32 << 20

// JSONSource fetches content arrays from a remote JSON API serving
// {base}/users, {base}/posts and {base}/comments.
type JSONSource struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[[]byte]
}

// NewJSONSource creates a JSON source from seed configuration.
func NewJSONSource(cfg *config.SeedConfig) *JSONSource {
	limit := rate.Inf
	if cfg.FetchRate > 0 {
		limit = rate.Limit(cfg.FetchRate)
	}
	return &JSONSource{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.FetchTimeout},
		limiter: rate.NewLimiter(limit, 1),
		cb:      newCircuitBreaker(breakerName),
	}
}

// Fetch downloads one resource and returns its valid records as documents
// ready for insertion, plus the number of records skipped.
func (s *JSONSource) Fetch(ctx context.Context, resource string) ([]any, int, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrUpstreamSeed, resource, err)
	}

	body, err := execute(s.cb, func() ([]byte, error) {
		return s.get(ctx, resource)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrUpstreamSeed, resource, err)
	}

	var docs []any
	var skipped int
	switch resource {
	case "users":
		docs, skipped, err = decodeRecords[models.User](body, resource)
	case "posts":
		docs, skipped, err = decodeRecords[models.Post](body, resource)
	case "comments":
		docs, skipped, err = decodeRecords[models.Comment](body, resource)
	default:
		return nil, 0, fmt.Errorf("unknown content resource %q", resource)
	}
	if err != nil {
		return nil, skipped, fmt.Errorf("%w: %s: %w", ErrUpstreamSeed, resource, err)
	}
	if len(docs) == 0 {
		return nil, skipped, fmt.Errorf("%w: %s: no records", ErrUpstreamSeed, resource)
	}
	return docs, skipped, nil
}

func (s *JSONSource) get(ctx context.Context, resource string) ([]byte, error) {
	reqURL := s.baseURL + "/" + resource

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s returned status %d", reqURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// decodeRecords decodes a JSON array element by element. Elements that do
// not decode into T or fail validation are skipped.
func decodeRecords[T any](body []byte, resource string) ([]any, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, 0, fmt.Errorf("response is not a JSON array: %w", err)
	}

	docs := make([]any, 0, len(raw))
	skipped := 0
	for i, elem := range raw {
		var rec T
		if err := json.Unmarshal(elem, &rec); err != nil {
			skipped++
			logging.Warn().Str("resource", resource).Int("index", i).Err(err).Msg("Skipping undecodable record")
			continue
		}
		if verr := validation.ValidateStruct(&rec); verr != nil {
			skipped++
			logging.Warn().Str("resource", resource).Int("index", i).Str("reason", verr.Error()).Msg("Skipping invalid record")
			continue
		}
		docs = append(docs, rec)
	}
	return docs, skipped, nil
}
