// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateSeed(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.TimeSeriesMaxLimit < 1 {
		return fmt.Errorf("TIMESERIES_MAX_LIMIT must be at least 1")
	}
	if c.API.TimeSeriesDefaultLimit < 1 || c.API.TimeSeriesDefaultLimit > c.API.TimeSeriesMaxLimit {
		return fmt.Errorf("TIMESERIES_DEFAULT_LIMIT must be between 1 and TIMESERIES_MAX_LIMIT (%d)", c.API.TimeSeriesMaxLimit)
	}
	return nil
}

// validateDatabase validates MongoDB connection settings
func (c *Config) validateDatabase() error {
	if c.Database.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("MONGO_PORT must be between 1 and 65535")
	}
	if c.Database.Password != "" && c.Database.Username == "" {
		return fmt.Errorf("MONGO_INITDB_ROOT_USERNAME is required when a password is set")
	}
	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("MONGO_CONNECT_TIMEOUT must be positive")
	}

	names := map[string]string{
		"MONGO_CONTENT_DATABASE":     c.Database.ContentDatabase,
		"MONGO_TELEMETRY_DATABASE":   c.Database.TelemetryDatabase,
		"MONGO_TELEMETRY_COLLECTION": c.Database.TelemetryCollection,
	}
	for field, name := range names {
		if err := validateMongoName(name, field); err != nil {
			return err
		}
	}
	return nil
}

// validateMongoName rejects empty names and characters MongoDB does not allow
// in database or collection names.
func validateMongoName(name, fieldName string) error {
	if name == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if strings.ContainsAny(name, "$/\\ \x00") {
		return fmt.Errorf("%s contains invalid characters: %q", fieldName, name)
	}
	return nil
}

// validateSeed validates seeding settings (only if enabled)
func (c *Config) validateSeed() error {
	if !c.Seed.Enabled {
		return nil
	}
	if err := validateHTTPURL(c.Seed.BaseURL, "JSON_PLACEHOLDER"); err != nil {
		return err
	}
	if c.Seed.FetchTimeout <= 0 {
		return fmt.Errorf("SEED_FETCH_TIMEOUT must be positive")
	}
	if c.Seed.FetchRate <= 0 {
		return fmt.Errorf("SEED_FETCH_RATE must be positive")
	}
	if c.Seed.BatchSize < minSeedBatchSize || c.Seed.BatchSize > maxSeedBatchSize {
		return fmt.Errorf("SEED_BATCH_SIZE must be between %d and %d", minSeedBatchSize, maxSeedBatchSize)
	}
	if c.Seed.CSVDir == "" {
		return fmt.Errorf("CSV_DATA_PATH is required when seeding is enabled")
	}
	return nil
}

const (
	minSeedBatchSize = 1
	maxSeedBatchSize = 100000
)

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
