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

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values for every setting
//  2. .env: variables from a .env file in the working directory (if present)
//  3. Config File: optional YAML file (config.yaml or CONFIG_PATH)
//  4. Environment Variables: override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	db, err := database.New(ctx, &cfg.Database)
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Database DatabaseConfig `koanf:"database"`
	Seed     SeedConfig     `koanf:"seed"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// Addr returns the listen address for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig holds limits for the raw telemetry listing. Cursor pagination
// bounds for users, posts and comments are fixed at [1,100] with a default
// of 20 and are not configurable.
type APIConfig struct {
	TimeSeriesDefaultLimit int `koanf:"timeseries_default_limit"`
	TimeSeriesMaxLimit     int `koanf:"timeseries_max_limit"`
}

// DatabaseConfig holds MongoDB connection settings.
//
// URI may be a bare host ("mongo") in which case Port is appended, or a full
// connection string ("mongodb://..." / "mongodb+srv://...") which is used as is.
type DatabaseConfig struct {
	URI                 string        `koanf:"uri"`
	Port                int           `koanf:"port"`
	Username            string        `koanf:"username"`
	Password            string        `koanf:"password"`
	ContentDatabase     string        `koanf:"content_database"`
	TelemetryDatabase   string        `koanf:"telemetry_database"`
	TelemetryCollection string        `koanf:"telemetry_collection"`
	ConnectTimeout      time.Duration `koanf:"connect_timeout"`
}

// ConnectionURI returns a MongoDB connection string.
func (d *DatabaseConfig) ConnectionURI() string {
	if strings.HasPrefix(d.URI, "mongodb://") || strings.HasPrefix(d.URI, "mongodb+srv://") {
		return d.URI
	}
	return fmt.Sprintf("mongodb://%s:%d", d.URI, d.Port)
}

// SeedConfig controls the startup population of empty collections.
type SeedConfig struct {
	Enabled bool `koanf:"enabled"`

	// BaseURL is the JSON source serving /users, /posts and /comments.
	BaseURL string `koanf:"base_url"`

	// FetchTimeout bounds each HTTP request to the JSON source.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`

	// FetchRate is the maximum number of JSON source requests per second.
	FetchRate float64 `koanf:"fetch_rate"`

	// CSVDir holds one CSV file per turbine.
	CSVDir string `koanf:"csv_dir"`

	// BatchSize is the number of telemetry documents per bulk insert.
	BatchSize int `koanf:"batch_size"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads and validates the configuration.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
