// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/gustline/config.yaml",
	"/etc/gustline/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPath is the dotenv file read before the environment layer.
var DotEnvPath = ".env"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			TimeSeriesDefaultLimit: 100,
			TimeSeriesMaxLimit:     1000,
		},
		Database: DatabaseConfig{
			URI:                 "localhost",
			Port:                27017,
			ContentDatabase:     "users-demo",
			TelemetryDatabase:   "time-series-demo",
			TelemetryCollection: "time-series-data",
			ConnectTimeout:      10 * time.Second,
		},
		Seed: SeedConfig{
			Enabled:      true,
			BaseURL:      "https://jsonplaceholder.typicode.com",
			FetchTimeout: 5 * time.Second,
			FetchRate:    5,
			CSVDir:       "data/csv",
			BatchSize:    1000,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults
//  2. Config File: optional YAML config file (if exists)
//  3. Environment Variables (including those from .env)
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	if err := loadDotEnv(DotEnvPath); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvPath, err)
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// MONGO_URI -> database.uri, JSON_PLACEHOLDER -> seed.base_url, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv reads a dotenv file into the process environment. Variables that
// are already set win over the file. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// findConfigFile returns the first existing config file, or "" if none.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars always arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
// The MongoDB and seed names match the ones used by the docker-compose setup.
var envMappings = map[string]string{
	// MongoDB
	"mongo_uri":                  "database.uri",
	"mongo_port":                 "database.port",
	"mongo_initdb_root_username": "database.username",
	"mongo_initdb_root_password": "database.password",
	"mongo_content_database":     "database.content_database",
	"mongo_telemetry_database":   "database.telemetry_database",
	"mongo_telemetry_collection": "database.telemetry_collection",
	"mongo_connect_timeout":      "database.connect_timeout",

	// Seeding
	"seed_enabled":       "seed.enabled",
	"json_placeholder":   "seed.base_url",
	"seed_fetch_timeout": "seed.fetch_timeout",
	"seed_fetch_rate":    "seed.fetch_rate",
	"csv_data_path":      "seed.csv_dir",
	"seed_batch_size":    "seed.batch_size",

	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// API
	"timeseries_default_limit": "api.timeseries_default_limit",
	"timeseries_max_limit":     "api.timeseries_max_limit",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped keys return "" so unrelated variables never reach the config.
//
// Examples:
//   - MONGO_URI -> database.uri
//   - JSON_PLACEHOLDER -> seed.base_url
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
