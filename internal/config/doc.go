// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

/*
Package config loads and validates Gustline configuration.

Settings are layered with Koanf v2: struct defaults, an optional YAML file
(config.yaml, /etc/gustline/config.yaml or CONFIG_PATH) and environment
variables. A .env file in the working directory is read first so local
development can keep the same variable names as docker-compose.

# Environment Variables

MongoDB:
  - MONGO_URI: host name or full connection string (default: localhost)
  - MONGO_PORT: port appended to a bare host (default: 27017)
  - MONGO_INITDB_ROOT_USERNAME / MONGO_INITDB_ROOT_PASSWORD: credentials
  - MONGO_CONTENT_DATABASE: users/posts/comments database (default: users-demo)
  - MONGO_TELEMETRY_DATABASE: telemetry database (default: time-series-demo)
  - MONGO_TELEMETRY_COLLECTION: telemetry collection (default: time-series-data)

Seeding:
  - SEED_ENABLED: populate empty collections at startup (default: true)
  - JSON_PLACEHOLDER: base URL of the JSON source
  - CSV_DATA_PATH: directory of per-turbine CSV files (default: data/csv)
  - SEED_BATCH_SIZE: telemetry documents per bulk insert (default: 1000)

Server and security:
  - HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
