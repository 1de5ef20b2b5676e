// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

/*
Package metrics provides Prometheus metrics for the API, MongoDB access and
startup seeding.

Metrics are registered on the default registry and exposed at /metrics.

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

MongoDB:
  - mongo_operation_duration_seconds{operation, collection}
  - mongo_operation_errors_total{operation, collection, error_type}

Seeding:
  - seed_duration_seconds{collection}
  - seed_records_inserted_total{collection}
  - seed_records_skipped_total{collection}
  - seed_errors_total{collection, error_type}

Circuit Breaker (seed source):
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}
*/
package metrics
