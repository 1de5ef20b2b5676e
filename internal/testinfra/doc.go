// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to run a real MongoDB for storage and
// seeding tests. All files carry the integration build tag:
//
//	go test -tags integration ./internal/...
//
// # MongoDB Container
//
//	func TestReports(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    mongo, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, mongo)
//	    // connect with mongo.URI
//	}
//
// # Seed Source
//
// MockSeedSource is an httptest server standing in for the remote JSON
// source. SampleContent holds a small consistent dataset for it.
//
// Tests are skipped gracefully if Docker is unavailable.
package testinfra
