// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package database

import (
	"slices"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// checkNoError fails the test if err is not nil
func checkNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// checkIntEqual checks that got equals want
func checkIntEqual(t *testing.T, fieldName string, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %d, got %d", fieldName, want, got)
	}
}

// stageNames returns the operator of each pipeline stage in order.
func stageNames(p mongo.Pipeline) []string {
	names := make([]string, 0, len(p))
	for _, stage := range p {
		if len(stage) > 0 {
			names = append(names, stage[0].Key)
		}
	}
	return names
}

// stage returns the body of the first stage with the given operator.
func stage(t *testing.T, p mongo.Pipeline, op string) bson.D {
	t.Helper()
	i := slices.Index(stageNames(p), op)
	if i < 0 {
		t.Fatalf("pipeline has no %s stage: %v", op, stageNames(p))
	}
	body, ok := p[i][0].Value.(bson.D)
	if !ok {
		t.Fatalf("%s stage body is %T, want bson.D", op, p[i][0].Value)
	}
	return body
}

// field returns the value of key in d.
func field(t *testing.T, d bson.D, key string) any {
	t.Helper()
	for _, e := range d {
		if e.Key == key {
			return e.Value
		}
	}
	t.Fatalf("key %q not found in %v", key, d)
	return nil
}
