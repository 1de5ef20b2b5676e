// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package database

import (
	"slices"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestReportPipelinePagesUsersBeforeJoins(t *testing.T) {
	t.Parallel()

	p := reportPipeline(nil, 20, 10)
	want := []string{"$sort", "$skip", "$limit", "$lookup", "$lookup", "$project"}
	if got := stageNames(p); !slices.Equal(got, want) {
		t.Fatalf("stages = %v, want %v", got, want)
	}

	if got := p[1][0].Value; got != int64(20) {
		t.Errorf("$skip = %v, want 20", got)
	}
	if got := p[2][0].Value; got != int64(10) {
		t.Errorf("$limit = %v, want 10", got)
	}
}

func TestReportPipelineSingleUser(t *testing.T) {
	t.Parallel()

	p := reportPipeline(bson.D{{Key: "id", Value: 7}}, 0, 1)
	want := []string{"$match", "$sort", "$limit", "$lookup", "$lookup", "$project"}
	if got := stageNames(p); !slices.Equal(got, want) {
		t.Fatalf("stages = %v, want %v", got, want)
	}
	if got := field(t, stage(t, p, "$match"), "id"); got != 7 {
		t.Errorf("$match id = %v, want 7", got)
	}
}

func TestReportPipelineJoins(t *testing.T) {
	t.Parallel()

	p := reportPipeline(nil, 0, 0)
	var lookups []bson.D
	for _, s := range p {
		if s[0].Key == "$lookup" {
			lookups = append(lookups, s[0].Value.(bson.D))
		}
	}
	if len(lookups) != 2 {
		t.Fatalf("expected 2 lookups, got %d", len(lookups))
	}

	if got := field(t, lookups[0], "from"); got != PostsCollection {
		t.Errorf("first lookup from = %v, want %s", got, PostsCollection)
	}
	if got := field(t, lookups[0], "as"); got != "posts" {
		t.Errorf("first lookup as = %v, want posts", got)
	}

	// Comments are joined through the ids of the user's posts.
	if got := field(t, lookups[1], "from"); got != CommentsCollection {
		t.Errorf("second lookup from = %v, want %s", got, CommentsCollection)
	}
	let := field(t, lookups[1], "let").(bson.D)
	if got := field(t, let, "postIds"); got != "$posts.id" {
		t.Errorf("comments lookup let postIds = %v, want $posts.id", got)
	}
}

func TestReportPipelineCountsFromArrays(t *testing.T) {
	t.Parallel()

	project := stage(t, reportPipeline(nil, 0, 10), "$project")
	for key, array := range map[string]string{"posts_count": "$posts", "comments_count": "$comments"} {
		size, ok := field(t, project, key).(bson.D)
		if !ok || size[0].Key != "$size" || size[0].Value != array {
			t.Errorf("%s = %v, want {$size: %s}", key, size, array)
		}
	}
}
