// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tomtom215/gustline/internal/models"
)

// DefaultReportLimit is the number of users summarized per report page.
const DefaultReportLimit = 10

// reportPipeline joins users to their posts and to the comments on those
// posts. Skip and limit are applied to users before either join, so they
// bound the number of reports and never the contents of one. A limit of 0
// disables paging.
//
// posts_count and comments_count are the sizes of the full joined arrays.
func reportPipeline(match bson.D, skip, limit int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "id", Value: 1}}}})
	if skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	postsLookup := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: PostsCollection},
		{Key: "let", Value: bson.D{{Key: "userId", Value: "$id"}}},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
				{Key: "$eq", Value: bson.A{"$userId", "$$userId"}},
			}}}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: "id", Value: 1}}}},
			bson.D{{Key: "$project", Value: bson.D{
				{Key: "_id", Value: 0},
				{Key: "id", Value: 1},
				{Key: "title", Value: 1},
				{Key: "body", Value: 1},
			}}},
		}},
		{Key: "as", Value: "posts"},
	}}}

	commentsLookup := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: CommentsCollection},
		{Key: "let", Value: bson.D{{Key: "postIds", Value: "$posts.id"}}},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
				{Key: "$in", Value: bson.A{"$postId", "$$postIds"}},
			}}}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: "id", Value: 1}}}},
			bson.D{{Key: "$project", Value: bson.D{
				{Key: "_id", Value: 0},
				{Key: "id", Value: 1},
				{Key: "postId", Value: 1},
				{Key: "name", Value: 1},
				{Key: "email", Value: 1},
				{Key: "body", Value: 1},
			}}},
		}},
		{Key: "as", Value: "comments"},
	}}}

	project := bson.D{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 0},
		{Key: "id", Value: 1},
		{Key: "name", Value: 1},
		{Key: "username", Value: 1},
		{Key: "posts", Value: 1},
		{Key: "comments", Value: 1},
		{Key: "posts_count", Value: bson.D{{Key: "$size", Value: "$posts"}}},
		{Key: "comments_count", Value: bson.D{{Key: "$size", Value: "$comments"}}},
	}}}

	return append(pipeline, postsLookup, commentsLookup, project)
}

// ListReports summarizes one page of users ordered by domain id. page is
// 1-based; limit is clamped to [1, MaxPageLimit].
func (db *DB) ListReports(ctx context.Context, page, limit int) ([]models.UserReport, error) {
	if page < 1 {
		page = 1
	}
	limit = ClampLimit(limit)
	skip := int64(page-1) * int64(limit)
	return db.aggregateReports(ctx, reportPipeline(nil, skip, int64(limit)))
}

// ReportFor summarizes a single user. A user with no posts yields a report
// with zero counts; an unknown user yields ErrNotFound.
func (db *DB) ReportFor(ctx context.Context, userID int) (*models.UserReport, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	filter := bson.D{{Key: "id", Value: userID}}

	start := time.Now()
	n, err := db.collection(UsersCollection).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	observe("count", UsersCollection, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to check user %d: %w", userID, err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	reports, err := db.aggregateReports(ctx, reportPipeline(filter, 0, 1))
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		// Deleted between the existence check and the join.
		return nil, ErrNotFound
	}
	return &reports[0], nil
}

func (db *DB) aggregateReports(ctx context.Context, pipeline mongo.Pipeline) (reports []models.UserReport, err error) {
	start := time.Now()
	defer func() { observe("aggregate", UsersCollection, start, err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	cur, err := db.collection(UsersCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reports: %w", err)
	}

	// All closes the cursor.
	reports = []models.UserReport{}
	if err := cur.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}
	for i := range reports {
		reports[i].Normalize()
	}
	return reports, nil
}
