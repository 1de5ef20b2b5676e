// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/tomtom215/gustline/internal/models"
)

// ListUsers returns one page of users, newest first.
func (db *DB) ListUsers(ctx context.Context, cursor string, limit int) (*Page[models.User], error) {
	return paginate[models.User](ctx, db.collection(UsersCollection), bson.D{}, cursor, limit)
}

// ListPosts returns one page of posts, optionally restricted to one author.
func (db *DB) ListPosts(ctx context.Context, userID *int, cursor string, limit int) (*Page[models.Post], error) {
	filter := bson.D{}
	if userID != nil {
		filter = append(filter, bson.E{Key: "userId", Value: *userID})
	}
	return paginate[models.Post](ctx, db.collection(PostsCollection), filter, cursor, limit)
}

// ListComments returns one page of comments, optionally restricted to one post.
func (db *DB) ListComments(ctx context.Context, postID *int, cursor string, limit int) (*Page[models.Comment], error) {
	filter := bson.D{}
	if postID != nil {
		filter = append(filter, bson.E{Key: "postId", Value: *postID})
	}
	return paginate[models.Comment](ctx, db.collection(CommentsCollection), filter, cursor, limit)
}

// GetUser looks a user up by its domain id.
func (db *DB) GetUser(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	if err := db.findByID(ctx, UsersCollection, id, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetPost looks a post up by its domain id.
func (db *DB) GetPost(ctx context.Context, id int) (*models.Post, error) {
	var p models.Post
	if err := db.findByID(ctx, PostsCollection, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetComment looks a comment up by its domain id.
func (db *DB) GetComment(ctx context.Context, id int) (*models.Comment, error) {
	var c models.Comment
	if err := db.findByID(ctx, CommentsCollection, id, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// findByID decodes the document whose "id" field equals id. The storage
// _id is never used here; URLs carry the domain id.
func (db *DB) findByID(ctx context.Context, collection string, id int, out any) (err error) {
	start := time.Now()
	defer func() { observe("find_one", collection, start, err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	err = db.collection(collection).FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to find %s %d: %w", collection, id, err)
	}
	return nil
}
