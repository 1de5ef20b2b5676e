// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package models

// UserReport summarizes one user with every post they wrote and every
// comment left on those posts. It is derived at query time, never stored.
//
// PostsCount and CommentsCount are always the lengths of Posts and Comments.
//
// Example:
//
//	{
//	  "id": 1,
//	  "name": "Leanne Graham",
//	  "username": "Bret",
//	  "posts": [{"id": 1, "title": "...", "body": "..."}],
//	  "comments": [{"id": 1, "postId": 1, "name": "...", "email": "...", "body": "..."}],
//	  "posts_count": 1,
//	  "comments_count": 1
//	}
type UserReport struct {
	ID            int              `json:"id" bson:"id"`
	Name          string           `json:"name" bson:"name"`
	Username      string           `json:"username" bson:"username"`
	Posts         []PostSummary    `json:"posts" bson:"posts"`
	Comments      []CommentSummary `json:"comments" bson:"comments"`
	PostsCount    int              `json:"posts_count" bson:"posts_count"`
	CommentsCount int              `json:"comments_count" bson:"comments_count"`
}

// PostSummary is the subset of a Post embedded in a report.
type PostSummary struct {
	ID    int    `json:"id" bson:"id"`
	Title string `json:"title" bson:"title"`
	Body  string `json:"body" bson:"body"`
}

// CommentSummary is the subset of a Comment embedded in a report.
type CommentSummary struct {
	ID     int    `json:"id" bson:"id"`
	PostID int    `json:"postId" bson:"postId"`
	Name   string `json:"name" bson:"name"`
	Email  string `json:"email" bson:"email"`
	Body   string `json:"body" bson:"body"`
}

// Normalize replaces nil slices with empty ones so they encode as [] and
// makes the counts agree with the slices.
func (r *UserReport) Normalize() {
	if r.Posts == nil {
		r.Posts = []PostSummary{}
	}
	if r.Comments == nil {
		r.Comments = []CommentSummary{}
	}
	r.PostsCount = len(r.Posts)
	r.CommentsCount = len(r.Comments)
}
