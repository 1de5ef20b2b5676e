// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package models

// PageInfo is the cursor state shared by every paginated listing. It is
// embedded so its fields sit next to the item array in the JSON body:
//
//	{"users": [...], "next_cursor": "665f...", "has_more": true, "count": 20}
type PageInfo struct {
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
	Count      int     `json:"count"`
}

// UsersResponse is the body of GET /users.
type UsersResponse struct {
	Users []User `json:"users"`
	PageInfo
}

// PostsResponse is the body of GET /posts.
type PostsResponse struct {
	Posts []Post `json:"posts"`
	PageInfo
}

// CommentsResponse is the body of GET /comments.
type CommentsResponse struct {
	Comments []Comment `json:"comments"`
	PageInfo
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is returned by the root endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthStatus reports process and database state.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	Uptime            float64 `json:"uptime_seconds"`
}
