// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

package api

import (
	"net/http"

	"github.com/tomtom215/gustline/internal/database"
	"github.com/tomtom215/gustline/internal/models"
)

func pageInfo[T any](p *database.Page[T]) models.PageInfo {
	return models.PageInfo{
		NextCursor: p.NextCursor,
		HasMore:    p.HasMore,
		Count:      p.Count(),
	}
}

// ListUsers returns one page of users, newest first.
//
// @Summary List users
// @Description Keyset-paginated users ordered newest first. Pass next_cursor back as cursor for the following page.
// @Tags Content
// @Produce json
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size, clamped to [1,100]" default(20)
// @Success 200 {object} models.UsersResponse
// @Failure 400 {object} models.ErrorResponse "Malformed cursor or limit"
// @Failure 500 {object} models.ErrorResponse
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.store.ListUsers(r.Context(), req.Cursor, req.Limit)
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	respondJSON(w, http.StatusOK, models.UsersResponse{Users: page.Items, PageInfo: pageInfo(page)})
}

// GetUser returns a single user by id.
//
// @Summary Get user
// @Tags Content
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse "Non-numeric id"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "User not found")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// ListPosts returns one page of posts, optionally for a single author.
//
// @Summary List posts
// @Tags Content
// @Produce json
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size, clamped to [1,100]" default(20)
// @Param user_id query int false "Only posts by this user"
// @Success 200 {object} models.PostsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /posts [get]
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	userID, err := queryInt(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.store.ListPosts(r.Context(), userID, req.Cursor, req.Limit)
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	respondJSON(w, http.StatusOK, models.PostsResponse{Posts: page.Items, PageInfo: pageInfo(page)})
}

// GetPost returns a single post by id.
//
// @Summary Get post
// @Tags Content
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse "Non-numeric id"
// @Failure 404 {object} models.ErrorResponse "Post not found"
// @Router /posts/{id} [get]
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	post, err := h.store.GetPost(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Post not found")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// ListComments returns one page of comments, optionally for a single post.
//
// @Summary List comments
// @Tags Content
// @Produce json
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size, clamped to [1,100]" default(20)
// @Param post_id query int false "Only comments on this post"
// @Success 200 {object} models.CommentsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /comments [get]
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	postID, err := queryInt(r, "post_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.store.ListComments(r.Context(), postID, req.Cursor, req.Limit)
	if err != nil {
		respondStoreError(w, r, err, "")
		return
	}

	respondJSON(w, http.StatusOK, models.CommentsResponse{Comments: page.Items, PageInfo: pageInfo(page)})
}

// GetComment returns a single comment by id.
//
// @Summary Get comment
// @Tags Content
// @Produce json
// @Param id path int true "Comment id"
// @Success 200 {object} models.Comment
// @Failure 400 {object} models.ErrorResponse "Non-numeric id"
// @Failure 404 {object} models.ErrorResponse "Comment not found"
// @Router /comments/{id} [get]
func (h *Handler) GetComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	comment, err := h.store.GetComment(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "Comment not found")
		return
	}
	respondJSON(w, http.StatusOK, comment)
}
