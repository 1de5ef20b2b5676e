// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

//go:build integration

package testinfra

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// MockSeedSource serves canned JSON arrays at /users, /posts and /comments
// and records which resources were requested.
type MockSeedSource struct {
	Server *httptest.Server

	mu        sync.Mutex
	resources map[string]string
	requests  []string
}

// NewMockSeedSource starts a seed source. resources maps a resource name
// ("users") to the JSON body served for it; unknown names return 404.
func NewMockSeedSource(t *testing.T, resources map[string]string) *MockSeedSource {
	t.Helper()

	m := &MockSeedSource{resources: resources}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.Trim(r.URL.Path, "/")

		m.mu.Lock()
		m.requests = append(m.requests, name)
		body, ok := m.resources[name]
		m.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body)) //nolint:errcheck
	}))
	t.Cleanup(m.Server.Close)

	return m
}

// URL returns the server base URL.
func (m *MockSeedSource) URL() string {
	return m.Server.URL
}

// Requests returns the resource names requested so far, in order.
func (m *MockSeedSource) Requests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.requests))
	copy(out, m.requests)
	return out
}

// SampleContent is a small consistent dataset: two users, three posts by
// user 1, and three comments across those posts.
var SampleContent = map[string]string{
	"users": `[
		{"id": 1, "name": "Leanne Graham", "username": "Bret", "email": "Sincere@april.biz",
		 "address": {"street": "Kulas Light", "suite": "Apt. 556", "city": "Gwenborough", "zipcode": "92998-3874",
		             "geo": {"lat": "-37.3159", "lng": "81.1496"}},
		 "phone": "1-770-736-8031 x56442", "website": "hildegard.org",
		 "company": {"name": "Romaguera-Crona", "catchPhrase": "Multi-layered client-server neural-net", "bs": "harness real-time e-markets"}},
		{"id": 2, "name": "Ervin Howell", "username": "Antonette", "email": "Shanna@melissa.tv"}
	]`,
	"posts": `[
		{"id": 1, "userId": 1, "title": "sunt aut facere", "body": "quia et suscipit"},
		{"id": 2, "userId": 1, "title": "qui est esse", "body": "est rerum tempore"},
		{"id": 3, "userId": 1, "title": "ea molestias", "body": "et iusto sed"}
	]`,
	"comments": `[
		{"id": 1, "postId": 1, "name": "id labore", "email": "Eliseo@gardner.biz", "body": "laudantium"},
		{"id": 2, "postId": 1, "name": "quo vero", "email": "Jayne_Kuhic@sydney.com", "body": "est natus"},
		{"id": 3, "postId": 2, "name": "odio adipisci", "email": "Nikita@garfield.biz", "body": "quia molestiae"}
	]`,
}
