// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/danielhkuo/betboard/apiclient"
	"github.com/danielhkuo/betboard/cliparse"
	"github.com/danielhkuo/betboard/db"
	"github.com/danielhkuo/betboard/models"
)

// SetupTestStore creates a fresh sqlite state database in a temp dir
func SetupTestStore(t *testing.T) *db.TokenStore {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, "file:"+filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db.NewTokenStore(conn)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3319,
		APIBaseURL:   "http://backend.invalid/api",
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  "file::memory:",
		PageSize:     12,
	}
}

// RecordedRequest is what the fake backend saw
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// DecodeBody unmarshals the recorded JSON body into v
func (r RecordedRequest) DecodeBody(t *testing.T, v any) {
	t.Helper()
	if err := json.Unmarshal(r.Body, v); err != nil {
		t.Fatalf("Failed to decode recorded body %q: %v", r.Body, err)
	}
}

// Backend is a scripted stand-in for the bet REST API.
// Unregistered routes answer 404 with a JSON message.
type Backend struct {
	Server *httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []RecordedRequest
}

// NewBackend starts a fake backend that is closed when the test ends
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{routes: make(map[string]http.HandlerFunc)}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Server.Close)
	return b
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api")

	b.mu.Lock()
	b.requests = append(b.requests, RecordedRequest{
		Method: r.Method,
		Path:   path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	h, ok := b.routes[r.Method+" "+path]
	b.mu.Unlock()

	if !ok {
		WriteJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Not Found", Message: "no route " + path})
		return
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	h(w, r)
}

// Handle registers (or replaces) the handler for method and path.
// Paths are relative to the /api prefix, e.g. "/bets/7/votes".
func (b *Backend) Handle(method, path string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" "+path] = h
}

// JSON registers a handler that always answers status with body
func (b *Backend) JSON(method, path string, status int, body any) {
	b.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

// Raw registers a handler that always answers status with a raw body
func (b *Backend) Raw(method, path string, status int, contentType, body string) {
	b.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

// Requests returns every recorded request for method and path
func (b *Backend) Requests(method, path string) []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []RecordedRequest
	for _, r := range b.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Calls counts recorded requests for method and path
func (b *Backend) Calls(method, path string) int {
	return len(b.Requests(method, path))
}

// Paths lists "METHOD /path" for every request in order
func (b *Backend) Paths() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, 0, len(b.requests))
	for _, r := range b.requests {
		out = append(out, r.Method+" "+r.Path)
	}
	return out
}

// URL is the API base URL to hand to apiclient.NewClient
func (b *Backend) URL() string {
	return b.Server.URL + "/api"
}

// Client returns an API client pointed at the fake backend
func (b *Backend) Client() *apiclient.Client {
	return apiclient.NewClient(b.URL(), "test-install").WithHTTPClient(b.Server.Client())
}

// WriteJSON writes v as a JSON response
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Fixtures

// TestUser returns a user with predictable fields
func TestUser(id int64, first string) *models.User {
	return &models.User{
		ID:        id,
		Email:     strings.ToLower(first) + "@example.com",
		FirstName: first,
		LastName:  "Tester",
		Role:      "USER",
		IsActive:  true,
	}
}

// TestBet returns a bet as the backend would send it (upper-snake status)
func TestBet(id int64, status string, creator *models.User) map[string]any {
	return map[string]any{
		"id":          id,
		"title":       "Bet " + strings.ToLower(status),
		"description": "A test bet",
		"startDate":   "2025-06-01T12:00:00",
		"duration":    48,
		"status":      status,
		"creator":     creator,
		"participant": nil,
		"observer":    nil,
		"createdAt":   "2025-05-30T09:15:00",
		"shareUrl":    "/bet/" + strconv.FormatInt(id, 10),
	}
}
