// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielhkuo/betboard/apiclient"
	"github.com/danielhkuo/betboard/auth"
	"github.com/danielhkuo/betboard/models"
	"github.com/danielhkuo/betboard/testutil"
)

func TestHeaders(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.JSON("GET", "/bets/3", http.StatusOK, testutil.TestBet(3, "OPEN", nil))
	client := backend.Client()

	if _, err := client.GetBet(context.Background(), "t1", 3); err != nil {
		t.Fatal(err)
	}
	if _, err := client.GetBet(context.Background(), "t1", 3); err != nil {
		t.Fatal(err)
	}

	reqs := backend.Requests("GET", "/bets/3")
	h := reqs[0].Header
	if got := h.Get("Authorization"); got != "Bearer t1" {
		t.Errorf("Expected bearer header, got %q", got)
	}
	if got := h.Get("X-Client-ID"); got != "test-install" {
		t.Errorf("Expected client id header, got %q", got)
	}
	if h.Get("X-Request-ID") == "" || h.Get("X-Request-ID") == reqs[1].Header.Get("X-Request-ID") {
		t.Error("Expected a fresh request id per call")
	}
	if got := h.Get("Accept"); got != "application/json" {
		t.Errorf("Expected JSON accept header, got %q", got)
	}
}

func TestAnonymousCallsSkipAuthorization(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.JSON("POST", "/auth/login", http.StatusOK, models.AuthResponse{Token: "t1", User: testutil.TestUser(1, "Ann")})

	res, err := backend.Client().Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Token != "t1" || res.User.ID != 1 {
		t.Errorf("Unexpected auth response %+v", res)
	}

	req := backend.Requests("POST", "/auth/login")[0]
	if req.Header.Get("Authorization") != "" {
		t.Error("Expected no Authorization header on login")
	}
	if req.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Expected JSON body, got %q", req.Header.Get("Content-Type"))
	}
}

func TestMissingToken(t *testing.T) {
	backend := testutil.NewBackend(t)

	_, err := backend.Client().ListBets(context.Background(), "", apiclient.ListQuery{})
	if !errors.Is(err, auth.ErrMissingToken) {
		t.Errorf("Expected ErrMissingToken, got %v", err)
	}
	if !apiclient.IsAuthFailure(err) {
		t.Error("Expected a missing token to count as an auth failure")
	}
	if len(backend.Paths()) != 0 {
		t.Error("Expected no request without a token")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMessage string
		wantAuth    bool
	}{
		{"json message", http.StatusBadRequest, "application/json", `{"error":"Bad Request","message":"Title is required"}`, "Title is required", false},
		{"non-json body", http.StatusBadGateway, "text/html", "<html>bad gateway</html>", "HTTP 502", false},
		{"json without message", http.StatusNotFound, "application/json", `{"error":"Not Found"}`, "HTTP 404", false},
		{"unauthorized", http.StatusUnauthorized, "application/json", `{"message":"Token expired"}`, "Token expired", true},
		{"forbidden", http.StatusForbidden, "text/plain", "", "HTTP 403", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			backend := testutil.NewBackend(t)
			backend.Raw("POST", "/bets/1/finish", tc.status, tc.contentType, tc.body)

			err := backend.Client().Finish(context.Background(), "t1", 1)

			var apiErr *apiclient.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Expected *APIError, got %T: %v", err, err)
			}
			if apiErr.StatusCode != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, apiErr.StatusCode)
			}
			if got := apiclient.UserMessage(err); got != tc.wantMessage {
				t.Errorf("Expected message %q, got %q", tc.wantMessage, got)
			}
			if got := apiclient.IsAuthFailure(err); got != tc.wantAuth {
				t.Errorf("Expected auth failure %v, got %v", tc.wantAuth, got)
			}
		})
	}
}

func TestTransportError(t *testing.T) {
	client := apiclient.NewClient("http://127.0.0.1:1/api", "")

	err := client.Finish(context.Background(), "t1", 1)

	var netErr *apiclient.TransportError
	if !errors.As(err, &netErr) {
		t.Fatalf("Expected *TransportError, got %T: %v", err, err)
	}
	if apiclient.IsAuthFailure(err) {
		t.Error("Network errors are not auth failures")
	}
	if got := apiclient.UserMessage(err); got != "Could not reach the server. Check your connection and try again." {
		t.Errorf("Unexpected message %q", got)
	}
}

func TestMalformedResponses(t *testing.T) {
	testCases := []struct {
		name string
		path string
		call func(c *apiclient.Client) error
		body string
	}{
		{
			name: "bet not json",
			path: "/bets/1",
			call: func(c *apiclient.Client) error {
				_, err := c.GetBet(context.Background(), "t1", 1)
				return err
			},
			body: "<html>",
		},
		{
			name: "empty votes",
			path: "/bets/1/votes",
			call: func(c *apiclient.Client) error {
				_, err := c.GetVotes(context.Background(), "t1", 1)
				return err
			},
			body: "",
		},
		{
			name: "validate without user",
			path: "/auth/validate",
			call: func(c *apiclient.Client) error {
				_, err := c.Validate(context.Background(), "t1")
				return err
			},
			body: "{}",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			backend := testutil.NewBackend(t)
			backend.Raw("GET", tc.path, http.StatusOK, "application/json", tc.body)

			err := tc.call(backend.Client())
			if !errors.Is(err, apiclient.ErrMalformedResponse) {
				t.Errorf("Expected ErrMalformedResponse, got %v", err)
			}
			if got := apiclient.UserMessage(err); got != "Unexpected response from the server." {
				t.Errorf("Unexpected message %q", got)
			}
		})
	}
}

func TestAuthResponseWithoutToken(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.JSON("POST", "/auth/register", http.StatusOK, map[string]any{"message": "registered"})

	_, err := backend.Client().Register(context.Background(), models.RegisterRequest{Email: "a@b.com"})
	if !errors.Is(err, apiclient.ErrMalformedResponse) {
		t.Errorf("Expected ErrMalformedResponse, got %v", err)
	}
}
