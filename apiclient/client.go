// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/betboard/auth"
)

// Client talks to the bet backend. It never retries and sets no timeout of
// its own; callers bound requests through the context.
type Client struct {
	baseURL  string
	clientID string
	http     *http.Client
}

// NewClient creates a client for baseURL (e.g. http://localhost:8080/api).
// clientID is sent as X-Client-ID when non-empty.
func NewClient(baseURL, clientID string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		http:     &http.Client{},
	}
}

// WithHTTPClient swaps the underlying http.Client (tests use the one from
// httptest.Server).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// call is one backend request. Anonymous calls carry no Authorization
// header; every other call requires a token.
type call struct {
	method    string
	path      string
	query     url.Values
	token     string
	anonymous bool
	body      any
	out       any
}

func (c *Client) do(ctx context.Context, cl call) error {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !cl.anonymous {
		header, err := auth.BearerHeader(cl.token)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", header)
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-ID", c.clientID)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		slog.Warn("api request failed",
			"method", cl.method,
			"path", cl.path,
			"request_id", requestID,
			"error", err,
		)
		return &TransportError{Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	slog.Debug("api request completed",
		"method", cl.method,
		"path", cl.path,
		"status", res.StatusCode,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return parseAPIError(res.StatusCode, data)
	}

	if cl.out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%s %s: empty body: %w", cl.method, cl.path, ErrMalformedResponse)
	}
	if err := json.Unmarshal(data, cl.out); err != nil {
		return fmt.Errorf("%s %s: %v: %w", cl.method, cl.path, err, ErrMalformedResponse)
	}
	return nil
}
