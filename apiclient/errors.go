// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielhkuo/betboard/auth"
	"github.com/danielhkuo/betboard/models"
)

// ErrMalformedResponse is returned when a 2xx body cannot be decoded into
// the expected shape.
var ErrMalformedResponse = errors.New("malformed response")

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	// Message is the backend's "message" field; empty when the body was not
	// JSON or carried no message.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAuthFailure reports whether err means the session is no longer valid:
// a 401/403 from the backend, or no token to send at all.
func IsAuthFailure(err error) bool {
	if errors.Is(err, auth.ErrMissingToken) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// UserMessage turns err into the text shown to the user.
func UserMessage(err error) string {
	var apiErr *APIError
	var netErr *TransportError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.As(err, &netErr):
		return "Could not reach the server. Check your connection and try again."
	case errors.Is(err, ErrMalformedResponse):
		return "Unexpected response from the server."
	default:
		return err.Error()
	}
}

// parseAPIError builds an APIError from a non-2xx status and body.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var errBody models.ErrorResponse
	if err := json.Unmarshal(body, &errBody); err == nil {
		apiErr.Message = errBody.Message
	}
	return apiErr
}
