// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions for the
local UI server.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start at debug level and completion (status, duration_ms) at
info level.

# Same-Origin Guard

The UI is served on loopback but any page the user visits could still post
a form to it. SameOrigin rejects non-GET requests whose Origin or Referer
names another host:

	server := http.Server{
		Handler: middleware.SameOrigin(mux),
	}

# Forms and Redirects

Parse a form body with a size cap, then redirect with 303 See Other:

	if err := middleware.ParseForm(w, r); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}
	middleware.Redirect(w, r, "/")

# JSON Helpers

Used for the few non-HTML responses (bad ids, render failures):

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
*/
package middleware
