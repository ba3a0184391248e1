// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apiclient is the HTTP client for the bet backend's REST API.

# Usage

	client := apiclient.NewClient("http://localhost:8080/api", installID)

	res, err := client.Login(ctx, models.LoginRequest{Email: "a@b.com", Password: "secret"})
	page, err := client.ListBets(ctx, res.Token, apiclient.ListQuery{Status: models.StatusOpen, Size: 12})

Every authenticated call takes the bearer token explicitly. Calls send
Authorization, X-Client-ID (the install id) and a fresh X-Request-ID.

# Endpoints

	POST   /auth/login          → Login
	POST   /auth/register       → Register
	GET    /auth/validate       → Validate
	GET    /bets                → ListBets (page envelope or bare array)
	POST   /bets                → CreateBet
	GET    /bets/{id}           → GetBet
	DELETE /bets/{id}           → DeleteBet
	POST   /bets/{id}/join      → Join
	GET    /bets/{id}/votes     → GetVotes
	POST   /bets/{id}/vote      → Vote
	GET    /bets/{id}/comments  → GetComments
	POST   /bets/{id}/comments  → AddComment
	POST   /bets/{id}/resolve   → Resolve
	POST   /bets/{id}/finish    → Finish

# Errors

  - *TransportError: no HTTP response (connection refused, DNS, ...)
  - *APIError: non-2xx; Error() is the backend "message" or "HTTP <status>"
  - ErrMalformedResponse (wrapped): a 2xx body that does not decode

IsAuthFailure(err) is true for 401/403 and for calls made without a token.
UserMessage(err) maps any of these to the text shown in the UI.

There are no retries and no client-side timeout.
*/
package apiclient
