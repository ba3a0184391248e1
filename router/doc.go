// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the routes of the local UI server.

# Route Registration

NewRouter builds the page controllers and registers every route:

	mux, err := router.NewRouter(client, store, cfg)

# Endpoints

Health:

	GET /health

Session:

	POST /login    - Log in
	POST /register - Create an account and log in
	POST /logout   - Log out (local only)

Bet list:

	GET  /      - List page (?status=&search=&page=)
	POST /bets  - Create a bet

Bet detail:

	GET  /bets/{id}          - Detail page
	POST /bets/{id}/join     - Join as participant or observer
	POST /bets/{id}/vote     - Vote for or against
	POST /bets/{id}/comments - Add a comment
	POST /bets/{id}/resolve  - Resolve a conflict (creator)
	POST /bets/{id}/finish   - Mark finished (creator)
	POST /bets/{id}/delete   - Delete (creator)

Every POST answers 303 See Other so a reload never repeats the action.

# Handler Initialization

All page routes share one handlers.App:

	app, err := handlers.NewApp(client, store, cfg)
*/
package router
