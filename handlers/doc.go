// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers of the local UI.

# App

App owns one session, one list and one detail controller, and a notice
queue shared by all three. Handlers run concurrently. Each controller
guards its own state and releases its lock for every backend call, so a
hung request never holds up another page:

	app, err := handlers.NewApp(client, store, cfg)

# Page Loads

GET handlers validate the cached token first (as a fresh page load would),
then drive the page controller and render:

	GET /           → Index (list, or login form when logged out)
	GET /bets/{id}  → Detail

Notices queued since the last render are drained into the page.

# Actions

POST handlers parse the form, run one controller operation and answer with
303 See Other:

	POST /login, /register, /logout → back to /
	POST /bets                      → back to the current list page
	POST /bets/{id}/...             → back to the bet, or to / after a
	                                  delete or an expired session
*/
package handlers
