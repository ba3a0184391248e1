// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Betboard client.

Betboard is a local web client for a peer-to-peer bet tracker: users log in,
create bets with a title, description, start date and duration, join as
participant or observer, vote, comment and resolve conflicts. All business
rules live in the backend REST API; this program renders pages on loopback
and forwards each action to the backend.

# Starting the Client

	go run . -api https://bets.example.com/api

Then open http://127.0.0.1:3319 in a browser.

# Configuration

All settings are optional:

  - PORT (-p): local UI port (default: 3319)
  - API_BASE_URL (-api): backend base URL (default: http://localhost:8080/api)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): state store location (default: file:betboard.db)
  - PAGE_SIZE (-size): bets per list page (default: 12)
  - LOG_LEVEL: set to debug for per-request API logs

A .env file in the working directory is read on startup.

# Architecture

  - session, betlist, betdetail: page controllers holding explicit state
  - view: affordance predicates, formatting, embedded HTML templates
  - apiclient: REST client and error taxonomy
  - handlers: drives the controllers from concurrent requests
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, same-origin guard, form and JSON helpers
  - db: token and install id persistence (sqlite or postgres)
  - auth, notify, models, cliparse: supporting types

See package documentation for each component.
*/
package main
