// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db holds the client's local persistent state.

# Opening

Open selects the driver from the database type:

	conn, err := db.Open("sqlite", "file:betboard.db")   // modernc.org/sqlite
	conn, err := db.Open("postgres", "postgres://...")   // github.com/lib/pq

# Schema Creation

CreateSchema initializes the single table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - client_state: key/value pairs with an updated_at timestamp

# Token Store

TokenStore keeps exactly one bearer token under the fixed key "authToken":

	store := db.NewTokenStore(conn)
	token, err := store.Token()   // "" when logged out
	err = store.SetToken("t1")
	err = store.ClearToken()

It also keeps a random install id ("installId"), created on first use, which
the API client sends as X-Client-ID.
*/
package db
