// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/betboard/apiclient"
	"github.com/danielhkuo/betboard/cliparse"
	"github.com/danielhkuo/betboard/handlers"
	"github.com/danielhkuo/betboard/middleware"
	"github.com/danielhkuo/betboard/session"
)

func NewRouter(api *apiclient.Client, store session.TokenStore, cfg cliparse.Config) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	app, err := handlers.NewApp(api, store, cfg)
	if err != nil {
		return nil, err
	}

	// Health check
	mux.HandleFunc("GET /health", handlers.Health)

	// Session
	mux.HandleFunc("POST /login", middleware.WithLogging(app.Login))
	mux.HandleFunc("POST /register", middleware.WithLogging(app.Register))
	mux.HandleFunc("POST /logout", middleware.WithLogging(app.Logout))

	// Bet list
	mux.HandleFunc("GET /{$}", middleware.WithLogging(app.Index))
	mux.HandleFunc("POST /bets", middleware.WithLogging(app.CreateBet))

	// Bet detail
	mux.HandleFunc("GET /bets/{id}", middleware.WithLogging(app.Detail))
	mux.HandleFunc("POST /bets/{id}/join", middleware.WithLogging(app.Join))
	mux.HandleFunc("POST /bets/{id}/vote", middleware.WithLogging(app.Vote))
	mux.HandleFunc("POST /bets/{id}/comments", middleware.WithLogging(app.AddComment))
	mux.HandleFunc("POST /bets/{id}/resolve", middleware.WithLogging(app.Resolve))
	mux.HandleFunc("POST /bets/{id}/finish", middleware.WithLogging(app.Finish))
	mux.HandleFunc("POST /bets/{id}/delete", middleware.WithLogging(app.Delete))

	return mux, nil
}
