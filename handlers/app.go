// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/betboard/apiclient"
	"github.com/danielhkuo/betboard/betdetail"
	"github.com/danielhkuo/betboard/betlist"
	"github.com/danielhkuo/betboard/cliparse"
	"github.com/danielhkuo/betboard/middleware"
	"github.com/danielhkuo/betboard/notify"
	"github.com/danielhkuo/betboard/session"
	"github.com/danielhkuo/betboard/view"
)

// App owns the three page controllers. Handlers run concurrently: each
// controller locks its own state and never holds the lock across a backend
// call, so a slow request does not hold up the others.
type App struct {
	renderer *view.Renderer
	notices  *notify.Queue
	sess     *session.Controller
	list     *betlist.Controller
	detail   *betdetail.Controller
}

func NewApp(api *apiclient.Client, store session.TokenStore, cfg cliparse.Config) (*App, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	notices := &notify.Queue{}
	sess := session.New(api, store, notices)

	return &App{
		renderer: renderer,
		notices:  notices,
		sess:     sess,
		list:     betlist.New(api, sess, notices, cfg.PageSize),
		detail:   betdetail.New(api, sess, notices),
	}, nil
}

// restore validates the cached token, as every page load does. Logged out,
// the list forgets its data.
func (a *App) restore(ctx context.Context) bool {
	if a.sess.RestoreSession(ctx) {
		return true
	}
	a.list.Reset()
	return false
}

// requireSession is for actions: the in-memory session is reused when
// present, otherwise the cached token is validated.
func (a *App) requireSession(ctx context.Context) bool {
	return a.sess.Authenticated() || a.restore(ctx)
}

func (a *App) render(w http.ResponseWriter, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := a.renderer.Render(w, page, data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
	}
}

func betID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid bet id")
		return 0, false
	}
	return id, true
}

func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := middleware.ParseForm(w, r); err != nil {
		slog.Warn("failed to parse form", "path", r.URL.Path, "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return false
	}
	return true
}
