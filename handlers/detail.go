// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielhkuo/betboard/middleware"
	"github.com/danielhkuo/betboard/notify"
	"github.com/danielhkuo/betboard/view"
)

// Detail handles GET /bets/{id}
func (a *App) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := betID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if !a.restore(ctx) {
		middleware.Redirect(w, r, "/")
		return
	}

	a.detail.LoadDetail(ctx, id)
	if !a.sess.Authenticated() {
		middleware.Redirect(w, r, "/")
		return
	}

	a.render(w, view.PageDetail, view.NewDetailPage(a.sess.State(), a.detail.State(), a.notices.Drain()))
}

// Join handles POST /bets/{id}/join
func (a *App) Join(w http.ResponseWriter, r *http.Request) {
	a.detailAction(w, r, func(ctx context.Context, id int64) bool {
		a.detail.Join(ctx, id, r.PostFormValue("role"))
		return false
	})
}

// Vote handles POST /bets/{id}/vote
func (a *App) Vote(w http.ResponseWriter, r *http.Request) {
	a.detailAction(w, r, func(ctx context.Context, id int64) bool {
		voteFor, err := strconv.ParseBool(r.PostFormValue("vote"))
		if err != nil {
			notify.Error(a.notices, "Please pick a side.")
			return false
		}
		a.detail.Vote(ctx, id, voteFor)
		return false
	})
}

// AddComment handles POST /bets/{id}/comments
func (a *App) AddComment(w http.ResponseWriter, r *http.Request) {
	a.detailAction(w, r, func(ctx context.Context, id int64) bool {
		a.detail.AddComment(ctx, id, r.PostFormValue("text"))
		return false
	})
}

// Resolve handles POST /bets/{id}/resolve
func (a *App) Resolve(w http.ResponseWriter, r *http.Request) {
	a.detailAction(w, r, func(ctx context.Context, id int64) bool {
		a.detail.Resolve(ctx, id, r.PostFormValue("winner"))
		return false
	})
}

// Finish handles POST /bets/{id}/finish
func (a *App) Finish(w http.ResponseWriter, r *http.Request) {
	a.detailAction(w, r, func(ctx context.Context, id int64) bool {
		a.detail.Finish(ctx, id)
		return false
	})
}

// Delete handles POST /bets/{id}/delete
func (a *App) Delete(w http.ResponseWriter, r *http.Request) {
	a.detailAction(w, r, func(ctx context.Context, id int64) bool {
		return a.detail.Delete(ctx, id)
	})
}

// detailAction runs one bet action and sends the browser back to the bet,
// or to the list once the action reports the bet gone or the session has
// ended.
func (a *App) detailAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id int64) (gone bool)) {
	id, ok := betID(w, r)
	if !ok {
		return
	}
	if !parseForm(w, r) {
		return
	}

	ctx := r.Context()
	if !a.requireSession(ctx) {
		middleware.Redirect(w, r, "/")
		return
	}

	if action(ctx, id) || !a.sess.Authenticated() {
		middleware.Redirect(w, r, "/")
		return
	}
	middleware.Redirect(w, r, view.BetURL(id))
}
