// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/betboard/betlist"
	"github.com/danielhkuo/betboard/middleware"
	"github.com/danielhkuo/betboard/view"
)

// Index handles GET /
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.restore(ctx) {
		q := r.URL.Query()
		page, _ := strconv.Atoi(q.Get("page"))
		a.list.Navigate(betlist.Filter{
			Status: betlist.ParseStatusFilter(q.Get("status")),
			Search: q.Get("search"),
		}, page)
		a.list.LoadBets(ctx)
	}

	a.render(w, view.PageIndex, view.NewIndexPage(a.sess.State(), a.list.State(), a.notices.Drain()))
}

// CreateBet handles POST /bets
func (a *App) CreateBet(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	ctx := r.Context()
	if !a.requireSession(ctx) {
		middleware.Redirect(w, r, "/")
		return
	}

	a.list.CreateBet(ctx, betlist.CreateForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		StartDate:   r.PostFormValue("startDate"),
		Duration:    r.PostFormValue("duration"),
	})

	st := a.list.State()
	middleware.Redirect(w, r, view.ListURL(st.Filter, st.Page))
}
