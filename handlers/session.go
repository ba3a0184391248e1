// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/betboard/auth"
	"github.com/danielhkuo/betboard/middleware"
)

// Login handles POST /login
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	a.sess.Login(r.Context(), auth.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	})
	middleware.Redirect(w, r, "/")
}

// Register handles POST /register
func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	a.sess.Register(r.Context(), auth.RegisterForm{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
		Password:  r.PostFormValue("password"),
	})
	middleware.Redirect(w, r, "/")
}

// Logout handles POST /logout
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	a.sess.Logout()
	a.list.Reset()
	middleware.Redirect(w, r, "/")
}
