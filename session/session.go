// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/danielhkuo/betboard/apiclient"
	"github.com/danielhkuo/betboard/auth"
	"github.com/danielhkuo/betboard/models"
	"github.com/danielhkuo/betboard/notify"
)

// API is the slice of the backend the session needs.
type API interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Validate(ctx context.Context, token string) (*models.User, error)
}

// TokenStore persists the single cached token.
type TokenStore interface {
	Token() (string, error)
	SetToken(token string) error
	ClearToken() error
}

// Layout holds the visibility of the named view regions. It is only changed
// through the two transitions below, so Auth and Main are never both shown.
type Layout struct {
	Auth     bool
	Main     bool
	UserInfo bool
}

func unauthenticatedLayout() Layout {
	return Layout{Auth: true}
}

func authenticatedLayout() Layout {
	return Layout{Main: true, UserInfo: true}
}

// State is everything the session page regions render from.
type State struct {
	Session      models.Session
	Layout       Layout
	LoginForm    auth.LoginForm
	RegisterForm auth.RegisterForm
	RegisterOpen bool
}

// Controller is safe for concurrent use. Its lock covers state only and is
// never held across a backend call.
type Controller struct {
	api      API
	store    TokenStore
	notifier notify.Notifier

	mu    sync.Mutex
	state State
}

// New returns a controller in the logged-out layout.
func New(api API, store TokenStore, notifier notify.Notifier) *Controller {
	return &Controller{
		api:      api,
		store:    store,
		notifier: notifier,
		state:    State{Layout: unauthenticatedLayout()},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Token is the in-memory bearer token ("" when logged out).
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Session.Token
}

// User is the validated current user, nil when logged out.
func (c *Controller) User() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Session.User
}

func (c *Controller) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Session.Authenticated()
}

// RestoreSession validates the cached token. Any failure, including a
// transient one, counts as logged out: the token is cleared.
func (c *Controller) RestoreSession(ctx context.Context) bool {
	token, err := c.store.Token()
	if err != nil {
		slog.Error("failed to read cached token", "error", err)
		c.showLoggedOut()
		return false
	}
	if token == "" {
		c.showLoggedOut()
		return false
	}

	user, err := c.api.Validate(ctx, token)
	if err != nil {
		slog.Info("cached token rejected", "token", auth.MaskToken(token), "error", err)
		c.Logout()
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Session = models.Session{Token: token, User: user}
	c.showAuthenticated()
	return true
}

// Login posts the credentials. On failure the form keeps what was typed and
// a blocking notice carries the server's message.
func (c *Controller) Login(ctx context.Context, form auth.LoginForm) bool {
	c.mu.Lock()
	c.state.LoginForm = form
	c.mu.Unlock()

	form = form.Trimmed()
	if err := auth.ValidateForm(form); err != nil {
		notify.Alert(c.notifier, "Please enter your email and password.")
		return false
	}

	res, err := c.api.Login(ctx, models.LoginRequest{Email: form.Email, Password: form.Password})
	if err != nil {
		slog.Info("login failed", "email", auth.MaskEmail(form.Email), "error", err)
		notify.Alert(c.notifier, apiclient.UserMessage(err))
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.establish(res)
	c.state.LoginForm = auth.LoginForm{}
	slog.Info("logged in", "user_id", res.User.ID)
	return true
}

// Register creates an account; success logs the user in. Failure leaves
// the modal open with the fields intact.
func (c *Controller) Register(ctx context.Context, form auth.RegisterForm) bool {
	c.mu.Lock()
	c.state.RegisterOpen = true
	c.state.RegisterForm = form
	c.mu.Unlock()

	form = form.Trimmed()
	if err := auth.ValidateForm(form); err != nil {
		notify.Alert(c.notifier, "Please fill in all fields.")
		return false
	}

	res, err := c.api.Register(ctx, models.RegisterRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		slog.Info("registration failed", "email", auth.MaskEmail(form.Email), "error", err)
		notify.Alert(c.notifier, apiclient.UserMessage(err))
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.establish(res)
	c.state.RegisterOpen = false
	c.state.RegisterForm = auth.RegisterForm{}
	c.state.LoginForm = auth.LoginForm{}
	slog.Info("registered", "user_id", res.User.ID)
	return true
}

// Logout drops the session locally. It cannot fail.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearToken()
	c.showUnauthenticated()
}

func (c *Controller) showLoggedOut() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showUnauthenticated()
}

// Teardown ends the session if err is an authentication failure and
// reports whether it did.
func (c *Controller) Teardown(err error) bool {
	if !apiclient.IsAuthFailure(err) {
		return false
	}

	slog.Info("session rejected by backend", "error", err)
	c.Logout()
	notify.Alert(c.notifier, "Your session has expired. Please log in again.")
	return true
}

// The helpers below expect c.mu to be held.

func (c *Controller) establish(res *models.AuthResponse) {
	if err := c.store.SetToken(res.Token); err != nil {
		// the session still works for this run
		slog.Error("failed to cache token", "error", err)
	}
	c.state.Session = models.Session{Token: res.Token, User: res.User}
	c.showAuthenticated()
}

func (c *Controller) clearToken() {
	if err := c.store.ClearToken(); err != nil {
		slog.Error("failed to clear cached token", "error", err)
	}
}

func (c *Controller) showAuthenticated() {
	c.state.Layout = authenticatedLayout()
}

func (c *Controller) showUnauthenticated() {
	c.state.Session = models.Session{}
	c.state.Layout = unauthenticatedLayout()
}
