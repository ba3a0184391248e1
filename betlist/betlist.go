// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package betlist

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/betboard/apiclient"
	"github.com/danielhkuo/betboard/auth"
	"github.com/danielhkuo/betboard/models"
	"github.com/danielhkuo/betboard/notify"
)

// API is the slice of the backend the list needs.
type API interface {
	ListBets(ctx context.Context, token string, q apiclient.ListQuery) (*models.BetPage, error)
	CreateBet(ctx context.Context, token string, req models.CreateBetRequest) (*models.Bet, error)
}

// Session supplies the token and ends the session on auth failures.
type Session interface {
	Token() string
	Teardown(err error) bool
}

// Filter narrows the list. An empty Status means every status.
type Filter struct {
	Status models.Status
	Search string
}

// CreateForm holds the creation fields as typed. Duration stays a string
// so a bad value can be shown back to the user.
type CreateForm struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	StartDate   string `validate:"required"`
	Duration    string `validate:"required"`
}

func (f CreateForm) trimmed() CreateForm {
	return CreateForm{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		StartDate:   strings.TrimSpace(f.StartDate),
		Duration:    strings.TrimSpace(f.Duration),
	}
}

type State struct {
	Filter   Filter
	Page     int
	PageSize int

	Bets          []models.Bet
	TotalPages    int
	TotalElements int
	// Loaded is set once a fetch has finished, successfully or not.
	Loaded bool
	// Err replaces the list with an error placeholder when non-empty.
	Err string

	CreateOpen bool
	CreateForm CreateForm
}

// Empty reports whether the "no bets found" placeholder applies.
func (s State) Empty() bool {
	return s.Loaded && s.Err == "" && len(s.Bets) == 0
}

// HasPrev and HasNext drive the pager.
func (s State) HasPrev() bool {
	return s.Page > 0
}

func (s State) HasNext() bool {
	return s.Page+1 < s.TotalPages
}

// Controller is safe for concurrent use. Its lock covers state only and is
// never held across a backend call.
type Controller struct {
	api      API
	session  Session
	notifier notify.Notifier

	mu    sync.Mutex
	state State
}

func New(api API, session Session, notifier notify.Notifier, pageSize int) *Controller {
	return &Controller{
		api:      api,
		session:  session,
		notifier: notifier,
		state:    State{PageSize: pageSize},
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetFilter changes the filter and always goes back to the first page.
func (c *Controller) SetFilter(f Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setFilter(f)
}

// SetPage moves the cursor; negative pages clamp to zero.
func (c *Controller) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPage(page)
}

// Navigate applies a filter and page from a request. A changed filter wins
// over the page.
func (c *Controller) Navigate(f Filter, page int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f.Search = strings.TrimSpace(f.Search)
	if f != c.state.Filter {
		c.setFilter(f)
		return
	}
	c.setPage(page)
}

func (c *Controller) setFilter(f Filter) {
	f.Search = strings.TrimSpace(f.Search)
	c.state.Filter = f
	c.state.Page = 0
}

func (c *Controller) setPage(page int) {
	if page < 0 {
		page = 0
	}
	c.state.Page = page
}

// ParseStatusFilter turns a query value into a filter status. Empty and
// "all" mean no filter.
func ParseStatusFilter(raw string) models.Status {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return ""
	}
	return models.NormalizeStatus(raw)
}

// LoadBets fetches the current page and replaces the whole list. When
// loads overlap, the last response to arrive wins.
func (c *Controller) LoadBets(ctx context.Context) {
	c.mu.Lock()
	q := apiclient.ListQuery{
		Status: c.state.Filter.Status,
		Search: c.state.Filter.Search,
		Page:   c.state.Page,
		Size:   c.state.PageSize,
	}
	c.mu.Unlock()

	page, err := c.api.ListBets(ctx, c.session.Token(), q)
	if err != nil {
		if c.session.Teardown(err) {
			c.Reset()
			return
		}
		slog.Error("failed to load bets", "page", q.Page, "error", err)

		c.mu.Lock()
		defer c.mu.Unlock()
		c.clearData()
		c.state.Loaded = true
		c.state.Err = "Could not load bets. " + apiclient.UserMessage(err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Bets = page.Content
	c.state.TotalPages = page.TotalPages
	c.state.TotalElements = page.TotalElements
	c.state.Loaded = true
	c.state.Err = ""
}

// CreateBet posts a new bet and reloads the list. The new bet only shows
// up if it falls within the current filter and page.
func (c *Controller) CreateBet(ctx context.Context, form CreateForm) bool {
	c.mu.Lock()
	c.state.CreateOpen = true
	c.state.CreateForm = form
	c.mu.Unlock()

	form = form.trimmed()
	duration, err := strconv.Atoi(form.Duration)
	if auth.ValidateForm(form) != nil || err != nil || duration <= 0 {
		notify.Alert(c.notifier, "Please fill in all fields.")
		return false
	}

	_, err = c.api.CreateBet(ctx, c.session.Token(), models.CreateBetRequest{
		Title:       form.Title,
		Description: form.Description,
		StartDate:   normalizeStartDate(form.StartDate),
		Duration:    duration,
	})
	if err != nil {
		if c.session.Teardown(err) {
			c.Reset()
			return false
		}
		slog.Warn("failed to create bet", "title", form.Title, "error", err)
		notify.Alert(c.notifier, apiclient.UserMessage(err))
		return false
	}

	c.mu.Lock()
	c.closeCreate()
	c.mu.Unlock()

	notify.Success(c.notifier, "Bet created.")
	c.LoadBets(ctx)
	return true
}

// Reset drops everything tied to the logged-in user but keeps the filter.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearData()
	c.closeCreate()
}

// The helpers below expect c.mu to be held.

func (c *Controller) closeCreate() {
	c.state.CreateOpen = false
	c.state.CreateForm = CreateForm{}
}

func (c *Controller) clearData() {
	c.state.Bets = nil
	c.state.TotalPages = 0
	c.state.TotalElements = 0
	c.state.Loaded = false
	c.state.Err = ""
}

// Browsers submit datetime-local values without seconds.
const datetimeLocal = "2006-01-02T15:04"

func normalizeStartDate(s string) string {
	t, err := time.Parse(datetimeLocal, s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02T15:04:05")
}
