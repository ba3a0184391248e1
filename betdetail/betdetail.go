// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package betdetail

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/danielhkuo/betboard/apiclient"
	"github.com/danielhkuo/betboard/models"
	"github.com/danielhkuo/betboard/notify"
)

var (
	ErrNoBet         = errors.New("no bet selected")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidWinner = errors.New("invalid winner")
	ErrEmptyComment  = errors.New("empty comment")
)

// API is the slice of the backend the detail page needs.
type API interface {
	GetBet(ctx context.Context, token string, id int64) (*models.Bet, error)
	GetVotes(ctx context.Context, token string, id int64) (*models.VoteTally, error)
	GetComments(ctx context.Context, token string, id int64) ([]models.Comment, error)
	Join(ctx context.Context, token string, id int64, role string) error
	Vote(ctx context.Context, token string, id int64, voteFor bool) error
	AddComment(ctx context.Context, token string, id int64, text string) error
	Resolve(ctx context.Context, token string, id int64, winner string) error
	Finish(ctx context.Context, token string, id int64) error
	DeleteBet(ctx context.Context, token string, id int64) error
}

// Session supplies the token and ends the session on auth failures.
type Session interface {
	Token() string
	Teardown(err error) bool
}

type State struct {
	BetID int64
	Bet   *models.Bet
	// Err replaces the whole view when the bet itself failed to load.
	Err string

	// Tally is nil when the votes panel failed to load.
	Tally       *models.VoteTally
	VotesFailed bool

	Comments       []models.Comment
	CommentsFailed bool
	CommentDraft   string

	// Deleted is set after a successful delete; the page should leave.
	Deleted bool
}

// Controller is safe for concurrent use. Its lock covers state only and is
// never held across a backend call. Actions name their bet explicitly, so
// a page load for another bet cannot redirect them.
type Controller struct {
	api      API
	session  Session
	notifier notify.Notifier

	mu    sync.Mutex
	state State
}

func New(api API, session Session, notifier notify.Notifier) *Controller {
	return &Controller{api: api, session: session, notifier: notifier}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LoadDetail fetches the bet, then its votes, then its comments, and
// replaces the view in one step. Only a failure on the bet itself is fatal
// to the page. When loads overlap, the last one to finish wins.
func (c *Controller) LoadDetail(ctx context.Context, betID int64) {
	next, ok := c.fetch(ctx, betID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !ok {
		c.state = State{BetID: betID}
		return
	}
	if c.state.BetID == betID {
		next.CommentDraft = c.state.CommentDraft
	}
	c.state = next
}

// fetch reports false when an auth failure ended the session midway.
func (c *Controller) fetch(ctx context.Context, betID int64) (State, bool) {
	next := State{BetID: betID}
	token := c.session.Token()

	bet, err := c.api.GetBet(ctx, token, betID)
	if err != nil {
		if c.session.Teardown(err) {
			return State{}, false
		}
		slog.Error("failed to load bet", "bet_id", betID, "error", err)
		next.Err = "Could not load this bet. " + apiclient.UserMessage(err)
		return next, true
	}
	next.Bet = bet

	tally, err := c.api.GetVotes(ctx, token, betID)
	if err != nil {
		if c.session.Teardown(err) {
			return State{}, false
		}
		slog.Warn("failed to load votes", "bet_id", betID, "error", err)
		next.VotesFailed = true
	} else {
		next.Tally = tally
	}

	comments, err := c.api.GetComments(ctx, token, betID)
	if err != nil {
		if c.session.Teardown(err) {
			return State{}, false
		}
		slog.Warn("failed to load comments", "bet_id", betID, "error", err)
		next.CommentsFailed = true
	} else {
		next.Comments = comments
	}
	return next, true
}

// Join takes the participant or observer seat.
func (c *Controller) Join(ctx context.Context, betID int64, role string) bool {
	role = strings.ToUpper(strings.TrimSpace(role))
	if role != models.RoleParticipant && role != models.RoleObserver {
		return c.reject(betID, ErrInvalidRole, "Unknown role.")
	}

	msg := "Joined as participant."
	if role == models.RoleObserver {
		msg = "Joined as observer."
	}
	return c.mutate(ctx, betID, "join", msg, func(token string) error {
		return c.api.Join(ctx, token, betID, role)
	})
}

// Vote records a vote for (true) or against (false) the bet.
func (c *Controller) Vote(ctx context.Context, betID int64, voteFor bool) bool {
	return c.mutate(ctx, betID, "vote", "Vote recorded.", func(token string) error {
		return c.api.Vote(ctx, token, betID, voteFor)
	})
}

// AddComment posts trimmed text. An empty comment never reaches the backend.
func (c *Controller) AddComment(ctx context.Context, betID int64, text string) bool {
	c.setDraft(betID, text)

	text = strings.TrimSpace(text)
	if text == "" {
		return c.reject(betID, ErrEmptyComment, "Please write a comment first.")
	}

	ok := c.mutate(ctx, betID, "comment", "Comment added.", func(token string) error {
		return c.api.AddComment(ctx, token, betID, text)
	})
	if ok {
		c.setDraft(betID, "")
	}
	return ok
}

// Resolve settles a conflict in favor of winner.
func (c *Controller) Resolve(ctx context.Context, betID int64, winner string) bool {
	winner = strings.ToLower(strings.TrimSpace(winner))
	if !slices.Contains(models.Winners, winner) {
		return c.reject(betID, ErrInvalidWinner, "Please pick a winner.")
	}
	return c.mutate(ctx, betID, "resolve", "Bet resolved.", func(token string) error {
		return c.api.Resolve(ctx, token, betID, winner)
	})
}

// Finish marks the bet finished.
func (c *Controller) Finish(ctx context.Context, betID int64) bool {
	return c.mutate(ctx, betID, "finish", "Bet marked as finished.", func(token string) error {
		return c.api.Finish(ctx, token, betID)
	})
}

// Delete removes the bet. On success nothing is reloaded; the state is
// flagged Deleted and the caller should leave the page.
func (c *Controller) Delete(ctx context.Context, betID int64) bool {
	if betID <= 0 {
		return c.reject(betID, ErrNoBet, "No bet selected.")
	}

	if err := c.api.DeleteBet(ctx, c.session.Token(), betID); err != nil {
		return c.fail("delete", betID, err)
	}

	slog.Info("bet deleted", "bet_id", betID)
	c.mu.Lock()
	c.state = State{BetID: betID, Deleted: true}
	c.mu.Unlock()

	notify.Success(c.notifier, "Bet deleted.")
	return true
}

// mutate runs one POST and reloads the whole view when it succeeds. A
// failure leaves the current view untouched.
func (c *Controller) mutate(ctx context.Context, betID int64, action, success string, post func(token string) error) bool {
	if betID <= 0 {
		return c.reject(betID, ErrNoBet, "No bet selected.")
	}

	if err := post(c.session.Token()); err != nil {
		return c.fail(action, betID, err)
	}

	slog.Info("bet updated", "action", action, "bet_id", betID)
	c.LoadDetail(ctx, betID)
	notify.Success(c.notifier, success)
	return true
}

// setDraft keeps typed comment text. Text for a bet other than the one
// on show replaces the view.
func (c *Controller) setDraft(betID int64, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.BetID != betID {
		c.state = State{BetID: betID}
	}
	c.state.CommentDraft = text
}

func (c *Controller) fail(action string, betID int64, err error) bool {
	if c.session.Teardown(err) {
		c.mu.Lock()
		c.state = State{BetID: betID}
		c.mu.Unlock()
		return false
	}
	slog.Warn("bet action failed", "action", action, "bet_id", betID, "error", err)
	notify.Error(c.notifier, apiclient.UserMessage(err))
	return false
}

func (c *Controller) reject(betID int64, err error, msg string) bool {
	slog.Debug("bet action rejected", "bet_id", betID, "error", err)
	notify.Error(c.notifier, msg)
	return false
}
