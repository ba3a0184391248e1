// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/danielhkuo/betboard/models"
)

// ListQuery selects a page of bets. Zero values mean "no filter".
type ListQuery struct {
	Status models.Status
	Search string
	Page   int
	Size   int
}

// Values encodes the query string for GET /bets. The backend upper-cases
// the status itself, so in-progress is sent as in_progress.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", strings.ReplaceAll(string(q.Status), "-", "_"))
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		v.Set("search", s)
	}
	v.Set("page", strconv.Itoa(q.Page))
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	return v
}

// ListBets handles GET /bets. The backend may answer with a page envelope
// or a bare array; both become a BetPage.
func (c *Client) ListBets(ctx context.Context, token string, q ListQuery) (*models.BetPage, error) {
	var raw json.RawMessage
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/bets",
		query:  q.Values(),
		token:  token,
		out:    &raw,
	})
	if err != nil {
		return nil, err
	}
	return decodeBetList(raw)
}

func decodeBetList(data []byte) (*models.BetPage, error) {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var bets []models.Bet
		if err := json.Unmarshal(trimmed, &bets); err != nil {
			return nil, fmt.Errorf("bet list: %v: %w", err, ErrMalformedResponse)
		}
		return &models.BetPage{
			Content:       bets,
			TotalElements: len(bets),
			TotalPages:    1,
			Size:          len(bets),
		}, nil
	}

	var page models.BetPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, fmt.Errorf("bet page: %v: %w", err, ErrMalformedResponse)
	}
	if page.Content == nil {
		page.Content = []models.Bet{}
	}
	return &page, nil
}

// CreateBet handles POST /bets
func (c *Client) CreateBet(ctx context.Context, token string, req models.CreateBetRequest) (*models.Bet, error) {
	var bet models.Bet
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/bets",
		token:  token,
		body:   req,
		out:    &bet,
	})
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

// GetBet handles GET /bets/{id}
func (c *Client) GetBet(ctx context.Context, token string, id int64) (*models.Bet, error) {
	var bet models.Bet
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   betPath(id, ""),
		token:  token,
		out:    &bet,
	})
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

// Join handles POST /bets/{id}/join
func (c *Client) Join(ctx context.Context, token string, id int64, role string) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   betPath(id, "/join"),
		token:  token,
		body:   models.JoinRequest{Role: role},
	})
}

// GetVotes handles GET /bets/{id}/votes
func (c *Client) GetVotes(ctx context.Context, token string, id int64) (*models.VoteTally, error) {
	var tally models.VoteTally
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   betPath(id, "/votes"),
		token:  token,
		out:    &tally,
	})
	if err != nil {
		return nil, err
	}
	return &tally, nil
}

// Vote handles POST /bets/{id}/vote
func (c *Client) Vote(ctx context.Context, token string, id int64, voteFor bool) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   betPath(id, "/vote"),
		token:  token,
		body:   models.VoteRequest{Vote: voteFor},
	})
}

// GetComments handles GET /bets/{id}/comments
func (c *Client) GetComments(ctx context.Context, token string, id int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   betPath(id, "/comments"),
		token:  token,
		out:    &comments,
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment handles POST /bets/{id}/comments. The created comment is
// ignored; callers re-read the list.
func (c *Client) AddComment(ctx context.Context, token string, id int64, text string) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   betPath(id, "/comments"),
		token:  token,
		body:   models.CommentRequest{Text: text},
	})
}

// Resolve handles POST /bets/{id}/resolve
func (c *Client) Resolve(ctx context.Context, token string, id int64, winner string) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   betPath(id, "/resolve"),
		token:  token,
		body:   models.ResolveRequest{Winner: winner},
	})
}

// Finish handles POST /bets/{id}/finish
func (c *Client) Finish(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   betPath(id, "/finish"),
		token:  token,
	})
}

// DeleteBet handles DELETE /bets/{id}
func (c *Client) DeleteBet(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   betPath(id, ""),
		token:  token,
	})
}

func betPath(id int64, suffix string) string {
	return "/bets/" + strconv.FormatInt(id, 10) + suffix
}
