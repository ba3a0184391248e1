// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielhkuo/betboard/models"
)

// Login handles POST /auth/login
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	return c.authenticate(ctx, "/auth/login", req)
}

// Register handles POST /auth/register
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return c.authenticate(ctx, "/auth/register", req)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*models.AuthResponse, error) {
	var res models.AuthResponse
	err := c.do(ctx, call{
		method:    http.MethodPost,
		path:      path,
		anonymous: true,
		body:      body,
		out:       &res,
	})
	if err != nil {
		return nil, err
	}
	if res.Token == "" || res.User == nil {
		return nil, fmt.Errorf("%s: missing token or user: %w", path, ErrMalformedResponse)
	}
	return &res, nil
}

// Validate handles GET /auth/validate. Any error means the token is not
// usable.
func (c *Client) Validate(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/auth/validate",
		token:  token,
		out:    &user,
	})
	if err != nil {
		return nil, err
	}
	if user.ID == 0 && user.Email == "" {
		return nil, fmt.Errorf("/auth/validate: empty user: %w", ErrMalformedResponse)
	}
	return &user, nil
}
