// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Fixed keys in client_state
const (
	TokenKey     = "authToken"
	InstallIDKey = "installId"
)

// TokenStore persists the bearer token (and nothing else of the session)
// in the client_state table.
type TokenStore struct {
	db *sql.DB
}

func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Token returns the cached token, or "" when none is stored.
func (s *TokenStore) Token() (string, error) {
	return s.get(TokenKey)
}

// SetToken replaces the cached token.
func (s *TokenStore) SetToken(token string) error {
	return s.put(TokenKey, token)
}

// ClearToken removes the cached token. Clearing an absent token is not an error.
func (s *TokenStore) ClearToken() error {
	_, err := s.db.Exec(`DELETE FROM client_state WHERE key = $1`, TokenKey)
	if err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// InstallID returns the id of this client installation, creating it on
// first use.
func (s *TokenStore) InstallID() (string, error) {
	id, err := s.get(InstallIDKey)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = uuid.NewString()
	if err := s.put(InstallIDKey, id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *TokenStore) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM client_state WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *TokenStore) put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO client_state (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
