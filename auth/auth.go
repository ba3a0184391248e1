// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingFields = errors.New("all fields are required")
	ErrMissingToken  = errors.New("no token")
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginForm holds the login fields as typed by the user.
type LoginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// RegisterForm holds the registration fields. Presence only; format
// checks belong to the backend.
type RegisterForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required"`
	Password  string `validate:"required"`
}

// ValidateForm checks that every required field of form is set; trim the
// form first. It returns ErrMissingFields otherwise.
func ValidateForm(form any) error {
	if err := validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ErrMissingFields
		}
		return err
	}
	return nil
}

// Trimmed returns a copy of the form with surrounding whitespace removed
// from every field except the password.
func (f LoginForm) Trimmed() LoginForm {
	f.Email = strings.TrimSpace(f.Email)
	return f
}

func (f RegisterForm) Trimmed() RegisterForm {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	return f
}

// BearerHeader formats the Authorization header value for token.
func BearerHeader(token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}
	return "Bearer " + token, nil
}

// MaskToken shortens a token for logs: first four characters, then "…".
func MaskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + "…"
}

// MaskEmail keeps the first character of the local part and the domain,
// e.g. "a***@example.com". Input without an "@" is masked completely.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return strings.Repeat("*", len(email))
	}
	return local[:1] + "***@" + domain
}
