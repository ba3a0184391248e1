// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides client-side credential helpers.

# Forms

LoginForm and RegisterForm carry what the user typed. ValidateForm performs
the only client-side check: every field must be present.

	form := auth.RegisterForm{FirstName: "Ann", LastName: "Lee", Email: "a@b.com", Password: "x"}
	if err := auth.ValidateForm(form.Trimmed()); err != nil {
		// err == auth.ErrMissingFields
	}

Formats (email shape, password length) are the backend's business.

# Bearer Tokens

	header, err := auth.BearerHeader(token)  // "Bearer <token>"

Tokens are opaque to the client. The current user is always re-derived from
GET /auth/validate, never decoded from the token.

# Logging

MaskToken keeps tokens out of logs:

	slog.Info("token cached", "token", auth.MaskToken(token))
*/
package auth
