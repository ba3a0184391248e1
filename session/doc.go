// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session owns authentication state and the top-level page layout.

# Layout

Exactly one of two layouts is shown at a time:

  - logged out: the Auth region (login form, register modal)
  - logged in: the Main region and the user info bar

The layout only changes through the controller, never directly.

# Startup

RestoreSession reads the cached token from the state store and validates it
with GET /auth/validate. A rejected token is removed. A network failure is
treated the same way, so a flaky connection at startup logs the user out.

# Login and Registration

Both post to the backend and, on success, cache the returned token and
switch to the logged-in layout. Failures raise a blocking notice with the
backend's message and leave the typed values in the form.

# Teardown

Other controllers call Teardown with any API error. A 401/403 (or a call
made without a token) logs the user out and reports true so the caller can
clear its own data.
*/
package session
