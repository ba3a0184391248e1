// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package betlist is the controller behind the bet list page.

It keeps the filter (status and search), the page cursor and the last
fetched page. Every fetch replaces the list wholesale; nothing is merged or
inserted optimistically.

# Loading

	ctl := betlist.New(client, sess, queue, cfg.PageSize)
	ctl.Navigate(betlist.Filter{Status: models.StatusOpen}, 0)
	ctl.LoadBets(ctx)

A 401/403 hands over to the session (which logs out) and clears the data
while keeping the filter. Any other failure shows an error placeholder.

# Creating

CreateBet checks that all four fields are present and the duration is a
positive number, posts the bet, closes the form and reloads the list.
*/
package betlist
