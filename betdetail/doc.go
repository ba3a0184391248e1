// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package betdetail is the controller behind a single bet's page.

# Loading

LoadDetail fetches the bet, its vote tally and its comments one after the
other. If the bet fails the page shows an error instead. If votes or
comments fail, that panel is marked as unavailable and the rest renders.

# Actions

Every action names its bet:

	c.Vote(ctx, betID, true)

Join, Vote, AddComment, Resolve and Finish each make one call and, on
success, reload the whole page from the backend. Nothing is updated
optimistically. On failure a toast shows the error and the view is left as
it was. The backend decides which transitions are legal; the controller
only rejects input it can tell is wrong (an unknown role or winner, an
empty comment) without making a request.

Delete removes the bet, reports success and sets State.Deleted; the handler
goes back to the list.

# Concurrency

A Controller may be used from many requests at once. State is locked only
while it is read or replaced; backend calls run unlocked, and when loads
overlap the last one to finish wins.

An authentication failure anywhere hands over to the session, which logs
the user out.
*/
package betdetail
