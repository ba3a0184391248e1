// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package view turns controller state into HTML.

# Affordances

Every control on the detail page comes from a pure predicate over the bet,
the current user and the vote tally:

  - CanJoinParticipant, CanJoinObserver: open or in progress, seat empty
  - CanFinish: open or in progress, creator only
  - CanResolve: conflict, creator only
  - CanVote: tally loaded, bet not resolved or finished, no vote yet
  - CanDelete: creator only

AffordancesFor bundles them for the template.

# Formatting

StatusLabel and StatusColor are total over models.Status. FormatDate shows
"Date not set" for empty values and echoes values it cannot parse.
VotePercentages is 0/0 when nobody has voted.

# Rendering

Templates are embedded and parsed once:

	r, err := view.NewRenderer()
	err = r.Render(w, view.PageIndex, view.NewIndexPage(sess, list, notices))
*/
package view
