// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types exchanged with
the bet backend.

# Request Types

Types marshalled into JSON request bodies:

  - LoginRequest: email, password
  - RegisterRequest: firstName, lastName, email, password
  - CreateBetRequest: title, description, startDate, duration (hours)
  - JoinRequest: role (PARTICIPANT or OBSERVER)
  - VoteRequest: vote (true = for, false = against)
  - CommentRequest: text
  - ResolveRequest: winner (creator, participant or draw)

# Response Types

  - AuthResponse: token, user, message
  - BetPage: content, totalElements, totalPages, number, size
  - VoteTally: forVotes, againstVotes, userVote
  - ErrorResponse: error, message

# Domain Types

All entities are owned by the backend. The client holds transient copies
that are replaced wholesale on every fetch:

  - User
  - Bet
  - Comment
  - Session: token plus the user returned by /auth/validate

# Status

The backend emits upper-snake-case statuses. NormalizeStatus maps them to the
display form used everywhere in the client:

	OPEN        → open
	IN_PROGRESS → in-progress
	IMPLEMENTED → implemented
	CONFLICT    → conflict
	RESOLVED    → resolved
	FINISHED    → finished

Unknown values map to open. Status implements json.Unmarshaler so decoded
bets always carry a normalized status.
*/
package models
