// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Join roles
const (
	RoleParticipant = "PARTICIPANT"
	RoleObserver    = "OBSERVER"
)

// Conflict winners
const (
	WinnerCreator     = "creator"
	WinnerParticipant = "participant"
	WinnerDraw        = "draw"
)

// Winners lists the fixed choice set offered when resolving a conflict.
var Winners = []string{WinnerCreator, WinnerParticipant, WinnerDraw}

// Request types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// StartDate is sent as entered (ISO local date-time); duration is in hours.
type CreateBetRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	Duration    int    `json:"duration"`
}

type JoinRequest struct {
	Role string `json:"role"`
}

type VoteRequest struct {
	Vote bool `json:"vote"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

type ResolveRequest struct {
	Winner string `json:"winner"`
}

// Response types

type AuthResponse struct {
	Token   string `json:"token"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// BetPage is the paginated envelope returned by GET /bets.
type BetPage struct {
	Content       []Bet `json:"content"`
	TotalElements int   `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// Domain types

type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role,omitempty"`
	IsActive  bool   `json:"isActive"`
}

// Dates are kept as the backend sends them (local date-time strings) and
// parsed only for display.
type Bet struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	Duration    int    `json:"duration"`
	Status      Status `json:"status"`
	Creator     *User  `json:"creator,omitempty"`
	Participant *User  `json:"participant,omitempty"`
	Observer    *User  `json:"observer,omitempty"`
	Winner      *User  `json:"winner,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	ResolvedAt  string `json:"resolvedAt,omitempty"`
	ShareURL    string `json:"shareUrl,omitempty"`
}

// UserVote is nil when the current user has not voted.
type VoteTally struct {
	ForVotes     int   `json:"forVotes"`
	AgainstVotes int   `json:"againstVotes"`
	UserVote     *bool `json:"userVote"`
}

type Comment struct {
	ID        int64  `json:"id"`
	Author    *User  `json:"author,omitempty"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// Session is the client's view of who is logged in.
type Session struct {
	Token string
	User  *User
}

// Authenticated reports whether both a token and a validated user are held.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
