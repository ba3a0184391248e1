// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/betboard/betlist"
	"github.com/danielhkuo/betboard/models"
)

// Affordances lists which controls the detail page shows.
type Affordances struct {
	JoinParticipant bool
	JoinObserver    bool
	Finish          bool
	Resolve         bool
	Vote            bool
	AlreadyVoted    bool
	Comment         bool
	Delete          bool
}

// AffordancesFor derives every control from the bet, the current user and
// the tally. tally may be nil when votes could not be loaded.
func AffordancesFor(user *models.User, bet *models.Bet, tally *models.VoteTally) Affordances {
	if bet == nil {
		return Affordances{}
	}
	return Affordances{
		JoinParticipant: CanJoinParticipant(bet),
		JoinObserver:    CanJoinObserver(bet),
		Finish:          CanFinish(user, bet),
		Resolve:         CanResolve(user, bet),
		Vote:            CanVote(bet, tally),
		AlreadyVoted:    HasVoted(tally),
		Comment:         user != nil,
		Delete:          CanDelete(user, bet),
	}
}

// IsCreator compares by user id.
func IsCreator(user *models.User, bet *models.Bet) bool {
	return user != nil && bet != nil && bet.Creator != nil && user.ID == bet.Creator.ID
}

func joinable(bet *models.Bet) bool {
	return bet.Status == models.StatusOpen || bet.Status == models.StatusInProgress
}

func CanJoinParticipant(bet *models.Bet) bool {
	return bet != nil && joinable(bet) && bet.Participant == nil
}

func CanJoinObserver(bet *models.Bet) bool {
	return bet != nil && joinable(bet) && bet.Observer == nil
}

// CanFinish is creator-only while the bet is open or in progress.
func CanFinish(user *models.User, bet *models.Bet) bool {
	return bet != nil && joinable(bet) && IsCreator(user, bet)
}

// CanResolve is creator-only and only in conflict.
func CanResolve(user *models.User, bet *models.Bet) bool {
	return bet != nil && bet.Status == models.StatusConflict && IsCreator(user, bet)
}

// HasVoted is re-derived from every tally; nothing is remembered locally.
func HasVoted(tally *models.VoteTally) bool {
	return tally != nil && tally.UserVote != nil
}

// CanVote needs a loaded tally, an unresolved bet and no vote yet.
func CanVote(bet *models.Bet, tally *models.VoteTally) bool {
	return bet != nil && tally != nil && !bet.Status.Resolved() && !HasVoted(tally)
}

func CanDelete(user *models.User, bet *models.Bet) bool {
	return IsCreator(user, bet)
}

// VotePercentages returns the for and against shares in percent. Both are
// 0 when nobody has voted.
func VotePercentages(tally *models.VoteTally) (forPct, againstPct float64) {
	if tally == nil {
		return 0, 0
	}
	total := tally.ForVotes + tally.AgainstVotes
	if total <= 0 {
		return 0, 0
	}
	forPct = float64(tally.ForVotes) / float64(total) * 100
	againstPct = float64(tally.AgainstVotes) / float64(total) * 100
	return forPct, againstPct
}

var statusLabels = map[models.Status]string{
	models.StatusOpen:        "Open",
	models.StatusInProgress:  "In progress",
	models.StatusImplemented: "Implemented",
	models.StatusConflict:    "Conflict",
	models.StatusResolved:    "Resolved",
	models.StatusFinished:    "Finished",
}

var statusColors = map[models.Status]string{
	models.StatusOpen:        "primary",
	models.StatusInProgress:  "warning",
	models.StatusImplemented: "info",
	models.StatusConflict:    "danger",
	models.StatusResolved:    "success",
	models.StatusFinished:    "secondary",
}

// StatusLabel is total: anything outside the enumeration reads as Open.
func StatusLabel(s models.Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return statusLabels[models.StatusOpen]
}

// StatusColor is the badge colour class suffix for s.
func StatusColor(s models.Status) string {
	if color, ok := statusColors[s]; ok {
		return color
	}
	return "secondary"
}

// Layouts without a zone are the backend's local date-times.
var localDateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts the timestamp shapes the backend is known to send.
// Values without a zone are read in time.Local.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range localDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a backend timestamp for display. Unparseable values
// are shown as received.
func FormatDate(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Date not set"
	}
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006 15:04")
}

// FormatRelative renders s relative to now ("3 hours ago").
func FormatRelative(s string, now time.Time) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatDuration renders a bet duration given in hours.
func FormatDuration(hours int) string {
	if hours == 1 {
		return "1 hour"
	}
	return humanize.Comma(int64(hours)) + " hours"
}

// FullName renders a user, or "Not assigned" when there is none.
func FullName(u *models.User) string {
	if u == nil {
		return "Not assigned"
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// ShareLink is the link shown for sharing a bet.
func ShareLink(bet *models.Bet) string {
	if bet == nil {
		return ""
	}
	if bet.ShareURL != "" {
		return bet.ShareURL
	}
	return BetURL(bet.ID)
}

// BetURL is the local detail page for a bet.
func BetURL(id int64) string {
	return "/bets/" + strconv.FormatInt(id, 10)
}

// ListURL builds the list page link for a filter and page.
func ListURL(f betlist.Filter, page int) string {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

// WinnerLabel names a resolution choice.
func WinnerLabel(w string) string {
	switch w {
	case models.WinnerCreator:
		return "Creator wins"
	case models.WinnerParticipant:
		return "Participant wins"
	case models.WinnerDraw:
		return "Draw"
	}
	return w
}

func percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}
