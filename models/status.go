// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// Status is the display form of a bet's lifecycle state.
type Status string

// Bet status constants
const (
	StatusOpen        Status = "open"
	StatusInProgress  Status = "in-progress"
	StatusImplemented Status = "implemented"
	StatusConflict    Status = "conflict"
	StatusResolved    Status = "resolved"
	StatusFinished    Status = "finished"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{
	StatusOpen,
	StatusInProgress,
	StatusImplemented,
	StatusConflict,
	StatusResolved,
	StatusFinished,
}

// NormalizeStatus maps a backend status (OPEN, IN_PROGRESS, ...) or an
// already normalized one to its display form. Anything unrecognized becomes
// StatusOpen; this is a lenient fallback, not a validation error.
func NormalizeStatus(raw string) Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", "-")

	for _, known := range Statuses {
		if s == string(known) {
			return known
		}
	}

	if raw != "" {
		slog.Warn("unknown bet status, treating as open", "status", raw)
	}
	return StatusOpen
}

// Resolved reports whether voting is over for this status.
func (s Status) Resolved() bool {
	return s == StatusResolved || s == StatusFinished
}

// UnmarshalJSON normalizes whatever the backend sends.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// null or a non-string value falls back like any unknown status
		*s = StatusOpen
		return nil
	}
	*s = NormalizeStatus(raw)
	return nil
}
