// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package notify collects user-facing notifications produced by the page
// controllers until the next render drains them.
package notify

import "sync"

// Kind decides how a notice is presented.
type Kind int

const (
	// Blocking notices must be acknowledged (alert-style).
	Blocking Kind = iota
	// Toast notices disappear on their own.
	Toast
)

// Level is the severity of a notice.
type Level string

const (
	LevelError   Level = "danger"
	LevelSuccess Level = "success"
)

type Notice struct {
	Kind    Kind
	Level   Level
	Message string
}

// Notifier receives notices from controllers.
type Notifier interface {
	Notify(n Notice)
}

// Queue is a Notifier that buffers notices in arrival order.
type Queue struct {
	mu      sync.Mutex
	notices []Notice
}

func (q *Queue) Notify(n Notice) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.notices = append(q.notices, n)
}

// Drain returns the buffered notices and empties the queue.
func (q *Queue) Drain() []Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.notices
	q.notices = nil
	return out
}

// Alert queues a blocking error.
func Alert(n Notifier, msg string) {
	n.Notify(Notice{Kind: Blocking, Level: LevelError, Message: msg})
}

// Error queues a transient error.
func Error(n Notifier, msg string) {
	n.Notify(Notice{Kind: Toast, Level: LevelError, Message: msg})
}

// Success queues a transient confirmation.
func Success(n Notifier, msg string) {
	n.Notify(Notice{Kind: Toast, Level: LevelSuccess, Message: msg})
}
