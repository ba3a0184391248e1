// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"sync"
	"testing"
)

func TestQueueDrain(t *testing.T) {
	var q Queue

	Alert(&q, "login failed")
	Success(&q, "bet created")
	Error(&q, "vote failed")

	got := q.Drain()
	if len(got) != 3 {
		t.Fatalf("Expected 3 notices, got %d", len(got))
	}

	want := []Notice{
		{Kind: Blocking, Level: LevelError, Message: "login failed"},
		{Kind: Toast, Level: LevelSuccess, Message: "bet created"},
		{Kind: Toast, Level: LevelError, Message: "vote failed"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notice %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if again := q.Drain(); len(again) != 0 {
		t.Errorf("Expected empty queue after drain, got %d notices", len(again))
	}
}

func TestQueueConcurrentNotify(t *testing.T) {
	var q Queue
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Success(&q, "ok")
		}()
	}
	wg.Wait()

	if got := len(q.Drain()); got != 50 {
		t.Errorf("Expected 50 notices, got %d", got)
	}
}
