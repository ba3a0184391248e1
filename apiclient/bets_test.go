// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielhkuo/betboard/apiclient"
	"github.com/danielhkuo/betboard/models"
	"github.com/danielhkuo/betboard/testutil"
)

func TestListQueryValues(t *testing.T) {
	testCases := []struct {
		name  string
		query apiclient.ListQuery
		want  string
	}{
		{"no filter", apiclient.ListQuery{}, "page=0"},
		{"open first page", apiclient.ListQuery{Status: models.StatusOpen, Size: 12}, "page=0&size=12&status=open"},
		{"in progress", apiclient.ListQuery{Status: models.StatusInProgress, Page: 2}, "page=2&status=in_progress"},
		{"search trimmed", apiclient.ListQuery{Search: "  pizza  "}, "page=0&search=pizza"},
		{"blank search dropped", apiclient.ListQuery{Search: "   "}, "page=0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.query.Values().Encode(); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestListBets_Shapes(t *testing.T) {
	ann := testutil.TestUser(1, "Ann")

	testCases := []struct {
		name      string
		body      any
		wantCount int
		wantPages int
	}{
		{
			name:      "page envelope",
			body:      map[string]any{"content": []any{testutil.TestBet(1, "OPEN", ann)}, "totalElements": 13, "totalPages": 2},
			wantCount: 1,
			wantPages: 2,
		},
		{
			name:      "bare array",
			body:      []any{testutil.TestBet(1, "OPEN", ann), testutil.TestBet(2, "CONFLICT", ann)},
			wantCount: 2,
			wantPages: 1,
		},
		{
			name:      "empty envelope",
			body:      map[string]any{"content": []any{}},
			wantCount: 0,
			wantPages: 0,
		},
		{
			name:      "envelope without content",
			body:      map[string]any{"totalElements": 0},
			wantCount: 0,
			wantPages: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			backend := testutil.NewBackend(t)
			backend.JSON("GET", "/bets", http.StatusOK, tc.body)

			page, err := backend.Client().ListBets(context.Background(), "t1", apiclient.ListQuery{Size: 12})
			if err != nil {
				t.Fatal(err)
			}
			if page.Content == nil {
				t.Error("Expected a non-nil slice")
			}
			if len(page.Content) != tc.wantCount {
				t.Errorf("Expected %d bets, got %d", tc.wantCount, len(page.Content))
			}
			if page.TotalPages != tc.wantPages {
				t.Errorf("Expected %d pages, got %d", tc.wantPages, page.TotalPages)
			}
		})
	}
}

func TestGetBet_NormalizesStatus(t *testing.T) {
	backend := testutil.NewBackend(t)
	bet := testutil.TestBet(4, "IN_PROGRESS", testutil.TestUser(1, "Ann"))
	bet["participant"] = testutil.TestUser(2, "Bob")
	backend.JSON("GET", "/bets/4", http.StatusOK, bet)

	got, err := backend.Client().GetBet(context.Background(), "t1", 4)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusInProgress {
		t.Errorf("Expected in-progress, got %q", got.Status)
	}
	if got.Participant == nil || got.Participant.ID != 2 || got.Observer != nil {
		t.Errorf("Unexpected roles %+v / %+v", got.Participant, got.Observer)
	}
	if got.Duration != 48 || got.ShareURL != "/bet/4" {
		t.Errorf("Unexpected bet %+v", got)
	}
}

func TestGetVotes(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.JSON("GET", "/bets/4/votes", http.StatusOK, map[string]any{"forVotes": 2, "againstVotes": 5, "userVote": false})

	tally, err := backend.Client().GetVotes(context.Background(), "t1", 4)
	if err != nil {
		t.Fatal(err)
	}
	if tally.ForVotes != 2 || tally.AgainstVotes != 5 {
		t.Errorf("Unexpected tally %+v", tally)
	}
	if tally.UserVote == nil || *tally.UserVote {
		t.Error("Expected userVote=false to be kept")
	}
}

func TestMutationBodies(t *testing.T) {
	testCases := []struct {
		name   string
		method string
		path   string
		call   func(c *apiclient.Client) error
		want   map[string]any
	}{
		{
			name:   "create",
			method: "POST",
			path:   "/bets",
			call: func(c *apiclient.Client) error {
				_, err := c.CreateBet(context.Background(), "t1", models.CreateBetRequest{Title: "t", Description: "d", StartDate: "2025-06-01T18:30:00", Duration: 24})
				return err
			},
			want: map[string]any{"title": "t", "description": "d", "startDate": "2025-06-01T18:30:00", "duration": float64(24)},
		},
		{
			name:   "join",
			method: "POST",
			path:   "/bets/4/join",
			call:   func(c *apiclient.Client) error { return c.Join(context.Background(), "t1", 4, models.RoleObserver) },
			want:   map[string]any{"role": "OBSERVER"},
		},
		{
			name:   "vote",
			method: "POST",
			path:   "/bets/4/vote",
			call:   func(c *apiclient.Client) error { return c.Vote(context.Background(), "t1", 4, true) },
			want:   map[string]any{"vote": true},
		},
		{
			name:   "comment",
			method: "POST",
			path:   "/bets/4/comments",
			call:   func(c *apiclient.Client) error { return c.AddComment(context.Background(), "t1", 4, "hello") },
			want:   map[string]any{"text": "hello"},
		},
		{
			name:   "resolve",
			method: "POST",
			path:   "/bets/4/resolve",
			call:   func(c *apiclient.Client) error { return c.Resolve(context.Background(), "t1", 4, models.WinnerParticipant) },
			want:   map[string]any{"winner": "participant"},
		},
		{
			name:   "finish",
			method: "POST",
			path:   "/bets/4/finish",
			call:   func(c *apiclient.Client) error { return c.Finish(context.Background(), "t1", 4) },
		},
		{
			name:   "delete",
			method: "DELETE",
			path:   "/bets/4",
			call:   func(c *apiclient.Client) error { return c.DeleteBet(context.Background(), "t1", 4) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			backend := testutil.NewBackend(t)
			backend.JSON(tc.method, tc.path, http.StatusOK, testutil.TestBet(4, "OPEN", nil))

			if err := tc.call(backend.Client()); err != nil {
				t.Fatal(err)
			}

			reqs := backend.Requests(tc.method, tc.path)
			if len(reqs) != 1 {
				t.Fatalf("Expected one request, got %v", backend.Paths())
			}
			if tc.want == nil {
				if len(reqs[0].Body) != 0 {
					t.Errorf("Expected no body, got %s", reqs[0].Body)
				}
				return
			}

			var body map[string]any
			reqs[0].DecodeBody(t, &body)
			for k, v := range tc.want {
				if body[k] != v {
					t.Errorf("Expected %s=%v, got %v", k, v, body[k])
				}
			}
		})
	}
}

func TestGetComments(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.JSON("GET", "/bets/4/comments", http.StatusOK, []map[string]any{
		{"id": 1, "author": testutil.TestUser(1, "Ann"), "text": "first", "createdAt": "2025-05-30T10:00:00"},
		{"id": 2, "author": testutil.TestUser(2, "Bob"), "text": "second", "createdAt": "2025-05-30T11:00:00"},
	})

	comments, err := backend.Client().GetComments(context.Background(), "t1", 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 2 || comments[1].Author.FirstName != "Bob" {
		t.Errorf("Unexpected comments %+v", comments)
	}
}
