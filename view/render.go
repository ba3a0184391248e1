// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/danielhkuo/betboard/betdetail"
	"github.com/danielhkuo/betboard/betlist"
	"github.com/danielhkuo/betboard/models"
	"github.com/danielhkuo/betboard/notify"
	"github.com/danielhkuo/betboard/session"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageIndex  = "index"
	PageDetail = "detail"
)

// IndexPage is the data behind "/": the auth forms when logged out, the
// bet list when logged in.
type IndexPage struct {
	Session  session.State
	List     betlist.State
	Statuses []models.Status
	Notices  []notify.Notice
	Now      time.Time
}

// DetailPage is the data behind "/bets/{id}".
type DetailPage struct {
	Session    session.State
	Detail     betdetail.State
	Actions    Affordances
	ForPct     float64
	AgainstPct float64
	Winners    []string
	Notices    []notify.Notice
	Now        time.Time
}

// NewIndexPage assembles the list page data.
func NewIndexPage(s session.State, l betlist.State, notices []notify.Notice) IndexPage {
	return IndexPage{
		Session:  s,
		List:     l,
		Statuses: models.Statuses,
		Notices:  notices,
		Now:      time.Now(),
	}
}

// NewDetailPage assembles the detail page data, deriving affordances and
// vote shares.
func NewDetailPage(s session.State, d betdetail.State, notices []notify.Notice) DetailPage {
	forPct, againstPct := VotePercentages(d.Tally)
	return DetailPage{
		Session:    s,
		Detail:     d,
		Actions:    AffordancesFor(s.Session.User, d.Bet, d.Tally),
		ForPct:     forPct,
		AgainstPct: againstPct,
		Winners:    models.Winners,
		Notices:    notices,
		Now:        time.Now(),
	}
}

var funcs = template.FuncMap{
	"statusLabel": StatusLabel,
	"statusColor": StatusColor,
	"formatDate":  FormatDate,
	"relative":    FormatRelative,
	"duration":    FormatDuration,
	"fullName":    FullName,
	"shareLink":   ShareLink,
	"betURL":      BetURL,
	"listURL":     ListURL,
	"percent":     percent,
	"winnerLabel": WinnerLabel,
	"isBlocking":  func(n notify.Notice) bool { return n.Kind == notify.Blocking },
	"add":         func(a, b int) int { return a + b },
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes page into w. Output is buffered so a template error
// never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, page, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
