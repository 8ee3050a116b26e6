package odds

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/tyler180/nfl-odds-board/internal/odds/oddstest"
)

// logRecorder keeps every record logged through it.
type logRecorder struct {
	mu      sync.Mutex
	records []slog.Record
}

func newRecorder() (*logRecorder, *slog.Logger) {
	r := &logRecorder{}
	return r, slog.New(r)
}

func (r *logRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *logRecorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec.Clone())
	return nil
}

func (r *logRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *logRecorder) WithGroup(string) slog.Handler      { return r }

func (r *logRecorder) at(level slog.Level) []slog.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []slog.Record
	for _, rec := range r.records {
		if rec.Level == level {
			out = append(out, rec)
		}
	}
	return out
}

func (r *logRecorder) warnings() []slog.Record { return r.at(slog.LevelWarn) }

func attrOf(rec slog.Record, key string) string {
	var v string
	rec.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			v = a.Value.String()
			return false
		}
		return true
	})
	return v
}

func parseDoc(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func assemblePage(t *testing.T, layout Layout, page string) (RecordSet, *logRecorder) {
	t.Helper()
	rec, lg := newRecorder()
	rs, err := AssembleDocument(parseDoc(t, page), layout, lg)
	if err != nil {
		t.Fatalf("AssembleDocument: %v", err)
	}
	return rs, rec
}

func pairAt(t *testing.T, rs RecordSet, row int, column string) Pair {
	t.Helper()
	i := rs.Schema().Index(column)
	if i < 0 {
		t.Fatalf("column %q not in schema %q", column, rs.Schema().Names())
	}
	return rs.Record(row).Value(i).Pair
}

func textAt(t *testing.T, rs RecordSet, row int, column string) string {
	t.Helper()
	i := rs.Schema().Index(column)
	if i < 0 {
		t.Fatalf("column %q not in schema %q", column, rs.Schema().Names())
	}
	return rs.Record(row).Value(i).Text
}

// slate builds n moneyline games from consecutive team pairs.
func slate(n int) []oddstest.Game {
	teams := AllTeams()
	games := make([]oddstest.Game, 0, n)
	for i := 0; i < n; i++ {
		away, home := teams[2*i], teams[2*i+1]
		games = append(games, oddstest.Game{
			Away: oddstest.MoneylineTeam(away.Abbr, "5-3", "+130", "+120"),
			Home: oddstest.MoneylineTeam(home.Abbr, "6-2", "-150", "-140"),
			When: "Sun, Dec 15 1:00 PM ET on CBS",
		})
	}
	return games
}

// spreadSlate is slate for the spread page.
func spreadSlate(n int) []oddstest.Game {
	teams := AllTeams()
	games := make([]oddstest.Game, 0, n)
	for i := 0; i < n; i++ {
		away, home := teams[2*i], teams[2*i+1]
		games = append(games, oddstest.Game{
			Away: oddstest.SpreadTeam(away.Abbr, "5-3", "+3.5", "-110", "+3"),
			Home: oddstest.SpreadTeam(home.Abbr, "6-2", "-3.5", "-110", "-3"),
			When: "Sun, Dec 15 1:00 PM ET on CBS",
		})
	}
	return games
}
