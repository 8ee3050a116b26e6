package odds

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	currentValueSel = ".current-value"
	openLabel       = "open"
	openSep         = ": "
	channelSep      = " on "
)

// fieldCtx carries what a warning needs to point at one field of one game.
type fieldCtx struct {
	lg     *slog.Logger
	game   int
	column string
}

func (f fieldCtx) warn(msg string, args ...any) {
	f.lg.Warn(msg, append([]any{"game", f.game, "column", f.column}, args...)...)
}

func present(s *goquery.Selection) bool { return s != nil && s.Length() > 0 }

// teamName pulls the team name (h4) and won-loss record (span) from the
// first cell of a team row.
func teamName(cell *goquery.Selection) (name, record string, okName, okRecord bool) {
	if !present(cell) {
		return "", "", false, false
	}
	if h := cell.Find("h4").First(); h.Length() > 0 {
		name, okName = cleanText(h.Text()), true
	}
	if s := cell.Find("span").First(); s.Length() > 0 {
		record, okRecord = cleanText(s.Text()), true
	}
	return
}

// currentOdds reads the current-value marker of an odds cell. ok is false
// when the marker is absent, meaning no line is posted.
func currentOdds(cell *goquery.Selection, layout Layout) (string, bool) {
	if !present(cell) {
		return "", false
	}
	marker := cell.Find(currentValueSel).First()
	if marker.Length() == 0 {
		return "", false
	}
	if layout != Spread {
		return cleanText(marker.Text()), true
	}
	parts := marker.Children()
	if parts.Length() < 2 {
		return cleanText(marker.Text()), true
	}
	return cleanText(parts.Eq(0).Text()) + " @ " + cleanText(parts.Eq(1).Text()), true
}

// openingOdds reads the trailing "Open: <value>" element of an odds cell.
// ok is false when the label is not "open".
func openingOdds(cell *goquery.Selection) (string, bool) {
	if !present(cell) {
		return "", false
	}
	last := cell.Find("div").Last()
	if last.Length() == 0 {
		return "", false
	}
	parts := strings.SplitN(last.Text(), openSep, 2)
	if strings.ToLower(strings.TrimSpace(parts[0])) != openLabel {
		return "", false
	}
	if len(parts) < 2 {
		return "", true
	}
	return cleanText(parts[1]), true
}

// gameDate reads the date from the date/channel row, dropping the channel.
func gameDate(row *goquery.Selection) (string, bool) {
	if !present(row) {
		return "", false
	}
	last := row.Find("div").Last()
	if last.Length() == 0 {
		return "", false
	}
	date, _, _ := strings.Cut(last.Text(), channelSep)
	return cleanText(date), true
}

// extractNameRecord returns the matchup and record pairs. Missing
// substructure degrades to empty strings with a warning.
func extractNameRecord(f fieldCtx, away, home *goquery.Selection) (names, records Pair) {
	an, ar, okAN, okAR := teamName(away)
	hn, hr, okHN, okHR := teamName(home)
	if !okAN {
		f.warn("team name not found", "side", "away")
	}
	if !okHN {
		f.warn("team name not found", "side", "home")
	}
	if !okAR {
		f.warn("team record not found", "side", "away")
	}
	if !okHR {
		f.warn("team record not found", "side", "home")
	}
	return Pair{Away: an, Home: hn}, Pair{Away: ar, Home: hr}
}

// extractCurrent returns the current line for both sides. ok is false when
// either side has no line posted.
func extractCurrent(f fieldCtx, away, home *goquery.Selection, layout Layout) (Pair, bool) {
	a, okA := currentOdds(away, layout)
	h, okH := currentOdds(home, layout)
	if !okA || !okH {
		f.lg.Info("no odds posted", "game", f.game, "column", f.column)
		return Pair{}, false
	}
	return Pair{Away: a, Home: h}, true
}

// extractOpen returns the opening line for both sides, or an empty pair
// with a warning when either label check fails.
func extractOpen(f fieldCtx, away, home *goquery.Selection) Pair {
	a, okA := openingOdds(away)
	h, okH := openingOdds(home)
	if !okA || !okH {
		side := "both"
		switch {
		case okA:
			side = "home"
		case okH:
			side = "away"
		}
		f.warn(`"Open" field not found`, "side", side)
		return Pair{}
	}
	return Pair{Away: a, Home: h}
}

func extractDate(f fieldCtx, row *goquery.Selection) string {
	d, ok := gameDate(row)
	if !ok {
		f.warn("game date not found")
	}
	return d
}
