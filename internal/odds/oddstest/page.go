// Package oddstest builds odds pages shaped like the scraped site, for tests.
package oddstest

import (
	"fmt"
	"html"
	"strings"
)

// Line is one sportsbook cell of a team row.
type Line struct {
	Current string // "" leaves out the current-value marker
	AtOdds  string // second sub-part of a spread line
	Open    string // text of the trailing div, e.g. "Open: -140"; "" leaves it out
}

type Team struct {
	Name   string
	Record string
	Proj   string
	Lines  []Line
	NoName bool // drop the h4/span substructure
}

type Game struct {
	Away Team
	Home Team
	When string // e.g. "Sun, Dec 15 1:00 PM ET on CBS"
}

// DefaultHeader is the live page header: the fourth label is the logo-only
// column.
func DefaultHeader() []string {
	return []string{"Matchup", "Proj Score", "consensus", "", "draftkings", "fanduel", "westgate"}
}

// MoneylineTeam returns a team with a posted line and opening line in
// every one of the five book columns.
func MoneylineTeam(name, record, current, open string) Team {
	t := Team{Name: name, Record: record, Proj: "24"}
	for i := 0; i < 5; i++ {
		t.Lines = append(t.Lines, Line{Current: current, Open: "Open: " + open})
	}
	return t
}

// SpreadTeam is MoneylineTeam for the spread page.
func SpreadTeam(name, record, spread, price, open string) Team {
	t := Team{Name: name, Record: record, Proj: "24"}
	for i := 0; i < 5; i++ {
		t.Lines = append(t.Lines, Line{Current: spread, AtOdds: price, Open: "Open: " + open})
	}
	return t
}

// Page renders a full document with one odds table.
func Page(header []string, games []Game) string {
	var b strings.Builder
	b.WriteString("<html><body><table class=\"odds\"><thead><tr>")
	for _, h := range header {
		if h == "" {
			b.WriteString(`<th><img src="/logo.png" alt=""></th>`)
			continue
		}
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(h))
	}
	b.WriteString("</tr></thead>")
	for _, g := range games {
		b.WriteString(Block(g))
	}
	b.WriteString("</table></body></html>")
	return b.String()
}

// Block renders the five-row tbody of one game.
func Block(g Game) string {
	var b strings.Builder
	b.WriteString("<tbody><tr></tr>")
	b.WriteString(teamRow(g.Away))
	b.WriteString(teamRow(g.Home))
	fmt.Fprintf(&b, `<tr><td colspan="7"><div class="game-info"><div>%s</div></div></td></tr>`, html.EscapeString(g.When))
	b.WriteString("<tr></tr></tbody>")
	return b.String()
}

func teamRow(t Team) string {
	var b strings.Builder
	b.WriteString("<tr>")
	if t.NoName {
		b.WriteString(`<td><div class="team"></div></td>`)
	} else {
		fmt.Fprintf(&b, `<td><div class="team"><h4>%s</h4><span>%s</span></div></td>`,
			html.EscapeString(t.Name), html.EscapeString(t.Record))
	}
	fmt.Fprintf(&b, `<td><div class="locked">%s</div></td>`, html.EscapeString(t.Proj))
	for _, l := range t.Lines {
		b.WriteString(lineCell(l))
	}
	b.WriteString("</tr>")
	return b.String()
}

func lineCell(l Line) string {
	var b strings.Builder
	b.WriteString(`<td><div class="odds-cell">`)
	if l.Current != "" {
		if l.AtOdds != "" {
			fmt.Fprintf(&b, `<div class="current-value"><span class="primary">%s</span><span class="secondary">%s</span></div>`,
				html.EscapeString(l.Current), html.EscapeString(l.AtOdds))
		} else {
			fmt.Fprintf(&b, `<div class="current-value">%s</div>`, html.EscapeString(l.Current))
		}
	}
	if l.Open != "" {
		fmt.Fprintf(&b, `<div class="open">%s</div>`, html.EscapeString(l.Open))
	}
	b.WriteString("</div></td>")
	return b.String()
}
