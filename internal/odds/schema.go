package odds

import "strings"

const (
	// ImageBookAlias names the sportsbook whose header is a logo with no text.
	ImageBookAlias = "caesars"

	projScoreLabel = "Proj Score"
	recordColumn   = "record"
	dateColumn     = "date"
	openSuffix     = "_open"
)

// Sportsbooks that post an opening line next to the current one. The empty
// label is the logo-only header.
var openBooks = map[string]struct{}{
	"consensus":  {},
	"":           {},
	"draftkings": {},
	"fanduel":    {},
	"westgate":   {},
}

type cellKind int

const (
	cellNameRecord cellKind = iota
	cellProjScore
	cellOdds
)

// cellRole describes what one team-row cell holds, by header position.
type cellRole struct {
	kind     cellKind
	column   string // schema name of the first column this cell feeds
	book     string
	withOpen bool
}

// tablePlan is the schema of a table together with the roles of its cells.
type tablePlan struct {
	layout Layout
	schema Schema
	roles  []cellRole
}

func newPlan(labels []string, layout Layout) tablePlan {
	sfx := layout.Suffix()
	p := tablePlan{layout: layout}
	for i, raw := range labels {
		label := cleanText(raw)
		name := label
		if name == "" {
			name = ImageBookAlias
		}
		switch {
		case i == 0:
			p.roles = append(p.roles, cellRole{kind: cellNameRecord, column: name + sfx})
			p.schema = append(p.schema,
				Column{Name: name + sfx, Kind: KindMatchup},
				Column{Name: recordColumn + sfx, Kind: KindRecord},
			)
		case i == 1:
			// the projected score sits at position 1 whatever the header says
			if label == "" {
				name = projScoreLabel
			}
			p.roles = append(p.roles, cellRole{kind: cellProjScore, column: name + sfx})
			p.schema = append(p.schema, Column{Name: name + sfx, Kind: KindProjScore})
		default:
			_, withOpen := openBooks[strings.ToLower(label)]
			p.roles = append(p.roles, cellRole{kind: cellOdds, column: name + sfx, book: name, withOpen: withOpen})
			p.schema = append(p.schema, Column{Name: name + sfx, Kind: KindCurrent, Book: name})
			if withOpen {
				p.schema = append(p.schema, Column{Name: name + openSuffix + sfx, Kind: KindOpen, Book: name})
			}
		}
	}
	p.schema = append(p.schema, Column{Name: dateColumn + sfx, Kind: KindDate})
	return p
}

// ExpandHeader builds the schema for a table header before the projected
// score column is dropped. Books with an opening line get a <name>_open
// column right after them, "record" follows the matchup column and "date"
// closes the list.
func ExpandHeader(labels []string, layout Layout) Schema {
	return newPlan(labels, layout).schema
}
