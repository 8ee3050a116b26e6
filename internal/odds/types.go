package odds

import (
	"fmt"
	"regexp"
	"strings"
)

// Layout is the page structure being scraped.
type Layout int

const (
	Moneyline Layout = iota
	Spread
)

func (l Layout) String() string {
	switch l {
	case Moneyline:
		return "moneyline"
	case Spread:
		return "spread"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// Suffix is appended to every column name of a table in this layout.
func (l Layout) Suffix() string {
	if l == Spread {
		return "_spread"
	}
	return ""
}

// ParseLayout reads a layout name as given on the command line.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "moneyline", "money-line", "ml":
		return Moneyline, nil
	case "spread", "ats":
		return Spread, nil
	}
	return 0, fmt.Errorf("unknown layout %q", s)
}

// Pair holds one field for both participants of a game.
type Pair struct {
	Away string
	Home string
}

func (p Pair) IsEmpty() bool { return p.Away == "" && p.Home == "" }

// ColumnKind is the role a schema column plays.
type ColumnKind int

const (
	KindMatchup ColumnKind = iota
	KindRecord
	KindProjScore
	KindCurrent
	KindOpen
	KindDate
)

func (k ColumnKind) String() string {
	switch k {
	case KindMatchup:
		return "matchup"
	case KindRecord:
		return "record"
	case KindProjScore:
		return "proj_score"
	case KindCurrent:
		return "current"
	case KindOpen:
		return "open"
	case KindDate:
		return "date"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsPair reports whether values of this kind carry an away/home pair.
func (k ColumnKind) IsPair() bool {
	switch k {
	case KindMatchup, KindRecord, KindCurrent, KindOpen:
		return true
	}
	return false
}

type Column struct {
	Name string
	Kind ColumnKind
	Book string // sportsbook, set on current/open columns only
}

// Fields returns the flattened output names of the column: pair columns
// become <name>_away and <name>_home.
func (c Column) Fields() []string {
	if c.Kind.IsPair() {
		return []string{c.Name + "_away", c.Name + "_home"}
	}
	return []string{c.Name}
}

// Schema is the ordered column list of a RecordSet.
type Schema []Column

func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Name
	}
	return out
}

// Fields returns the flattened header used for delimited output.
func (s Schema) Fields() []string {
	out := make([]string, 0, len(s)*2)
	for _, c := range s {
		out = append(out, c.Fields()...)
	}
	return out
}

// Index returns the position of the named column or -1.
func (s Schema) Index(name string) int {
	for i, c := range s {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// IndexKind returns the position of the first column of kind k or -1.
func (s Schema) IndexKind(k ColumnKind) int {
	for i, c := range s {
		if c.Kind == k {
			return i
		}
	}
	return -1
}

// Value is one field of a record: a pair, a scalar, or the zero value for
// the projected-score placeholder.
type Value struct {
	Pair Pair
	Text string
}

func PairValue(away, home string) Value { return Value{Pair: Pair{Away: away, Home: home}} }
func TextValue(s string) Value          { return Value{Text: s} }

func (v Value) fields(k ColumnKind) []string {
	if k.IsPair() {
		return []string{v.Pair.Away, v.Pair.Home}
	}
	return []string{v.Text}
}

var wsRe = regexp.MustCompile(`\s+`)

func cleanText(s string) string {
	return wsRe.ReplaceAllString(strings.TrimSpace(s), " ")
}
