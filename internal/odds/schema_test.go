package odds

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpandHeader_OpenColumnsRecordAndDate(t *testing.T) {
	got := ExpandHeader([]string{"Matchup", "Proj Score", "consensus", "draftkings"}, Moneyline).Names()
	want := []string{"Matchup", "record", "Proj Score", "consensus", "consensus_open", "draftkings", "draftkings_open", "date"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandHeader_LogoColumnAndBooksWithoutOpen(t *testing.T) {
	got := ExpandHeader([]string{"Matchup", "Proj Score", "consensus", " ", "betmgm", "westgate"}, Moneyline).Names()
	want := []string{
		"Matchup", "record", "Proj Score",
		"consensus", "consensus_open",
		"caesars", "caesars_open",
		"betmgm",
		"westgate", "westgate_open",
		"date",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandHeader_SpreadSuffix(t *testing.T) {
	got := ExpandHeader([]string{"Matchup", "Proj Score", "consensus"}, Spread).Names()
	want := []string{"Matchup_spread", "record_spread", "Proj Score_spread", "consensus_spread", "consensus_open_spread", "date_spread"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandHeader_Kinds(t *testing.T) {
	s := ExpandHeader([]string{"Matchup", "Proj Score", "", "fanduel"}, Moneyline)
	want := []ColumnKind{KindMatchup, KindRecord, KindProjScore, KindCurrent, KindOpen, KindCurrent, KindOpen, KindDate}
	var got []ColumnKind
	for _, c := range s {
		got = append(got, c.Kind)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if s[3].Book != ImageBookAlias || s[4].Book != ImageBookAlias {
		t.Errorf("logo column book = %q/%q, want %q", s[3].Book, s[4].Book, ImageBookAlias)
	}
}

func TestExpandHeader_Idempotent(t *testing.T) {
	for _, layout := range []Layout{Moneyline, Spread} {
		labels := []string{"Matchup", "Proj Score", "consensus", "", "draftkings", "fanduel", "westgate"}
		a := ExpandHeader(labels, layout)
		b := ExpandHeader(labels, layout)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("%s: expansion not stable (-first +second):\n%s", layout, diff)
		}
	}
}

func TestSchemaFields_FlattensPairs(t *testing.T) {
	s := Schema{
		{Name: "Matchup", Kind: KindMatchup},
		{Name: "consensus", Kind: KindCurrent, Book: "consensus"},
		{Name: "date", Kind: KindDate},
	}
	want := []string{"Matchup_away", "Matchup_home", "consensus_away", "consensus_home", "date"}
	if diff := cmp.Diff(want, s.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLayout(t *testing.T) {
	cases := map[string]Layout{"moneyline": Moneyline, " Spread ": Spread, "ml": Moneyline}
	for in, want := range cases {
		got, err := ParseLayout(in)
		if err != nil || got != want {
			t.Errorf("ParseLayout(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLayout("totals"); err == nil {
		t.Error("ParseLayout(totals) should fail")
	}
}

func TestExpandHeader_PositionOneIsProjectedScore(t *testing.T) {
	s := ExpandHeader([]string{" Matchup ", "Proj\n\t Score", "  consensus\n"}, Moneyline)
	want := []string{"Matchup", "record", "Proj Score", "consensus", "consensus_open", "date"}
	if diff := cmp.Diff(want, s.Names()); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
	if s[2].Kind != KindProjScore {
		t.Errorf("position 1 kind = %s, want proj_score", s[2].Kind)
	}

	s = ExpandHeader([]string{"Matchup", "Line", "consensus"}, Moneyline)
	if s[2].Kind != KindProjScore || s[2].Name != "Line" {
		t.Errorf("position 1 = %+v, want a proj_score column", s[2])
	}
}
