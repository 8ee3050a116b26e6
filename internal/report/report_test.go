package report

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tyler180/nfl-odds-board/internal/odds"
)

func sampleSet(t *testing.T) odds.RecordSet {
	t.Helper()
	schema := odds.Schema{
		{Name: "Matchup", Kind: odds.KindMatchup},
		{Name: "record", Kind: odds.KindRecord},
		{Name: "consensus", Kind: odds.KindCurrent, Book: "consensus"},
		{Name: "date", Kind: odds.KindDate},
	}
	var recs []odds.Record
	for _, vs := range [][]odds.Value{
		{odds.PairValue("BUF", "DET"), odds.PairValue("10-3", "11-2"), odds.PairValue("+130", "-150"), odds.TextValue("Sun, Dec 15 4:25 PM ET")},
		{odds.PairValue("KC", "CLE"), odds.PairValue("12-1", "3-10"), odds.PairValue("", ""), odds.TextValue("Sun, Dec 15 1:00 PM ET")},
	} {
		r, err := odds.NewRecord(schema, vs)
		if err != nil {
			t.Fatal(err)
		}
		recs = append(recs, r)
	}
	rs, err := odds.NewRecordSet(schema, recs)
	if err != nil {
		t.Fatal(err)
	}
	return rs
}

func TestFileName(t *testing.T) {
	got := FileName(time.Date(2024, 12, 5, 9, 7, 0, 0, time.UTC))
	if got != "odds_12_05_2024_09_07.tsv" {
		t.Fatalf("FileName = %q", got)
	}
}

func TestWriteTSV(t *testing.T) {
	b, err := EncodeTSV(sampleSet(t))
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"Matchup_away\tMatchup_home\trecord_away\trecord_home\tconsensus_away\tconsensus_home\tdate",
		"BUF\tDET\t10-3\t11-2\t+130\t-150\tSun, Dec 15 4:25 PM ET",
		"KC\tCLE\t12-1\t3-10\t\t\tSun, Dec 15 1:00 PM ET",
		"",
	}, "\n")
	if diff := cmp.Diff(want, string(b)); diff != "" {
		t.Fatalf("tsv (-want +got):\n%s", diff)
	}
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(Board{
		Title:     "NFL odds",
		Book:      "consensus",
		Generated: time.Date(2024, 12, 15, 9, 0, 0, 0, time.UTC),
		Set:       sampleSet(t),
		Merge:     odds.MergeReport{UnmatchedSpread: []odds.Pair{{Away: "NYJ", Home: "<script>"}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<h2>NFL odds</h2>",
		"<th>consensus_home</th>",
		"<td>BUF</td><td>DET</td>",
		"<td>-150</td>",
		"NYJ @ &lt;script&gt;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "<tr>") != 3 {
		t.Errorf("want header + 2 rows, got:\n%s", out)
	}
}

func TestBuildEmail(t *testing.T) {
	b := Board{Title: Subject(time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)), Set: sampleSet(t)}
	if _, err := BuildEmail("", []string{"a@example.com"}, b); err == nil {
		t.Error("expected error without sender")
	}
	if _, err := BuildEmail("odds@example.com", nil, b); err == nil {
		t.Error("expected error without recipients")
	}

	mail, err := BuildEmail("odds@example.com", []string{"a@example.com", "b@example.com"}, b)
	if err != nil {
		t.Fatal(err)
	}
	if mail.Subject != "NFL odds Dec 15, 2024" || mail.From != "NFL Odds <odds@example.com>" {
		t.Errorf("subject %q from %q", mail.Subject, mail.From)
	}
	if len(mail.To) != 2 || !strings.Contains(string(mail.HTML), "<td>KC</td>") {
		t.Errorf("to %v html %s", mail.To, mail.HTML)
	}
}
