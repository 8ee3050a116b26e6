package odds

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
)

// RawTable is the page's odds table: header labels and game blocks in
// document order.
type RawTable struct {
	Header []string
	Blocks []GameBlock
}

// ReadTable locates the first table of the page and splits it into header
// labels and one block per tbody.
func ReadTable(doc *goquery.Document) (RawTable, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return RawTable{}, ErrNoTable
	}

	var raw RawTable
	table.Find("thead th").Each(func(_ int, th *goquery.Selection) {
		raw.Header = append(raw.Header, th.Text())
	})
	table.Find("tbody").Each(func(_ int, tb *goquery.Selection) {
		var b GameBlock
		tb.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			b.Rows = append(b.Rows, tr)
		})
		raw.Blocks = append(raw.Blocks, b)
	})
	return raw, nil
}

// Assemble builds the record set of one table: schema from the header, one
// record per game block, projected score column dropped.
func Assemble(raw RawTable, layout Layout, lg *slog.Logger) (RecordSet, error) {
	if lg == nil {
		lg = slog.Default()
	}
	if len(raw.Header) == 0 {
		return RecordSet{}, ErrNoHeader
	}

	plan := newPlan(raw.Header, layout)
	lg.Info("columns", "layout", layout.String(), "columns", plan.schema.Names())
	lg.Info("begin parsing game data", "layout", layout.String(), "games", len(raw.Blocks))

	records := make([]Record, 0, len(raw.Blocks))
	for i, b := range raw.Blocks {
		rec, err := buildRecord(b, i+1, plan, lg)
		if errors.Is(err, ErrNoTeamRows) {
			lg.Warn("skipping game block without team rows", "game", i+1, "rows", len(b.Rows))
			continue
		}
		if err != nil {
			return RecordSet{}, fmt.Errorf("game %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	lg.Info("finished parsing game data", "layout", layout.String(), "records", len(records))

	full, err := NewRecordSet(plan.schema, records)
	if err != nil {
		return RecordSet{}, err
	}
	return full.Select(func(c Column) bool { return c.Kind != KindProjScore }), nil
}

// AssembleDocument is ReadTable followed by Assemble.
func AssembleDocument(doc *goquery.Document, layout Layout, lg *slog.Logger) (RecordSet, error) {
	raw, err := ReadTable(doc)
	if err != nil {
		return RecordSet{}, err
	}
	return Assemble(raw, layout, lg)
}
