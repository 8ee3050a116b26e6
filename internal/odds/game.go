package odds

import (
	"log/slog"

	"github.com/PuerkitoBio/goquery"
)

// A game block is five rows: empty, away team, home team, date/channel, empty.
const (
	gameBlockRows = 5
	awayRow       = 1
	homeRow       = 2
	dateRow       = 3
	teamRowCells  = 7
)

// GameBlock is the group of table rows describing one game.
type GameBlock struct {
	Rows []*goquery.Selection
}

func (b GameBlock) row(i int) *goquery.Selection {
	if i < 0 || i >= len(b.Rows) {
		return nil
	}
	return b.Rows[i]
}

func (b GameBlock) cells(i int) []*goquery.Selection {
	r := b.row(i)
	if r == nil {
		return nil
	}
	var out []*goquery.Selection
	r.Find("td").Each(func(_ int, td *goquery.Selection) {
		out = append(out, td)
	})
	return out
}

func cellAt(cells []*goquery.Selection, i int) *goquery.Selection {
	if i < len(cells) {
		return cells[i]
	}
	return nil
}

// buildRecord turns one game block into a record for plan's schema. game is
// the 1-based position of the block in the table and only labels log output.
// Shape anomalies are logged and the missing values left empty; a block with
// no team cells at all fails with ErrNoTeamRows.
func buildRecord(block GameBlock, game int, plan tablePlan, lg *slog.Logger) (Record, error) {
	if len(block.Rows) != gameBlockRows {
		lg.Warn("unexpected row count in game block", "game", game, "rows", len(block.Rows), "want", gameBlockRows)
	}

	away := block.cells(awayRow)
	home := block.cells(homeRow)
	if len(away) == 0 && len(home) == 0 {
		return Record{}, ErrNoTeamRows
	}
	if len(away) != len(home) {
		lg.Warn("away and home cell counts differ", "game", game, "away", len(away), "home", len(home))
	}
	if len(away) != teamRowCells {
		lg.Warn("unexpected cell count", "game", game, "side", "away", "cells", len(away), "want", teamRowCells)
	}
	if len(home) != teamRowCells {
		lg.Warn("unexpected cell count", "game", game, "side", "home", "cells", len(home), "want", teamRowCells)
	}

	values := make([]Value, 0, len(plan.schema))
	for i, role := range plan.roles {
		f := fieldCtx{lg: lg, game: game, column: role.column}
		a, h := cellAt(away, i), cellAt(home, i)

		switch role.kind {
		case cellNameRecord:
			names, records := extractNameRecord(f, a, h)
			values = append(values, PairValue(names.Away, names.Home), PairValue(records.Away, records.Home))

		case cellProjScore:
			values = append(values, Value{})

		case cellOdds:
			cur, ok := extractCurrent(f, a, h, plan.layout)
			if !ok {
				values = append(values, Value{})
				if role.withOpen {
					values = append(values, Value{})
				}
				continue
			}
			values = append(values, PairValue(cur.Away, cur.Home))
			if role.withOpen {
				values = append(values, Value{Pair: extractOpen(f, a, h)})
			}
		}
	}

	date := extractDate(fieldCtx{lg: lg, game: game, column: dateColumn + plan.layout.Suffix()}, block.row(dateRow))
	values = append(values, TextValue(date))

	rec, err := NewRecord(plan.schema, values)
	if err != nil {
		return Record{}, err
	}
	lg.Debug("parsed game", "game", game, "values", len(values))
	return rec, nil
}
