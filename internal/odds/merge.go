package odds

import (
	"log/slog"
	"strings"
)

// MergeReport lists the games an inner join left out. DuplicateKeys holds
// each matchup key seen more than once on either side, once per key.
type MergeReport struct {
	UnmatchedMoneyline []Pair
	UnmatchedSpread    []Pair
	DuplicateKeys      []string
}

// Dropped counts the games left out of the join.
func (r MergeReport) Dropped() int {
	return len(r.UnmatchedMoneyline) + len(r.UnmatchedSpread)
}

// spreadColumns keeps the spread set's matchup column, renamed without its
// suffix, and its odds and opening-line columns. Date and record duplicate
// the moneyline set and are dropped.
func spreadColumns(spread RecordSet) RecordSet {
	kept := spread.Select(func(c Column) bool {
		return c.Kind == KindMatchup || c.Kind == KindCurrent || c.Kind == KindOpen
	})
	return kept.Rename(func(c Column) Column {
		if c.Kind == KindMatchup {
			c.Name = strings.TrimSuffix(c.Name, Spread.Suffix())
		}
		return c
	})
}

// Merge inner-joins the moneyline and spread sets on the matchup key. Rows
// whose key is missing from the other side are left out and listed in the
// report. Each spread row joins at most one moneyline row, so the result
// never has more rows than the smaller input.
func Merge(moneyline, spread RecordSet, lg *slog.Logger) (RecordSet, MergeReport) {
	if lg == nil {
		lg = slog.Default()
	}
	var rep MergeReport

	sp := spreadColumns(spread)
	mlKey := moneyline.schema.IndexKind(KindMatchup)
	spKey := sp.schema.IndexKind(KindMatchup)

	schema := make(Schema, 0, len(moneyline.schema)+len(sp.schema))
	schema = append(schema, moneyline.schema...)
	for i, c := range sp.schema {
		if i != spKey {
			schema = append(schema, c)
		}
	}

	if mlKey < 0 || spKey < 0 {
		lg.Warn("matchup column missing, nothing to join", "moneyline", mlKey >= 0, "spread", spKey >= 0)
		return RecordSet{schema: schema}, rep
	}

	dups := make(map[string]struct{})
	addDup := func(k string) {
		if _, ok := dups[k]; !ok {
			dups[k] = struct{}{}
			rep.DuplicateKeys = append(rep.DuplicateKeys, k)
		}
	}

	// key → queue of spread row indexes, in document order
	byKey := make(map[string][]int, sp.Len())
	for i, r := range sp.records {
		p := r.values[spKey].Pair
		k := MatchupKey(p)
		if k == "" {
			rep.UnmatchedSpread = append(rep.UnmatchedSpread, p)
			continue
		}
		if len(byKey[k]) > 0 {
			addDup(k)
		}
		byKey[k] = append(byKey[k], i)
	}

	mlSeen := make(map[string]struct{}, moneyline.Len())
	records := make([]Record, 0, min(moneyline.Len(), sp.Len()))
	for _, r := range moneyline.records {
		p := r.values[mlKey].Pair
		k := MatchupKey(p)
		if k != "" {
			if _, ok := mlSeen[k]; ok {
				addDup(k)
			}
			mlSeen[k] = struct{}{}
		}
		q := byKey[k]
		if k == "" || len(q) == 0 {
			rep.UnmatchedMoneyline = append(rep.UnmatchedMoneyline, p)
			continue
		}
		byKey[k] = q[1:]

		vs := make([]Value, 0, len(schema))
		vs = append(vs, r.values...)
		for i, v := range sp.records[q[0]].values {
			if i != spKey {
				vs = append(vs, v)
			}
		}
		records = append(records, Record{values: vs})
	}

	left := make(map[int]struct{})
	for _, q := range byKey {
		for _, j := range q {
			left[j] = struct{}{}
		}
	}
	for i, r := range sp.records {
		if _, ok := left[i]; ok {
			rep.UnmatchedSpread = append(rep.UnmatchedSpread, r.values[spKey].Pair)
		}
	}

	for _, p := range rep.UnmatchedMoneyline {
		lg.Warn("moneyline game has no spread match", "away", p.Away, "home", p.Home)
	}
	for _, p := range rep.UnmatchedSpread {
		lg.Warn("spread game has no moneyline match", "away", p.Away, "home", p.Home)
	}
	for _, k := range rep.DuplicateKeys {
		lg.Warn("duplicate matchup", "key", k)
	}
	lg.Info("merged odds", "moneyline", moneyline.Len(), "spread", spread.Len(), "merged", len(records))

	return RecordSet{schema: schema, records: records}, rep
}
