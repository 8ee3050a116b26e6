package odds

import "strings"

// DefaultReportBook is the sportsbook shown in the email report.
const DefaultReportBook = "consensus"

// Project reduces a merged set to the email report columns: matchup,
// record, and book's current and opening lines in both layouts.
func Project(merged RecordSet, book string) RecordSet {
	if book == "" {
		book = DefaultReportBook
	}
	return merged.Select(func(c Column) bool {
		switch c.Kind {
		case KindMatchup, KindRecord:
			return true
		case KindCurrent, KindOpen:
			return strings.EqualFold(c.Book, book)
		}
		return false
	})
}
