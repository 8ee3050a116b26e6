// Package report renders merged odds boards: the tab-separated data file
// and the HTML email.
package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"time"

	"github.com/tyler180/nfl-odds-board/internal/odds"
)

// FileName is the data file name for a run started at t.
func FileName(t time.Time) string {
	return "odds_" + t.Format("01_02_2006_15_04") + ".tsv"
}

// WriteTSV writes the flattened header and one line per record. Pair
// columns become two adjacent fields, _away then _home.
func WriteTSV(w io.Writer, set odds.RecordSet) error {
	header, rows := set.Flatten()
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func EncodeTSV(set odds.RecordSet) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTSV(&buf, set); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
