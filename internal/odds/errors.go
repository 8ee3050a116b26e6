package odds

import (
	"errors"
	"fmt"
)

var (
	ErrNoTable      = errors.New("odds table not found")
	ErrNoHeader     = errors.New("odds table has no header labels")
	ErrNoTeamRows   = errors.New("game block has no team rows")
	ErrRecordLength = errors.New("record length does not match schema")
)

// FetchError is returned when the odds page answers with a non-200 status.
// It is fatal to a run.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("status %d for %s", e.StatusCode, e.URL)
}
