package board

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jordan-wright/email"

	"github.com/tyler180/nfl-odds-board/internal/odds"
	"github.com/tyler180/nfl-odds-board/internal/report"
	"github.com/tyler180/nfl-odds-board/internal/store"
)

// Event is the Lambda payload. Empty fields fall back to the environment.
type Event struct {
	Mode  string `json:"mode"`  // tsv | email | board | all
	Book  string `json:"book"`  // sportsbook shown in the email, e.g. "draftkings"
	Board string `json:"board"` // board partition, e.g. "nfl"
}

// Raw is used by Lambda entrypoint to avoid tight coupling to the event type at the edge.
type Raw = json.RawMessage

// Deps are the clients a run talks to. Nil clients are only an error for
// the modes that need them.
type Deps struct {
	HTTP   *http.Client
	DDB    store.DynamoDBAPI
	S3     store.S3PutAPI
	Send   func(*email.Email, report.SMTPConfig) error
	Now    func() time.Time
	Logger *slog.Logger
}

// Result summarizes one run.
type Result struct {
	Moneyline  int              `json:"moneyline"`
	Spread     int              `json:"spread"`
	Games      int              `json:"games"`
	Merge      odds.MergeReport `json:"merge"`
	File       string           `json:"file,omitempty"`
	Emailed    []string         `json:"emailed,omitempty"`
	BoardItems int              `json:"board_items,omitempty"`
}
