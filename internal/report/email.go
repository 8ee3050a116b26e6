package report

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
	"time"

	"github.com/jordan-wright/email"

	"github.com/tyler180/nfl-odds-board/internal/odds"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (c SMTPConfig) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// Board is what the email shows: the projected odds plus the games the
// merge could not pair up.
type Board struct {
	Title     string
	Book      string
	Generated time.Time
	Set       odds.RecordSet
	Merge     odds.MergeReport
}

var boardTmpl = template.Must(template.New("board").Parse(`<html><body>
<h2>{{.Title}}</h2>
<p>{{.Book}} lines, {{.Generated.Format "Mon Jan 2 15:04 MST"}}</p>
<table border="1" cellpadding="4" cellspacing="0">
<thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range $row := .Rows}}
<tr>{{range $row}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{- if .Unmatched}}
<p>Left out (no line in both tables):</p>
<ul>{{range .Unmatched}}<li>{{.Away}} @ {{.Home}}</li>{{end}}</ul>
{{- end}}
</body></html>
`))

// RenderHTML renders the board as an HTML table, one column per field.
func RenderHTML(b Board) (string, error) {
	header, rows := b.Set.Flatten()
	var unmatched []odds.Pair
	unmatched = append(unmatched, b.Merge.UnmatchedMoneyline...)
	unmatched = append(unmatched, b.Merge.UnmatchedSpread...)

	var buf bytes.Buffer
	err := boardTmpl.Execute(&buf, map[string]any{
		"Title":     b.Title,
		"Book":      b.Book,
		"Generated": b.Generated,
		"Header":    header,
		"Rows":      rows,
		"Unmatched": unmatched,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BuildEmail addresses the rendered board from sender to every recipient.
func BuildEmail(sender string, to []string, b Board) (*email.Email, error) {
	if sender == "" {
		return nil, errors.New("report: no sender address")
	}
	if len(to) == 0 {
		return nil, errors.New("report: no recipients")
	}
	body, err := RenderHTML(b)
	if err != nil {
		return nil, fmt.Errorf("render board: %w", err)
	}
	mail := email.NewEmail()
	mail.From = fmt.Sprintf("NFL Odds <%s>", sender)
	mail.To = to
	mail.Subject = b.Title
	mail.HTML = []byte(body)
	return mail, nil
}

// Send delivers mail through cfg. Servers without AUTH get a second,
// unauthenticated attempt.
func Send(mail *email.Email, cfg SMTPConfig) error {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	err := mail.Send(cfg.Addr(), auth)
	if err != nil && auth != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(cfg.Addr(), nil)
	}
	if err != nil {
		return fmt.Errorf("send to %s: %w", cfg.Addr(), err)
	}
	return nil
}

// Subject is the default email subject for a board generated at t.
func Subject(t time.Time) string {
	return "NFL odds " + t.Format("Jan 2, 2006")
}
