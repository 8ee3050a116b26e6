package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ODDS_CONFIG", "")
	t.Setenv("MODE", "")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "tsv" || cfg.Sources.Timeout != 30*time.Second || cfg.Email.Book != "consensus" {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "odds.yaml")
	err := os.WriteFile(p, []byte(`
sources:
  timeout: 5s
output:
  path: s3://odds-bucket/boards
email:
  sender: odds@example.com
  to: [a@example.com]
  smtp_host: smtp.example.com
board:
  ttl: 48h
mode: all
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("ODDS_CONFIG", p)
	t.Setenv("ODDS_EMAIL_TO", "b@example.com, c@example.com")
	t.Setenv("HTTP_TIMEOUT_MS", "2500")
	t.Setenv("MODE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Path != "s3://odds-bucket/boards" || cfg.Email.SMTPHost != "smtp.example.com" {
		t.Errorf("file values lost: %+v", cfg)
	}
	if diff := cmp.Diff([]string{"b@example.com", "c@example.com"}, cfg.Email.To); diff != "" {
		t.Errorf("recipients (-want +got):\n%s", diff)
	}
	if cfg.Sources.Timeout != 2500*time.Millisecond {
		t.Errorf("timeout = %s, env should win", cfg.Sources.Timeout)
	}
	if cfg.Board.TTL != 48*time.Hour || cfg.Mode != "all" {
		t.Errorf("board ttl %s mode %q", cfg.Board.TTL, cfg.Mode)
	}
	if cfg.Sources.MoneylineURL == "" {
		t.Error("unset file keys should keep their defaults")
	}
}

func TestLoad_BadMode(t *testing.T) {
	t.Setenv("ODDS_CONFIG", "")
	t.Setenv("MODE", "fax")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"":      {TSV: true},
		"TSV":   {TSV: true},
		"email": {Email: true},
		"board": {Board: true},
		"all":   {TSV: true, Email: true, Board: true},
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %+v, %v", in, got, err)
		}
	}
}
