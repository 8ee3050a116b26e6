// Package config loads run settings from an optional YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tyler180/nfl-odds-board/internal/odds"
)

type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	Output  OutputConfig  `yaml:"output"`
	Email   EmailConfig   `yaml:"email"`
	Board   BoardConfig   `yaml:"board"`
	Log     LogConfig     `yaml:"log"`
	Mode    string        `yaml:"mode"` // tsv | email | board | all
}

type SourcesConfig struct {
	MoneylineURL string        `yaml:"moneyline_url"`
	SpreadURL    string        `yaml:"spread_url"`
	Timeout      time.Duration `yaml:"timeout"`
}

type OutputConfig struct {
	Path string `yaml:"path"` // local dir or s3://bucket/prefix; files go under <path>/data
}

type EmailConfig struct {
	Sender   string   `yaml:"sender"`
	To       []string `yaml:"to"`
	Book     string   `yaml:"book"`
	SMTPHost string   `yaml:"smtp_host"`
	SMTPPort int      `yaml:"smtp_port"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
}

type BoardConfig struct {
	Table string        `yaml:"table"`
	Name  string        `yaml:"name"`
	TTL   time.Duration `yaml:"ttl"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Sources: SourcesConfig{
			MoneylineURL: odds.DefaultMoneylineURL,
			SpreadURL:    odds.DefaultSpreadURL,
			Timeout:      30 * time.Second,
		},
		Output: OutputConfig{Path: "."},
		Email:  EmailConfig{Book: odds.DefaultReportBook, SMTPPort: 587},
		Board:  BoardConfig{Table: "nfl_odds_board", Name: "nfl", TTL: 7 * 24 * time.Hour},
		Log:    LogConfig{Level: "info"},
		Mode:   "tsv",
	}
}

// Load reads .env (if present), then the YAML file named by ODDS_CONFIG
// (if set), then environment overrides.
func Load() (Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Default()
	if p := envStr("ODDS_CONFIG", ""); p != "" {
		if err := loadFile(p, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	return cfg, cfg.Validate()
}

func loadFile(p string, cfg *Config) error {
	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Sources.MoneylineURL = envStr("ODDS_MONEYLINE_URL", cfg.Sources.MoneylineURL)
	cfg.Sources.SpreadURL = envStr("ODDS_SPREAD_URL", cfg.Sources.SpreadURL)
	if ms := envInt("HTTP_TIMEOUT_MS", 0); ms > 0 {
		cfg.Sources.Timeout = time.Duration(ms) * time.Millisecond
	}
	cfg.Output.Path = envStr("ODDS_PATH", cfg.Output.Path)

	cfg.Email.Sender = envStr("ODDS_SENDER", cfg.Email.Sender)
	if to := envStr("ODDS_EMAIL_TO", ""); to != "" {
		cfg.Email.To = splitList(to)
	}
	cfg.Email.Book = envStr("ODDS_EMAIL_BOOK", cfg.Email.Book)
	cfg.Email.SMTPHost = envStr("SMTP_HOST", cfg.Email.SMTPHost)
	cfg.Email.SMTPPort = envInt("SMTP_PORT", cfg.Email.SMTPPort)
	cfg.Email.Username = envStr("SMTP_USERNAME", cfg.Email.Username)
	cfg.Email.Password = envStr("SMTP_PASSWORD", cfg.Email.Password)

	cfg.Board.Table = envStr("BOARD_TABLE_NAME", cfg.Board.Table)
	cfg.Board.Name = envStr("BOARD_NAME", cfg.Board.Name)
	if h := envInt("BOARD_TTL_HOURS", 0); h > 0 {
		cfg.Board.TTL = time.Duration(h) * time.Hour
	}

	cfg.Log.File = envStr("LOG_FILE", cfg.Log.File)
	cfg.Log.Level = envStr("LOG_LEVEL", cfg.Log.Level)
	cfg.Mode = envStr("MODE", cfg.Mode)
}

// Validate checks the settings every mode needs. Mode-specific settings
// (sender, table) are checked when the mode runs.
func (c Config) Validate() error {
	if c.Sources.MoneylineURL == "" || c.Sources.SpreadURL == "" {
		return fmt.Errorf("config: both odds page URLs are required")
	}
	if c.Sources.Timeout <= 0 {
		return fmt.Errorf("config: http timeout must be positive, got %s", c.Sources.Timeout)
	}
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}
	return nil
}

// Mode selects the outputs of a run.
type Mode struct {
	TSV   bool
	Email bool
	Board bool
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tsv":
		return Mode{TSV: true}, nil
	case "email":
		return Mode{Email: true}, nil
	case "board":
		return Mode{Board: true}, nil
	case "all":
		return Mode{TSV: true, Email: true, Board: true}, nil
	}
	return Mode{}, fmt.Errorf("unknown mode %q", s)
}

// ------------------ env helpers ------------------

func envStr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}
func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
