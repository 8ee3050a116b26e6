package board

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger builds the run logger. An empty file logs to stderr; the
// returned close func is then a no-op. Color is only used on a local stderr.
func NewLogger(level, file string) (*slog.Logger, func() error, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lv = slog.LevelInfo
	}
	var w io.Writer = os.Stderr
	noColor := os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
	closeFn := func() error { return nil }
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn, noColor = f, f.Close, true
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lv,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	})), closeFn, nil
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
