package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"

	"github.com/tyler180/nfl-odds-board/internal/config"
	"github.com/tyler180/nfl-odds-board/internal/odds"
	"github.com/tyler180/nfl-odds-board/internal/report"
	"github.com/tyler180/nfl-odds-board/internal/store"
)

// LambdaEntrypoint is the single Lambda handler exported from this package.
func LambdaEntrypoint(ctx context.Context, raw Raw) (string, error) {
	var e Event
	_ = json.Unmarshal(raw, &e)

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	// event values apply to this invocation only; no os.Setenv, warm lambdas would keep them
	cfg.Mode = firstNonEmpty(e.Mode, cfg.Mode)
	cfg.Email.Book = firstNonEmpty(e.Book, cfg.Email.Book)
	cfg.Board.Name = firstNonEmpty(e.Board, cfg.Board.Name)

	lg, closeLog, err := NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return "", err
	}
	defer closeLog()

	deps, err := AWSDeps(ctx, cfg)
	if err != nil {
		return "", err
	}
	deps.Logger = lg

	res, err := Run(ctx, cfg, deps)
	if err != nil {
		return "", err
	}
	b, _ := json.Marshal(res)
	return string(b), nil
}

// AWSDeps builds the AWS clients the configured mode needs. Modes that
// only write local files get none.
func AWSDeps(ctx context.Context, cfg config.Config) (Deps, error) {
	mode, err := config.ParseMode(cfg.Mode)
	if err != nil {
		return Deps{}, err
	}
	_, _, toS3 := store.ParseS3URL(cfg.Output.Path)
	if !mode.Board && !(mode.TSV && toS3) {
		return Deps{}, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return Deps{}, fmt.Errorf("aws config: %w", err)
	}
	return Deps{
		DDB: dynamodb.NewFromConfig(awsCfg),
		S3:  s3.NewFromConfig(awsCfg),
	}, nil
}

// Fetch downloads both odds pages in parallel and merges them. Either
// fetch failing fails the whole run.
func Fetch(ctx context.Context, cfg config.Config, deps Deps) (ml, sp odds.RecordSet, merged odds.RecordSet, rep odds.MergeReport, err error) {
	lg := logger(deps)
	cli := deps.HTTP
	if cli == nil {
		cli = &http.Client{Timeout: cfg.Sources.Timeout}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ml, err = odds.FetchRecordSet(gctx, cli, cfg.Sources.MoneylineURL, odds.Moneyline, lg)
		return err
	})
	g.Go(func() error {
		var err error
		sp, err = odds.FetchRecordSet(gctx, cli, cfg.Sources.SpreadURL, odds.Spread, lg)
		return err
	})
	if err = g.Wait(); err != nil {
		return
	}
	merged, rep = odds.Merge(ml, sp, lg)
	return
}

// Run fetches, merges and writes the outputs the mode asks for.
func Run(ctx context.Context, cfg config.Config, deps Deps) (Result, error) {
	mode, err := config.ParseMode(cfg.Mode)
	if err != nil {
		return Result{}, err
	}
	lg := logger(deps)
	now := time.Now()
	if deps.Now != nil {
		now = deps.Now()
	}

	ml, sp, merged, rep, err := Fetch(ctx, cfg, deps)
	if err != nil {
		return Result{}, err
	}
	res := Result{Moneyline: ml.Len(), Spread: sp.Len(), Games: merged.Len(), Merge: rep}
	if n := rep.Dropped(); n > 0 {
		lg.Warn("games left out of the board", "dropped", n, "duplicates", len(rep.DuplicateKeys))
	}

	if mode.TSV {
		if res.File, err = writeTSV(ctx, cfg, deps, merged, now); err != nil {
			return res, fmt.Errorf("tsv: %w", err)
		}
		lg.Info("wrote odds file", "path", res.File, "games", merged.Len())
	}
	if mode.Email {
		if err = sendEmail(cfg, deps, merged, rep, now); err != nil {
			return res, fmt.Errorf("email: %w", err)
		}
		res.Emailed = cfg.Email.To
		lg.Info("emailed odds", "to", cfg.Email.To, "book", cfg.Email.Book)
	}
	if mode.Board {
		if deps.DDB == nil {
			return res, errors.New("board: no dynamodb client")
		}
		n, err := store.PutBoard(ctx, deps.DDB, cfg.Board.Table, cfg.Board.Name, merged, cfg.Board.TTL, now)
		if err != nil {
			return res, fmt.Errorf("board: %w", err)
		}
		res.BoardItems = n
		lg.Info("updated board", "table", cfg.Board.Table, "board", cfg.Board.Name, "items", n)
	}
	return res, nil
}

func writeTSV(ctx context.Context, cfg config.Config, deps Deps, merged odds.RecordSet, now time.Time) (string, error) {
	sink, err := store.OutputSink(cfg.Output.Path, deps.S3)
	if err != nil {
		return "", err
	}
	body, err := report.EncodeTSV(merged)
	if err != nil {
		return "", err
	}
	return sink.Put(ctx, report.FileName(now), body)
}

func sendEmail(cfg config.Config, deps Deps, merged odds.RecordSet, rep odds.MergeReport, now time.Time) error {
	if cfg.Email.SMTPHost == "" {
		return errors.New("SMTP_HOST is required")
	}
	mail, err := report.BuildEmail(cfg.Email.Sender, cfg.Email.To, report.Board{
		Title:     report.Subject(now),
		Book:      cfg.Email.Book,
		Generated: now,
		Set:       odds.Project(merged, cfg.Email.Book),
		Merge:     rep,
	})
	if err != nil {
		return err
	}
	send := deps.Send
	if send == nil {
		send = report.Send
	}
	return send(mail, report.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
	})
}

func logger(deps Deps) *slog.Logger {
	if deps.Logger != nil {
		return deps.Logger
	}
	return slog.Default()
}
