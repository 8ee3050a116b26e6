package odds

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	DefaultMoneylineURL = "https://www.sportsline.com/nfl/odds/money-line/"
	DefaultSpreadURL    = "https://www.sportsline.com/nfl/odds/picks-against-the-spread/"
)

var httpCli = &http.Client{Timeout: 30 * time.Second}
var ua = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119 Safari/537.36 (+odds-board)"

// getText does a single GET. Any non-200 answer is a *FetchError; there is
// no retry.
func getText(ctx context.Context, cli *http.Client, url string) (string, error) {
	if cli == nil {
		cli = httpCli
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	resp, err := cli.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FetchRecordSet downloads one odds page and assembles its table.
func FetchRecordSet(ctx context.Context, cli *http.Client, url string, layout Layout, lg *slog.Logger) (RecordSet, error) {
	if lg == nil {
		lg = slog.Default()
	}
	html, err := getText(ctx, cli, url)
	if err != nil {
		lg.Error("odds page fetch failed", "url", url, "layout", layout.String(), "err", err)
		return RecordSet{}, fmt.Errorf("fetch %s page: %w", layout, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return RecordSet{}, fmt.Errorf("parse %s page: %w", layout, err)
	}
	raw, err := ReadTable(doc)
	if err != nil {
		return RecordSet{}, fmt.Errorf("%s page: %w", layout, err)
	}
	lg.Info("found games", "layout", layout.String(), "url", url, "blocks", len(raw.Blocks))
	return Assemble(raw, layout, lg)
}
