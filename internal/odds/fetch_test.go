package odds

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/tyler180/nfl-odds-board/internal/odds/oddstest"
)

func TestFetchRecordSet_OK(t *testing.T) {
	page := oddstest.Page(oddstest.DefaultHeader(), slate(3))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent")
		}
		w.Write([]byte(page))
	}))
	defer srv.Close()

	_, lg := newRecorder()
	rs, err := FetchRecordSet(context.Background(), srv.Client(), srv.URL, Moneyline, lg)
	if err != nil {
		t.Fatalf("FetchRecordSet: %v", err)
	}
	if rs.Len() != 3 {
		t.Fatalf("records = %d, want 3", rs.Len())
	}
}

func TestFetchRecordSet_NonOKIsFatal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, lg := newRecorder()
	_, err := FetchRecordSet(context.Background(), srv.Client(), srv.URL, Spread, lg)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
	if fe.StatusCode != http.StatusServiceUnavailable || fe.URL != srv.URL {
		t.Errorf("fetch error = %+v", fe)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", n)
	}
}

func TestFetchRecordSet_PageWithoutTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>no games this week</body></html>"))
	}))
	defer srv.Close()

	_, err := FetchRecordSet(context.Background(), srv.Client(), srv.URL, Moneyline, nil)
	if !errors.Is(err, ErrNoTable) {
		t.Fatalf("err = %v, want ErrNoTable", err)
	}
}
