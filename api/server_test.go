package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/seenimoa/stockinsight/internal/compare"
	"github.com/seenimoa/stockinsight/internal/config"
	"github.com/seenimoa/stockinsight/internal/datasource"
	"github.com/seenimoa/stockinsight/internal/provider"
	"github.com/seenimoa/stockinsight/pkg/models"
)

type stubProvider struct {
	quotes map[string]*models.RawQuote
}

func (s *stubProvider) Info() provider.Info          { return provider.Info{Name: "stub"} }
func (s *stubProvider) Init(map[string]string) error { return nil }
func (s *stubProvider) Ping(context.Context) error   { return nil }

func (s *stubProvider) Quote(_ context.Context, symbol string) (*models.RawQuote, error) {
	q, ok := s.quotes[symbol]
	if !ok {
		return nil, provider.ErrTickerNotFound
	}
	return q, nil
}

func (s *stubProvider) History(_ context.Context, symbol string, _ int) ([]models.PricePoint, error) {
	if _, ok := s.quotes[symbol]; !ok {
		return nil, provider.ErrTickerNotFound
	}
	return []models.PricePoint{
		{Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Close: 100},
		{Date: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), Close: 104},
	}, nil
}

func testServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Markets: config.MarketsConfig{DomesticSuffixes: []string{".NS", ".BO"}},
		News: config.NewsConfig{
			PortalName:       "Moneycontrol",
			PortalSearchURL:  "https://www.moneycontrol.com/stocks/cptmarket/compsearchnew.php?search_data=%s&topsearch_type=1&search_str=%s",
			FallbackSearch:   "https://www.google.com/search?q=%s",
			DefaultPublisher: "Market News",
			MaxItems:         3,
		},
		History: config.HistoryConfig{DefaultDays: 90, MinDays: 5, MaxDays: 365},
	}

	p := &stubProvider{quotes: map[string]*models.RawQuote{
		"AAPL": {
			Symbol: "AAPL", LongName: "Apple Inc.",
			Price: models.F(230), PrevClose: models.F(225),
		},
		"TATAMOTORS.NS": {
			Symbol: "TATAMOTORS.NS", LongName: "Tata Motors Limited",
			Price: models.F(990), PrevClose: models.F(1000),
		},
	}}

	rssSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>` +
			`<item><title>AAPL jumps after earnings</title><link>https://example.com/a</link></item>` +
			`</channel></rss>`))
	}))
	t.Cleanup(rssSrv.Close)
	news := datasource.NewRSSNewsWithSources([]datasource.NewsSource{
		{Name: "Test Feed", RSSURL: rssSrv.URL},
	})

	return NewServer(cfg, compare.NewEngine(p, cfg), news)
}

func doGet(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := testServer(t)

	rec := doGet(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Error("Success = false")
	}
}

func TestCompare(t *testing.T) {
	s := testServer(t)

	rec := doGet(t, s, "/api/v1/compare?a=TATAMOTORS.NS&b=AAPL")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool                     `json:"success"`
		Data    *models.ComparisonReport `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.TickerA != "TATAMOTORS.NS" || resp.Data.TickerB != "AAPL" {
		t.Errorf("tickers = %q, %q", resp.Data.TickerA, resp.Data.TickerB)
	}
	if !resp.Data.AnyDomestic {
		t.Error("AnyDomestic = false")
	}
	if len(resp.Data.Rows) == 0 {
		t.Error("no metric rows")
	}
}

func TestCompareMissingParams(t *testing.T) {
	s := testServer(t)

	if rec := doGet(t, s, "/api/v1/compare?a=AAPL"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCompareUnknownTicker(t *testing.T) {
	s := testServer(t)

	rec := doGet(t, s, "/api/v1/compare?a=NOPE&b=AAPL")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	var resp APIResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Success || resp.Error == "" {
		t.Errorf("error envelope = %+v", resp)
	}
}

func TestReportHTML(t *testing.T) {
	s := testServer(t)

	rec := doGet(t, s, "/api/v1/report?a=TATAMOTORS.NS&b=AAPL")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Tata Motors Limited") {
		t.Error("HTML missing company name")
	}
}

func TestHistory(t *testing.T) {
	s := testServer(t)

	rec := doGet(t, s, "/api/v1/history/AAPL?days=30")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data []models.PricePoint `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("got %d points", len(resp.Data))
	}
}

func TestHistoryBadDays(t *testing.T) {
	s := testServer(t)

	if rec := doGet(t, s, "/api/v1/history/AAPL?days=abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestNews(t *testing.T) {
	s := testServer(t)

	rec := doGet(t, s, "/api/v1/news/AAPL")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data []models.NewsArticle `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Title != "AAPL jumps after earnings" {
		t.Errorf("articles = %+v", resp.Data)
	}
}
