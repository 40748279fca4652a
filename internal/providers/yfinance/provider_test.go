package yfinance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/seenimoa/stockinsight/internal/provider"
)

const quoteJSON = `{
	"quoteResponse": {
		"result": [{
			"symbol": "INFY.NS",
			"shortName": "Infosys Limited",
			"longName": "Infosys Limited",
			"regularMarketPrice": 1520.5,
			"regularMarketPreviousClose": 1500.0,
			"marketCap": 6300000000000,
			"fiftyTwoWeekHigh": 1750.0,
			"fiftyTwoWeekLow": 1220.0,
			"priceToBook": 7.1,
			"averageDailyVolume3Month": 5400000,
			"beta": 0.85
		}],
		"error": null
	}
}`

const summaryJSON = `{
	"quoteSummary": {
		"result": [{
			"assetProfile": {
				"sector": "Technology",
				"industry": "Information Technology Services",
				"fullTimeEmployees": 317240
			},
			"defaultKeyStatistics": {
				"pegRatio": {"raw": 2.1, "fmt": "2.10"},
				"enterpriseValue": {"raw": 6100000000000, "fmt": "6.1T"}
			},
			"summaryDetail": {
				"trailingPE": {"raw": 24.3, "fmt": "24.30"},
				"dividendYield": {"raw": 0.023, "fmt": "2.30%"}
			},
			"financialData": {
				"recommendationMean": {"raw": 2.2, "fmt": "2.20"},
				"ebitda": {"raw": 420000000000, "fmt": "420B"},
				"debtToEquity": {"raw": 9.8, "fmt": "9.80"},
				"currentRatio": {"raw": 2.4, "fmt": "2.40"},
				"returnOnEquity": {"raw": 0.31, "fmt": "31.00%"}
			}
		}],
		"error": null
	}
}`

const chartJSON = `{
	"chart": {
		"result": [{
			"meta": {"symbol": "INFY.NS", "currency": "INR"},
			"timestamp": [1755561000, 1755647400, 1755733800],
			"indicators": {
				"quote": [{
					"close": [1490.0, null, 1520.5]
				}]
			}
		}],
		"error": null
	}
}`

const newsJSON = `{
	"news": [
		{"title": "Infosys wins large deal", "publisher": "Reuters", "link": "https://example.com/a"},
		{"title": "IT stocks rally", "publisher": "", "link": ""}
	]
}`

func newTestProvider(t *testing.T, handler http.Handler) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := New(time.Minute, 100)
	p.BaseURL = srv.URL
	return p
}

func yahooStub(requests *atomic.Int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			requests.Add(1)
		}
		switch {
		case strings.HasPrefix(r.URL.Path, "/v7/finance/quote"):
			w.Write([]byte(quoteJSON))
		case strings.HasPrefix(r.URL.Path, "/v10/finance/quoteSummary/"):
			w.Write([]byte(summaryJSON))
		case strings.HasPrefix(r.URL.Path, "/v8/finance/chart/"):
			w.Write([]byte(chartJSON))
		case strings.HasPrefix(r.URL.Path, "/v1/finance/search"):
			w.Write([]byte(newsJSON))
		default:
			http.NotFound(w, r)
		}
	})
}

func TestQuoteAssemblesAttributeBag(t *testing.T) {
	p := newTestProvider(t, yahooStub(nil))

	q, err := p.Quote(context.Background(), "INFY.NS")
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}

	if q.Symbol != "INFY.NS" || q.LongName != "Infosys Limited" {
		t.Errorf("identity fields wrong: %+v", q)
	}
	if !q.Price.Valid || q.Price.Value != 1520.5 {
		t.Errorf("Price = %+v, want 1520.5", q.Price)
	}
	if q.Sector != "Technology" {
		t.Errorf("Sector = %q", q.Sector)
	}
	if !q.Employees.Valid || q.Employees.Value != 317240 {
		t.Errorf("Employees = %+v", q.Employees)
	}
	// TrailingPE is absent in v7 and must be filled from summaryDetail.
	if !q.TrailingPE.Valid || q.TrailingPE.Value != 24.3 {
		t.Errorf("TrailingPE = %+v, want 24.3 from summary", q.TrailingPE)
	}
	// DividendYield is absent in v7 and filled from summaryDetail too.
	if !q.DividendYield.Valid || q.DividendYield.Value != 0.023 {
		t.Errorf("DividendYield = %+v", q.DividendYield)
	}
	if !q.RecommendationMean.Valid || q.RecommendationMean.Value != 2.2 {
		t.Errorf("RecommendationMean = %+v", q.RecommendationMean)
	}
	// No forwardPE anywhere in the fixtures: must stay absent.
	if q.ForwardPE.Valid {
		t.Errorf("ForwardPE = %+v, want absent", q.ForwardPE)
	}

	// Null close in the chart fixture is skipped.
	if len(q.History1Y) != 2 {
		t.Errorf("History1Y has %d points, want 2", len(q.History1Y))
	}
	if len(q.Headlines) != 2 || q.Headlines[0].Publisher != "Reuters" {
		t.Errorf("Headlines = %+v", q.Headlines)
	}
	if q.FetchedAt.IsZero() {
		t.Error("FetchedAt not set")
	}
}

func TestQuoteCachesResult(t *testing.T) {
	var requests atomic.Int64
	p := newTestProvider(t, yahooStub(&requests))

	if _, err := p.Quote(context.Background(), "INFY.NS"); err != nil {
		t.Fatalf("first Quote: %v", err)
	}
	after := requests.Load()

	if _, err := p.Quote(context.Background(), "INFY.NS"); err != nil {
		t.Fatalf("second Quote: %v", err)
	}
	if requests.Load() != after {
		t.Errorf("second Quote hit upstream: %d -> %d requests", after, requests.Load())
	}
}

func TestQuoteUnknownTicker(t *testing.T) {
	p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteResponse": {"result": [], "error": null}}`))
	}))

	_, err := p.Quote(context.Background(), "NOPE.XX")
	if !errors.Is(err, provider.ErrTickerNotFound) {
		t.Fatalf("err = %v, want ErrTickerNotFound", err)
	}
}

func TestHistory(t *testing.T) {
	p := newTestProvider(t, yahooStub(nil))

	points, err := p.History(context.Background(), "INFY.NS", 90)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2 (null close skipped)", len(points))
	}
	if points[0].Close != 1490.0 || points[1].Close != 1520.5 {
		t.Errorf("closes = %v, %v", points[0].Close, points[1].Close)
	}
	if !points[0].Date.Before(points[1].Date) {
		t.Error("points not in chronological order")
	}
}

func TestHistoryNotFound(t *testing.T) {
	p := newTestProvider(t, http.HandlerFunc(http.NotFound))

	_, err := p.History(context.Background(), "NOPE.XX", 30)
	if !errors.Is(err, provider.ErrTickerNotFound) {
		t.Fatalf("err = %v, want ErrTickerNotFound", err)
	}
}

func TestPing(t *testing.T) {
	p := newTestProvider(t, yahooStub(nil))
	if err := p.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
