// Package yfinance implements the Yahoo Finance market-data provider.
// It assembles a full attribute bag per ticker from Yahoo's public APIs
// (v7 quote, v10 quoteSummary, v8 chart, v1 search). Yahoo Finance is a
// free, no-API-key provider covering equities worldwide, including NSE
// and BSE listings.
package yfinance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/stockinsight/internal/infra"
	"github.com/seenimoa/stockinsight/internal/provider"
	"github.com/seenimoa/stockinsight/pkg/models"
)

const (
	providerName   = "yfinance"
	defaultBaseURL = "https://query1.finance.yahoo.com"

	summaryModules  = "assetProfile,defaultKeyStatistics,summaryDetail,financialData"
	maxNewsPerFetch = 10
)

// Provider implements provider.Provider against Yahoo Finance.
type Provider struct {
	// BaseURL of the Yahoo Finance query host. Tests point it at a
	// local httptest server.
	BaseURL string

	cache   *infra.Cache
	limiter *infra.RateLimiter
}

// New creates a Yahoo Finance provider with the given cache TTL and
// request-per-second budget.
func New(cacheTTL time.Duration, ratePerSec int) *Provider {
	if ratePerSec < 1 {
		ratePerSec = 1
	}
	return &Provider{
		BaseURL: defaultBaseURL,
		cache:   infra.NewCache(cacheTTL),
		limiter: infra.NewRateLimiter(ratePerSec, time.Second/time.Duration(ratePerSec)),
	}
}

// Info describes the provider.
func (p *Provider) Info() provider.Info {
	return provider.Info{
		Name:        providerName,
		Description: "Yahoo Finance - free global equity data",
		Website:     "https://finance.yahoo.com",
	}
}

// Init is a no-op: Yahoo Finance requires no credentials.
func (p *Provider) Init(credentials map[string]string) error {
	return nil
}

// Ping checks connectivity to Yahoo Finance.
func (p *Provider) Ping(ctx context.Context) error {
	var resp yfQuoteResponse
	u := fmt.Sprintf("%s/v7/finance/quote?symbols=AAPL", p.BaseURL)
	if err := p.fetchJSON(ctx, u, &resp); err != nil {
		return fmt.Errorf("yfinance ping: %w", err)
	}
	return nil
}

// Quote fetches the complete attribute bag for one ticker. The v7 quote
// call must succeed; quoteSummary, price history and news are
// best-effort and leave their fields absent on failure.
func (p *Provider) Quote(ctx context.Context, symbol string) (*models.RawQuote, error) {
	cacheKey := "quote:" + symbol
	if cached, ok := p.cache.Get(cacheKey); ok {
		return cached.(*models.RawQuote), nil
	}

	q, err := p.fetchQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	var (
		summary   *yfQuoteSummaryResult
		history1Y []models.PricePoint
		history1M []models.PricePoint
		history5D []models.PricePoint
		headlines []models.Headline
	)

	// Each enrichment call fails soft: a ticker with no quoteSummary
	// coverage still produces a usable quote.
	var g errgroup.Group
	g.Go(func() error {
		s, err := p.fetchSummary(ctx, symbol)
		if err != nil {
			zap.S().Debugw("quoteSummary unavailable", "symbol", symbol, "error", err)
			return nil
		}
		summary = s
		return nil
	})
	g.Go(func() error {
		history1Y = p.fetchRangeSoft(ctx, symbol, "1y")
		return nil
	})
	g.Go(func() error {
		history1M = p.fetchRangeSoft(ctx, symbol, "1mo")
		return nil
	})
	g.Go(func() error {
		history5D = p.fetchRangeSoft(ctx, symbol, "5d")
		return nil
	})
	g.Go(func() error {
		h, err := p.fetchNews(ctx, symbol)
		if err != nil {
			zap.S().Debugw("news unavailable", "symbol", symbol, "error", err)
			return nil
		}
		headlines = h
		return nil
	})
	g.Wait()

	quote := buildRawQuote(symbol, q, summary)
	quote.History1Y = history1Y
	quote.History1M = history1M
	quote.History5D = history5D
	quote.Headlines = headlines
	quote.FetchedAt = time.Now()

	p.cache.Set(cacheKey, quote)
	return quote, nil
}

// History fetches daily closing prices for the trailing windowDays days.
func (p *Provider) History(ctx context.Context, symbol string, windowDays int) ([]models.PricePoint, error) {
	cacheKey := fmt.Sprintf("history:%s:%d", symbol, windowDays)
	if cached, ok := p.cache.Get(cacheKey); ok {
		return cached.([]models.PricePoint), nil
	}

	end := time.Now()
	start := end.AddDate(0, 0, -windowDays)
	u := fmt.Sprintf(
		"%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d",
		p.BaseURL, url.PathEscape(symbol), start.Unix(), end.Unix(),
	)

	points, err := p.fetchChart(ctx, symbol, u)
	if err != nil {
		return nil, err
	}

	p.cache.Set(cacheKey, points)
	return points, nil
}

// --- Upstream calls ---

func (p *Provider) fetchQuote(ctx context.Context, symbol string) (*yfQuoteResult, error) {
	u := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", p.BaseURL, url.QueryEscape(symbol))

	var resp yfQuoteResponse
	if err := p.fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("yfinance quote %s: %w", symbol, err)
	}
	if resp.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("yfinance API error: %s", resp.QuoteResponse.Error.Description)
	}
	if len(resp.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, provider.ErrTickerNotFound)
	}
	return &resp.QuoteResponse.Result[0], nil
}

func (p *Provider) fetchSummary(ctx context.Context, symbol string) (*yfQuoteSummaryResult, error) {
	u := fmt.Sprintf(
		"%s/v10/finance/quoteSummary/%s?modules=%s",
		p.BaseURL, url.PathEscape(symbol), summaryModules,
	)

	var resp yfQuoteSummaryResponse
	if err := p.fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("yfinance quoteSummary %s: %w", symbol, err)
	}
	if resp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yfinance API error: %s", resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no summary for %s", symbol)
	}
	return &resp.QuoteSummary.Result[0], nil
}

// fetchRangeSoft grabs one named chart range, returning nil on any failure.
func (p *Provider) fetchRangeSoft(ctx context.Context, symbol, rng string) []models.PricePoint {
	u := fmt.Sprintf(
		"%s/v8/finance/chart/%s?range=%s&interval=1d",
		p.BaseURL, url.PathEscape(symbol), rng,
	)
	points, err := p.fetchChart(ctx, symbol, u)
	if err != nil {
		zap.S().Debugw("chart range unavailable", "symbol", symbol, "range", rng, "error", err)
		return nil
	}
	return points
}

func (p *Provider) fetchChart(ctx context.Context, symbol, u string) ([]models.PricePoint, error) {
	var resp yfChartResponse
	if err := p.fetchJSON(ctx, u, &resp); err != nil {
		var httpErr *infra.ErrHTTP
		if errors.As(err, &httpErr) && httpErr.StatusCode == 404 {
			return nil, fmt.Errorf("%s: %w", symbol, provider.ErrTickerNotFound)
		}
		return nil, fmt.Errorf("yfinance chart %s: %w", symbol, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yfinance chart error: %s", resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, provider.ErrTickerNotFound)
	}
	return parseSeries(resp.Chart.Result[0]), nil
}

func (p *Provider) fetchNews(ctx context.Context, symbol string) ([]models.Headline, error) {
	u := fmt.Sprintf(
		"%s/v1/finance/search?q=%s&quotesCount=0&newsCount=%d",
		p.BaseURL, url.QueryEscape(symbol), maxNewsPerFetch,
	)

	var resp yfSearchResponse
	if err := p.fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("yfinance news %s: %w", symbol, err)
	}

	headlines := make([]models.Headline, 0, len(resp.News))
	for _, n := range resp.News {
		headlines = append(headlines, models.Headline{
			Title:     n.Title,
			Publisher: n.Publisher,
			Link:      n.Link,
		})
	}
	return headlines, nil
}

// fetchJSON rate-limits, performs a GET and decodes the response.
func (p *Provider) fetchJSON(ctx context.Context, u string, dest any) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	body, _, err := infra.DoGet(ctx, u, map[string]string{"Accept": "application/json"})
	if err != nil {
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}

// --- Assembly helpers ---

// buildRawQuote merges the v7 quote with the optional quoteSummary
// modules. The v7 values win; summary fills what v7 omitted.
func buildRawQuote(symbol string, q *yfQuoteResult, s *yfQuoteSummaryResult) *models.RawQuote {
	quote := &models.RawQuote{
		Symbol:    symbol,
		ShortName: q.ShortName,
		LongName:  q.LongName,

		Price:         models.FromPtr(q.RegularMarketPrice),
		PrevClose:     models.FromPtr(q.RegularMarketPreviousClose),
		MarketCap:     models.FromPtr(q.MarketCap),
		TrailingPE:    models.FromPtr(q.TrailingPE),
		ForwardPE:     models.FromPtr(q.ForwardPE),
		PriceToBook:   models.FromPtr(q.PriceToBook),
		WeekHigh52:    models.FromPtr(q.FiftyTwoWeekHigh),
		WeekLow52:     models.FromPtr(q.FiftyTwoWeekLow),
		AvgVolume:     models.FromPtr(q.AverageDailyVolume3Month),
		DividendYield: models.FromPtr(q.DividendYield),
		Beta:          models.FromPtr(q.Beta),
	}

	if s == nil {
		return quote
	}

	if ap := s.AssetProfile; ap != nil {
		quote.Sector = ap.Sector
		quote.Industry = ap.Industry
		quote.Employees = models.FromPtr(ap.FullTimeEmployees)
	}
	if ks := s.DefaultKeyStatistics; ks != nil {
		quote.PEGRatio = ks.PegRatio.float()
		quote.EnterpriseValue = ks.EnterpriseValue.float()
		fill(&quote.ForwardPE, ks.ForwardPE.float())
		fill(&quote.PriceToBook, ks.PriceToBook.float())
		fill(&quote.Beta, ks.Beta.float())
	}
	if sd := s.SummaryDetail; sd != nil {
		fill(&quote.PrevClose, sd.PreviousClose.float())
		fill(&quote.MarketCap, sd.MarketCap.float())
		fill(&quote.TrailingPE, sd.TrailingPE.float())
		fill(&quote.WeekHigh52, sd.FiftyTwoWeekHigh.float())
		fill(&quote.WeekLow52, sd.FiftyTwoWeekLow.float())
		fill(&quote.AvgVolume, sd.AverageVolume.float())
		fill(&quote.DividendYield, sd.DividendYield.float())
	}
	if fd := s.FinancialData; fd != nil {
		quote.RecommendationMean = fd.RecommendationMean.float()
		quote.EBITDA = fd.Ebitda.float()
		quote.DebtToEquity = fd.DebtToEquity.float()
		quote.CurrentRatio = fd.CurrentRatio.float()
		quote.ReturnOnEquity = fd.ReturnOnEquity.float()
		fill(&quote.Price, fd.CurrentPrice.float())
	}
	return quote
}

// fill assigns v to dst only when dst is absent and v is present.
func fill(dst *models.Float, v models.Float) {
	if !dst.Valid && v.Valid {
		*dst = v
	}
}

// parseSeries converts one chart result to a closing-price series,
// skipping days Yahoo reports with a null close.
func parseSeries(result yfChartResult) []models.PricePoint {
	if len(result.Indicators.Quote) == 0 {
		return nil
	}

	closes := result.Indicators.Quote[0].Close
	points := make([]models.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, models.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}
	return points
}
