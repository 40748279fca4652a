package compare

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/stockinsight/internal/config"
	"github.com/seenimoa/stockinsight/internal/provider"
	"github.com/seenimoa/stockinsight/pkg/models"
	"github.com/seenimoa/stockinsight/pkg/utils"
)

// Engine assembles side-by-side comparison reports from a market-data
// provider. It is stateless across requests; every Compare call builds
// a fresh report.
type Engine struct {
	provider   provider.Provider
	classifier *Classifier
	news       newsResolver
	history    config.HistoryConfig
}

// NewEngine wires an engine to a provider using the loaded configuration.
func NewEngine(p provider.Provider, cfg *config.Config) *Engine {
	return &Engine{
		provider:   p,
		classifier: NewClassifier(cfg.Markets.DomesticSuffixes),
		news:       newsResolver{cfg: cfg.News},
		history:    cfg.History,
	}
}

// Compare fetches both tickers in parallel, normalizes each record and
// builds the metric table. Both fetches are always attempted; if either
// fails, no report is returned.
func (e *Engine) Compare(ctx context.Context, tickerA, tickerB string) (*models.ComparisonReport, error) {
	a := utils.NormalizeTicker(tickerA)
	b := utils.NormalizeTicker(tickerB)
	if a == "" || b == "" {
		return nil, fmt.Errorf("both tickers are required")
	}

	var qa, qb *models.RawQuote

	// Plain errgroup, no shared context cancellation: one ticker
	// failing must not abort the other fetch mid-flight.
	var g errgroup.Group
	g.Go(func() error {
		q, err := e.provider.Quote(ctx, a)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", a, err)
		}
		qa = q
		return nil
	})
	g.Go(func() error {
		q, err := e.provider.Quote(ctx, b)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", b, err)
		}
		qb = q
		return nil
	})
	if err := g.Wait(); err != nil {
		zap.S().Warnw("comparison aborted", "ticker_a", a, "ticker_b", b, "error", err)
		return nil, err
	}

	ra := e.normalize(a, qa)
	rb := e.normalize(b, qb)

	return &models.ComparisonReport{
		TickerA:     a,
		TickerB:     b,
		RecordA:     ra,
		RecordB:     rb,
		Rows:        buildRows(&ra, &rb),
		AnyDomestic: ra.Market == models.MarketDomestic || rb.Market == models.MarketDomestic,
		LastUpdate:  time.Now(),
	}, nil
}

// PriceHistory fetches the closing-price series for the chart window.
// windowDays is clamped to the configured range; zero or negative picks
// the default.
func (e *Engine) PriceHistory(ctx context.Context, ticker string, windowDays int) ([]models.PricePoint, error) {
	t := utils.NormalizeTicker(ticker)
	if t == "" {
		return nil, fmt.Errorf("ticker is required")
	}

	if windowDays <= 0 {
		windowDays = e.history.DefaultDays
	}
	if min := e.history.MinDays; min > 0 && windowDays < min {
		windowDays = min
	}
	if max := e.history.MaxDays; max > 0 && windowDays > max {
		windowDays = max
	}

	points, err := e.provider.History(ctx, t, windowDays)
	if err != nil {
		return nil, fmt.Errorf("history %s: %w", t, err)
	}
	return points, nil
}

// normalize coerces a raw attribute bag into the fixed-shape record:
// every field populated, absent values carried as invalid Floats or the
// "N/A" sentinel.
func (e *Engine) normalize(ticker string, q *models.RawQuote) models.NormalizedRecord {
	market := e.classifier.Classify(ticker)
	company := coalesce(q.LongName, q.ShortName, utils.CompanyNameFromTicker(ticker))

	rec := models.NormalizedRecord{
		Ticker:      ticker,
		CompanyName: company,
		Market:      market,
		Sector:      orNA(q.Sector),
		Industry:    orNA(q.Industry),
		Employees:   utils.FormatCount(q.Employees),

		Price:           q.Price,
		PrevClose:       q.PrevClose,
		MarketCap:       q.MarketCap,
		TrailingPE:      q.TrailingPE,
		PEGRatio:        q.PEGRatio,
		ForwardPE:       q.ForwardPE,
		PriceToBook:     q.PriceToBook,
		EnterpriseValue: q.EnterpriseValue,
		EBITDA:          q.EBITDA,
		DebtToEquity:    q.DebtToEquity,
		CurrentRatio:    q.CurrentRatio,
		ReturnOnEquity:  q.ReturnOnEquity,
		WeekHigh52:      q.WeekHigh52,
		WeekLow52:       q.WeekLow52,
		AvgVolume:       q.AvgVolume,
		DividendYield:   q.DividendYield,
		Beta:            q.Beta,

		Recommendation: recommendationTier(q.RecommendationMean),
		Performance1Y:  performance(q.History1Y),
		Performance1M:  performance(q.History1M),
		Performance5D:  performance(q.History5D),

		News:      e.news.resolve(q.Headlines, market, company),
		History1Y: q.History1Y,
	}

	// Day change against the previous close; a missing previous close
	// degrades to the spot price, i.e. zero change.
	prev := q.PrevClose
	if !prev.Valid {
		prev = q.Price
	}
	if q.Price.Valid && prev.Valid {
		diff := q.Price.Value - prev.Value
		rec.DayChangeAbs = models.F(diff)
		if prev.Value != 0 {
			rec.DayChangePct = models.F(diff / prev.Value * 100)
		}
	}

	rec.PriceFmt = utils.FormatValue(rec.Price, true, market)
	rec.PrevCloseFmt = utils.FormatValue(rec.PrevClose, true, market)
	rec.MarketCapFmt = utils.FormatValue(rec.MarketCap, true, market)
	rec.EnterpriseValueFmt = utils.FormatValue(rec.EnterpriseValue, true, market)
	rec.EBITDAFmt = utils.FormatValue(rec.EBITDA, true, market)
	rec.WeekHigh52Fmt = utils.FormatValue(rec.WeekHigh52, true, market)
	rec.WeekLow52Fmt = utils.FormatValue(rec.WeekLow52, true, market)
	rec.AvgVolumeFmt = utils.FormatValue(rec.AvgVolume, true, market)

	return rec
}

// metricSpec describes one row of the comparison table. Numeric rows
// set value and get a delta; textual rows (recommendation, performance
// horizons) set text and carry none.
type metricSpec struct {
	label    string
	currency bool
	value    func(r *models.NormalizedRecord) models.Float
	text     func(r *models.NormalizedRecord) string
}

// metricSpecs is the fixed, ordered comparison table layout.
var metricSpecs = []metricSpec{
	{label: "Current Price", currency: true, value: func(r *models.NormalizedRecord) models.Float { return r.Price }},
	{label: "Previous Close", currency: true, value: func(r *models.NormalizedRecord) models.Float { return r.PrevClose }},
	{label: "Day Change (%)", value: func(r *models.NormalizedRecord) models.Float { return r.DayChangePct }},
	{label: "Market Cap", currency: true, value: func(r *models.NormalizedRecord) models.Float { return r.MarketCap }},
	{label: "P/E Ratio", value: func(r *models.NormalizedRecord) models.Float { return r.TrailingPE }},
	{label: "PEG Ratio", value: func(r *models.NormalizedRecord) models.Float { return r.PEGRatio }},
	{label: "Forward P/E", value: func(r *models.NormalizedRecord) models.Float { return r.ForwardPE }},
	{label: "Price/Book", value: func(r *models.NormalizedRecord) models.Float { return r.PriceToBook }},
	{label: "Enterprise Value", currency: true, value: func(r *models.NormalizedRecord) models.Float { return r.EnterpriseValue }},
	{label: "EBITDA", currency: true, value: func(r *models.NormalizedRecord) models.Float { return r.EBITDA }},
	{label: "Debt/Equity", value: func(r *models.NormalizedRecord) models.Float { return r.DebtToEquity }},
	{label: "Current Ratio", value: func(r *models.NormalizedRecord) models.Float { return r.CurrentRatio }},
	{label: "ROE", value: func(r *models.NormalizedRecord) models.Float { return r.ReturnOnEquity }},
	{label: "52W High", currency: true, value: func(r *models.NormalizedRecord) models.Float { return r.WeekHigh52 }},
	{label: "52W Low", currency: true, value: func(r *models.NormalizedRecord) models.Float { return r.WeekLow52 }},
	{label: "Avg Volume", currency: true, value: func(r *models.NormalizedRecord) models.Float { return r.AvgVolume }},
	{label: "Dividend Yield", value: func(r *models.NormalizedRecord) models.Float { return r.DividendYield }},
	{label: "Beta", value: func(r *models.NormalizedRecord) models.Float { return r.Beta }},
	{label: "Analyst Rec", text: func(r *models.NormalizedRecord) string { return r.Recommendation }},
	{label: "1Y Performance", text: func(r *models.NormalizedRecord) string { return r.Performance1Y }},
	{label: "1M Performance", text: func(r *models.NormalizedRecord) string { return r.Performance1M }},
	{label: "5D Performance", text: func(r *models.NormalizedRecord) string { return r.Performance5D }},
}

// buildRows renders the metric table. Deltas are computed from the raw
// values, never from the formatted strings.
func buildRows(a, b *models.NormalizedRecord) []models.MetricRow {
	rows := make([]models.MetricRow, 0, len(metricSpecs))
	for _, spec := range metricSpecs {
		row := models.MetricRow{Metric: spec.label}
		if spec.value != nil {
			va, vb := spec.value(a), spec.value(b)
			row.ValueA = utils.FormatValue(va, spec.currency, a.Market)
			row.ValueB = utils.FormatValue(vb, spec.currency, b.Market)
			row.Delta = deltaPct(va, vb)
			row.DeltaAbs = deltaAbs(va, vb)
		} else {
			row.ValueA = spec.text(a)
			row.ValueB = spec.text(b)
		}
		rows = append(rows, row)
	}
	return rows
}

// coalesce returns the first non-blank string.
func coalesce(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// orNA substitutes the sentinel for blank strings.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return utils.NA
	}
	return s
}
