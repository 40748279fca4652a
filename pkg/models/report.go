package models

import "time"

// Market classifies which market a ticker trades on. The set is closed but
// extensible; anything that doesn't match a configured domestic suffix is
// foreign.
type Market string

const (
	MarketDomestic Market = "domestic"
	MarketForeign  Market = "foreign"
)

// NewsItem is a resolved, display-ready news entry. Link is always a valid
// absolute URL — the resolver substitutes a search URL when the provider's
// link is missing or malformed.
type NewsItem struct {
	Title            string `json:"title"`
	Link             string `json:"link"`
	Publisher        string `json:"publisher"`
	IsResearchPortal bool   `json:"is_research_portal"`
}

// NormalizedRecord is the fixed-shape, fully populated per-ticker record the
// comparison engine produces. Every field is present for every successfully
// normalized ticker; unavailable values carry the invalid-Float sentinel or
// the literal "N/A".
type NormalizedRecord struct {
	Ticker      string `json:"ticker"`
	CompanyName string `json:"company_name"`
	Market      Market `json:"market"`
	Sector      string `json:"sector"`
	Industry    string `json:"industry"`
	Employees   string `json:"employees"`

	// Raw numeric values, kept for delta computation.
	Price           Float `json:"price"`
	PrevClose       Float `json:"prev_close"`
	DayChangePct    Float `json:"day_change_pct"`
	DayChangeAbs    Float `json:"day_change_abs"`
	MarketCap       Float `json:"market_cap"`
	TrailingPE      Float `json:"trailing_pe"`
	PEGRatio        Float `json:"peg_ratio"`
	ForwardPE       Float `json:"forward_pe"`
	PriceToBook     Float `json:"price_to_book"`
	EnterpriseValue Float `json:"enterprise_value"`
	EBITDA          Float `json:"ebitda"`
	DebtToEquity    Float `json:"debt_to_equity"`
	CurrentRatio    Float `json:"current_ratio"`
	ReturnOnEquity  Float `json:"return_on_equity"`
	WeekHigh52      Float `json:"week_high_52"`
	WeekLow52       Float `json:"week_low_52"`
	AvgVolume       Float `json:"avg_volume"`
	DividendYield   Float `json:"dividend_yield"`
	Beta            Float `json:"beta"`

	// Currency-aware display strings for the monetary fields.
	PriceFmt           string `json:"price_fmt"`
	PrevCloseFmt       string `json:"prev_close_fmt"`
	MarketCapFmt       string `json:"market_cap_fmt"`
	EnterpriseValueFmt string `json:"enterprise_value_fmt"`
	EBITDAFmt          string `json:"ebitda_fmt"`
	WeekHigh52Fmt      string `json:"week_high_52_fmt"`
	WeekLow52Fmt       string `json:"week_low_52_fmt"`
	AvgVolumeFmt       string `json:"avg_volume_fmt"`

	// Recommendation is the textual analyst tier ("Strong Buy" … "Strong
	// Sell", or "N/A").
	Recommendation string `json:"recommendation"`

	// Percentage performance over the tracked horizons, "N/A" when the
	// series is too short.
	Performance1Y string `json:"performance_1y"`
	Performance1M string `json:"performance_1m"`
	Performance5D string `json:"performance_5d"`

	News []NewsItem `json:"news"`

	// History1Y backs the report chart.
	History1Y []PricePoint `json:"history_1y,omitempty"`
}

// MetricRow is one line of the side-by-side comparison table.
type MetricRow struct {
	Metric string `json:"metric"`
	ValueA string `json:"value_a"`
	ValueB string `json:"value_b"`

	// Delta is the canonical percentage difference relative to ticker B
	// ("X.X% above|below"). DeltaAbs is the absolute-difference alternative
	// presentation ("X.XX higher|lower"). Both empty when either side is
	// unavailable.
	Delta    string `json:"delta,omitempty"`
	DeltaAbs string `json:"delta_abs,omitempty"`
}

// ComparisonReport pairs two normalized records with the ordered metric
// table. It is constructed fresh per request and never mutated afterwards.
type ComparisonReport struct {
	TickerA string           `json:"ticker_a"`
	TickerB string           `json:"ticker_b"`
	RecordA NormalizedRecord `json:"record_a"`
	RecordB NormalizedRecord `json:"record_b"`
	Rows    []MetricRow      `json:"rows"`

	// AnyDomestic is true when either ticker trades on a domestic exchange.
	AnyDomestic bool      `json:"any_domestic"`
	LastUpdate  time.Time `json:"last_update"`
}
