// Package models defines the core data structures used throughout StockInsight.
package models

import (
	"encoding/json"
	"time"
)

// Float is an explicit value-or-absent numeric field. Upstream attribute
// bags routinely omit fields, and a missing ratio must stay distinguishable
// from a zero one all the way to the formatter.
type Float struct {
	Value float64
	Valid bool
}

// F wraps a present float64 value.
func F(v float64) Float {
	return Float{Value: v, Valid: true}
}

// FromPtr converts an optional JSON field to a Float.
func FromPtr(p *float64) Float {
	if p == nil {
		return Float{}
	}
	return Float{Value: *p, Valid: true}
}

// MarshalJSON encodes an absent value as null.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON decodes null as absent.
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float{Value: v, Valid: true}
	return nil
}

// PricePoint is a single observation in a closing-price series.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// Headline is a raw provider news item. Any field may be empty; the
// comparison engine resolves it into a guaranteed-valid NewsItem.
type Headline struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Link      string `json:"link"`
}

// RawQuote is the attribute bag a market-data provider returns for one
// ticker. Every numeric field is optional: providers drop fields for
// thinly covered or newly listed symbols.
type RawQuote struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"short_name"`
	LongName  string `json:"long_name"`
	Sector    string `json:"sector"`
	Industry  string `json:"industry"`

	Price           Float `json:"price"`
	PrevClose       Float `json:"prev_close"`
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

	// RecommendationMean is the analyst consensus score, 1.0 (strong buy)
	// to 5.0 (strong sell).
	RecommendationMean Float `json:"recommendation_mean"`

	Employees Float `json:"employees"`

	Headlines []Headline `json:"headlines,omitempty"`

	History1Y []PricePoint `json:"history_1y,omitempty"`
	History1M []PricePoint `json:"history_1m,omitempty"`
	History5D []PricePoint `json:"history_5d,omitempty"`

	FetchedAt time.Time `json:"fetched_at"`
}
