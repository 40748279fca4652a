package yfinance

import "github.com/seenimoa/stockinsight/pkg/models"

// --- Yahoo Finance API response types ---
//
// Numeric fields are pointers: Yahoo omits attributes it has no data
// for, and an omitted field must decode to an absent models.Float, not
// a zero.

// yfQuoteResponse wraps the v7 quote API response.
type yfQuoteResponse struct {
	QuoteResponse struct {
		Result []yfQuoteResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"quoteResponse"`
}

type yfQuoteResult struct {
	Symbol                     string   `json:"symbol"`
	ShortName                  string   `json:"shortName"`
	LongName                   string   `json:"longName"`
	QuoteType                  string   `json:"quoteType"`
	Exchange                   string   `json:"exchange"`
	Currency                   string   `json:"currency"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose"`
	MarketCap                  *float64 `json:"marketCap"`
	FiftyTwoWeekHigh           *float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow            *float64 `json:"fiftyTwoWeekLow"`
	TrailingPE                 *float64 `json:"trailingPE"`
	ForwardPE                  *float64 `json:"forwardPE"`
	PriceToBook                *float64 `json:"priceToBook"`
	DividendYield              *float64 `json:"dividendYield"`
	AverageDailyVolume3Month   *float64 `json:"averageDailyVolume3Month"`
	Beta                       *float64 `json:"beta"`
}

// yfChartResponse wraps the v8 chart API response.
type yfChartResponse struct {
	Chart struct {
		Result []yfChartResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"chart"`
}

type yfChartResult struct {
	Meta       yfChartMeta  `json:"meta"`
	Timestamp  []int64      `json:"timestamp"`
	Indicators yfIndicators `json:"indicators"`
}

type yfChartMeta struct {
	Symbol             string  `json:"symbol"`
	Currency           string  `json:"currency"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	ExchangeName       string  `json:"exchangeName"`
}

type yfIndicators struct {
	Quote []yfOHLCV `json:"quote"`
}

type yfOHLCV struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// yfQuoteSummaryResponse wraps the v10 quoteSummary API response.
type yfQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []yfQuoteSummaryResult `json:"result"`
		Error  *yfError               `json:"error"`
	} `json:"quoteSummary"`
}

type yfQuoteSummaryResult struct {
	AssetProfile         *yfAssetProfile         `json:"assetProfile"`
	DefaultKeyStatistics *yfDefaultKeyStatistics `json:"defaultKeyStatistics"`
	SummaryDetail        *yfSummaryDetail        `json:"summaryDetail"`
	FinancialData        *yfFinancialData        `json:"financialData"`
}

// yfFinVal is Yahoo's {raw, fmt} number envelope. Raw is a pointer so
// an empty envelope ({}) stays distinguishable from a raw zero.
type yfFinVal struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

func (v yfFinVal) float() models.Float {
	return models.FromPtr(v.Raw)
}

type yfAssetProfile struct {
	Industry            string   `json:"industry"`
	Sector              string   `json:"sector"`
	FullTimeEmployees   *float64 `json:"fullTimeEmployees"`
	LongBusinessSummary string   `json:"longBusinessSummary"`
	Country             string   `json:"country"`
	Website             string   `json:"website"`
}

type yfDefaultKeyStatistics struct {
	EnterpriseValue yfFinVal `json:"enterpriseValue"`
	ForwardPE       yfFinVal `json:"forwardPE"`
	Beta            yfFinVal `json:"beta"`
	BookValue       yfFinVal `json:"bookValue"`
	PriceToBook     yfFinVal `json:"priceToBook"`
	PegRatio        yfFinVal `json:"pegRatio"`
	TrailingEps     yfFinVal `json:"trailingEps"`
}

type yfSummaryDetail struct {
	PreviousClose    yfFinVal `json:"previousClose"`
	AverageVolume    yfFinVal `json:"averageVolume"`
	MarketCap        yfFinVal `json:"marketCap"`
	FiftyTwoWeekLow  yfFinVal `json:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh yfFinVal `json:"fiftyTwoWeekHigh"`
	DividendYield    yfFinVal `json:"dividendYield"`
	Beta             yfFinVal `json:"beta"`
	TrailingPE       yfFinVal `json:"trailingPE"`
	ForwardPE        yfFinVal `json:"forwardPE"`
}

type yfFinancialData struct {
	CurrentPrice       yfFinVal `json:"currentPrice"`
	RecommendationMean yfFinVal `json:"recommendationMean"`
	RecommendationKey  string   `json:"recommendationKey"`
	Ebitda             yfFinVal `json:"ebitda"`
	DebtToEquity       yfFinVal `json:"debtToEquity"`
	CurrentRatio       yfFinVal `json:"currentRatio"`
	ReturnOnEquity     yfFinVal `json:"returnOnEquity"`
}

// yfSearchResponse wraps the v1 search API response, used for news.
type yfSearchResponse struct {
	News []yfSearchNews `json:"news"`
}

type yfSearchNews struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Link      string `json:"link"`
	UUID      string `json:"uuid"`
}

type yfError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
