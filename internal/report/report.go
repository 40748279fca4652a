package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"text/tabwriter"

	"github.com/seenimoa/stockinsight/pkg/models"
	"github.com/seenimoa/stockinsight/pkg/utils"
)

// Format specifies the rendering output.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// comparisonData is the template model for the HTML page.
type comparisonData struct {
	Title       string
	GeneratedAt string
	A, B        tickerCard
	Rows        []models.MetricRow
	ChartSVG    template.HTML
}

// tickerCard flattens one NormalizedRecord for the summary card.
type tickerCard struct {
	Ticker         string
	CompanyName    string
	Market         string
	Sector         string
	Industry       string
	Employees      string
	Price          string
	DayChange      string
	ChangeClass    string
	Recommendation string
	News           []models.NewsItem
}

// GenerateHTML renders the comparison as a self-contained HTML page with
// an inline SVG chart of both 1-year price histories.
func GenerateHTML(r *models.ComparisonReport, cfg ChartConfig) (string, error) {
	if r == nil {
		return "", fmt.Errorf("report is nil")
	}

	cfg.Title = fmt.Sprintf("%s vs %s — 1Y Price", r.TickerA, r.TickerB)
	chart := PriceChart([]PriceSeries{
		{Name: r.TickerA, Points: r.RecordA.History1Y},
		{Name: r.TickerB, Points: r.RecordB.History1Y},
	}, cfg)

	data := comparisonData{
		Title:       fmt.Sprintf("%s vs %s", r.TickerA, r.TickerB),
		GeneratedAt: r.LastUpdate.Format("02 Jan 2006, 15:04 MST"),
		A:           buildCard(&r.RecordA),
		B:           buildCard(&r.RecordB),
		Rows:        r.Rows,
		ChartSVG:    template.HTML(chart),
	}

	tmpl, err := template.New("comparison").Parse(comparisonTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

// GenerateText renders the comparison as an aligned terminal table.
func GenerateText(r *models.ComparisonReport) (string, error) {
	if r == nil {
		return "", fmt.Errorf("report is nil")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s vs %s\n", r.TickerA, r.TickerB)
	fmt.Fprintf(&sb, "%s (%s)  |  %s (%s)\n",
		r.RecordA.CompanyName, r.RecordA.Market,
		r.RecordB.CompanyName, r.RecordB.Market)
	fmt.Fprintf(&sb, "Last update: %s\n\n", r.LastUpdate.Format("2006-01-02 15:04:05"))

	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "METRIC\t%s\t%s\tDELTA\n", r.TickerA, r.TickerB)
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Metric, row.ValueA, row.ValueB, row.Delta)
	}
	w.Flush()

	writeNews := func(ticker string, items []models.NewsItem) {
		fmt.Fprintf(&sb, "\n%s news:\n", ticker)
		if len(items) == 0 {
			sb.WriteString("  (none)\n")
			return
		}
		for _, it := range items {
			fmt.Fprintf(&sb, "  - %s (%s)\n    %s\n", it.Title, it.Publisher, it.Link)
		}
	}
	writeNews(r.TickerA, r.RecordA.News)
	writeNews(r.TickerB, r.RecordB.News)

	return sb.String(), nil
}

// buildCard flattens a record for the summary card.
func buildCard(rec *models.NormalizedRecord) tickerCard {
	change := utils.NA
	class := ""
	if rec.DayChangePct.Valid {
		change = utils.FormatSignedPct(rec.DayChangePct.Value)
		if rec.DayChangePct.Value >= 0 {
			class = "up"
		} else {
			class = "down"
		}
	}

	return tickerCard{
		Ticker:         rec.Ticker,
		CompanyName:    rec.CompanyName,
		Market:         string(rec.Market),
		Sector:         rec.Sector,
		Industry:       rec.Industry,
		Employees:      rec.Employees,
		Price:          rec.PriceFmt,
		DayChange:      change,
		ChangeClass:    class,
		Recommendation: rec.Recommendation,
		News:           rec.News,
	}
}
