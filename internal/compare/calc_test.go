package compare

import (
	"testing"
	"time"

	"github.com/seenimoa/stockinsight/pkg/models"
)

func TestRecommendationTier(t *testing.T) {
	tests := []struct {
		score models.Float
		want  string
	}{
		{models.Float{}, "N/A"},
		{models.F(1.0), "Strong Buy"},
		{models.F(1.5), "Strong Buy"}, // inclusive upper bound
		{models.F(1.50001), "Buy"},
		{models.F(2.5), "Buy"},
		{models.F(2.6), "Hold"},
		{models.F(3.5), "Hold"},
		{models.F(3.6), "Sell"},
		{models.F(4.5), "Sell"},
		{models.F(4.6), "Strong Sell"},
	}
	for _, tt := range tests {
		if got := recommendationTier(tt.score); got != tt.want {
			t.Errorf("recommendationTier(%+v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func series(closes ...float64) []models.PricePoint {
	points := make([]models.PricePoint, len(closes))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		points[i] = models.PricePoint{Date: base.AddDate(0, 0, i), Close: c}
	}
	return points
}

func TestPerformance(t *testing.T) {
	tests := []struct {
		name    string
		history []models.PricePoint
		want    string
	}{
		{"nil series", nil, "N/A"},
		{"single point", series(100), "N/A"},
		{"zero start", series(0, 50), "N/A"},
		{"gain", series(100, 105, 110), "10.00%"},
		{"loss", series(200, 150), "-25.00%"},
		{"flat", series(80, 80), "0.00%"},
	}
	for _, tt := range tests {
		if got := performance(tt.history); got != tt.want {
			t.Errorf("%s: performance = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDeltaPct(t *testing.T) {
	tests := []struct {
		name string
		a, b models.Float
		want string
	}{
		{"a absent", models.Float{}, models.F(10), ""},
		{"b absent", models.F(10), models.Float{}, ""},
		{"zero denominator", models.F(10), models.F(0), ""},
		{"above", models.F(125), models.F(100), "25.0% above"},
		{"below", models.F(75), models.F(100), "-25.0% below"},
		{"equal", models.F(100), models.F(100), "0.0% below"},
	}
	for _, tt := range tests {
		if got := deltaPct(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: deltaPct = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDeltaAbs(t *testing.T) {
	if got := deltaAbs(models.F(125.5), models.F(100)); got != "25.50 higher" {
		t.Errorf("deltaAbs = %q", got)
	}
	if got := deltaAbs(models.F(75), models.F(100)); got != "25.00 lower" {
		t.Errorf("deltaAbs = %q", got)
	}
	if got := deltaAbs(models.Float{}, models.F(100)); got != "" {
		t.Errorf("deltaAbs on absent = %q, want empty", got)
	}
}
