package utils

import (
	"testing"

	"github.com/seenimoa/stockinsight/pkg/models"
)

func TestFormatValueCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    models.Float
		market   models.Market
		expected string
	}{
		{"absent", models.Float{}, models.MarketForeign, "N/A"},
		{"trillions", models.F(2.5e12), models.MarketForeign, "$2.50T"},
		{"billions", models.F(3.2e9), models.MarketForeign, "$3.20B"},
		{"millions", models.F(4.5e6), models.MarketForeign, "$4.50M"},
		{"plain", models.F(2847.5), models.MarketForeign, "$2,847.50"},
		{"domestic symbol", models.F(985.3), models.MarketDomestic, "₹985.30"},
		{"domestic large", models.F(1.8e12), models.MarketDomestic, "₹1.80T"},
		{"negative", models.F(-1234.56), models.MarketForeign, "-$1,234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatValue(tt.input, true, tt.market)
			if got != tt.expected {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Boundary values must select the higher suffix tier.
func TestFormatValueBoundaries(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{1e12, "$1.00T"},
		{1e9, "$1.00B"},
		{1e6, "$1.00M"},
		{1e6 - 1, "$999,999.00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := FormatValue(models.F(tt.input), true, models.MarketForeign)
			if got != tt.expected {
				t.Errorf("FormatValue(%g) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatValueNonCurrency(t *testing.T) {
	if got := FormatValue(models.F(23.456), false, models.MarketDomestic); got != "23.46" {
		t.Errorf("non-currency = %q, want 23.46", got)
	}
	if got := FormatValue(models.Float{}, false, models.MarketForeign); got != "N/A" {
		t.Errorf("absent non-currency = %q, want N/A", got)
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0.00"},
		{100, "100.00"},
		{1000, "1,000.00"},
		{12345, "12,345.00"},
		{123456.78, "123,456.78"},
		{1234567.89, "1,234,567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := GroupThousands(tt.input); got != tt.expected {
				t.Errorf("GroupThousands(%f) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatSignedPct(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{2.45, "+2.45%"},
		{-1.23, "-1.23%"},
		{0, "+0.00%"},
	}

	for _, tt := range tests {
		if got := FormatSignedPct(tt.input); got != tt.expected {
			t.Errorf("FormatSignedPct(%f) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(models.F(164000)); got != "164,000" {
		t.Errorf("FormatCount = %q, want 164,000", got)
	}
	if got := FormatCount(models.Float{}); got != "N/A" {
		t.Errorf("FormatCount absent = %q, want N/A", got)
	}
}
