// Package utils provides common utility functions for StockInsight.
package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/seenimoa/stockinsight/pkg/models"
)

// NA is the sentinel rendered for any unavailable value.
const NA = "N/A"

// CurrencySymbol returns the display symbol for a market classification.
func CurrencySymbol(market models.Market) string {
	if market == models.MarketDomestic {
		return "₹"
	}
	return "$"
}

// FormatValue renders a numeric attribute as a display string. Currency
// fields are magnitude-scaled: the first matching threshold wins, largest
// first (≥1e12 → T, ≥1e9 → B, ≥1e6 → M), otherwise thousands separators
// with two decimals. Non-currency fields render with two decimals and no
// symbol. Absent input renders as the literal "N/A".
func FormatValue(v models.Float, currency bool, market models.Market) string {
	if !v.Valid {
		return NA
	}
	if !currency {
		return fmt.Sprintf("%.2f", v.Value)
	}
	return FormatCurrency(v.Value, market)
}

// FormatCurrency renders a currency amount with the market's symbol and
// magnitude suffix. Boundary values (exactly 1e12, 1e9, 1e6) take the
// higher suffix tier.
func FormatCurrency(amount float64, market models.Market) string {
	prefix := CurrencySymbol(market)
	neg := amount < 0
	abs := math.Abs(amount)
	if neg {
		prefix = "-" + prefix
	}

	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%s%.2fT", prefix, abs/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%s%.2fB", prefix, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s%.2fM", prefix, abs/1e6)
	default:
		return prefix + GroupThousands(abs)
	}
}

// GroupThousands formats a non-negative number with comma separators and
// exactly two decimal places, e.g. 12345.5 → "12,345.50".
func GroupThousands(n float64) string {
	s := fmt.Sprintf("%.2f", n)
	dot := strings.IndexByte(s, '.')
	intPart, decPart := s[:dot], s[dot:]

	if len(intPart) <= 3 {
		return intPart + decPart
	}

	var sb strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}
	return sb.String() + decPart
}

// FormatPct formats a percentage value with two decimals and a % suffix.
func FormatPct(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatSignedPct formats a percentage with an explicit sign,
// e.g. 2.45 → "+2.45%".
func FormatSignedPct(pct float64) string {
	if pct >= 0 {
		return fmt.Sprintf("+%.2f%%", pct)
	}
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatCount renders an optional integer-like value ("12,345" style,
// no decimals) or "N/A".
func FormatCount(v models.Float) string {
	if !v.Valid {
		return NA
	}
	s := GroupThousands(math.Abs(v.Value))
	s = strings.TrimSuffix(s, ".00")
	if v.Value < 0 {
		return "-" + s
	}
	return s
}
