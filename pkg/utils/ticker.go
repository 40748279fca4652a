package utils

import "strings"

// NormalizeTicker normalizes user input to the canonical upper-case form.
// It handles whitespace and the $ prefix common in chat input.
func NormalizeTicker(ticker string) string {
	ticker = strings.TrimSpace(strings.ToUpper(ticker))
	ticker = strings.TrimPrefix(ticker, "$")
	return ticker
}

// ExchangeSuffix returns the exchange suffix of a ticker including the dot
// ("RELIANCE.NS" → ".NS"), or "" when the ticker carries none.
func ExchangeSuffix(ticker string) string {
	idx := strings.LastIndexByte(ticker, '.')
	if idx < 0 {
		return ""
	}
	return ticker[idx:]
}

// BaseSymbol strips the exchange suffix ("TATAMOTORS.NS" → "TATAMOTORS").
func BaseSymbol(ticker string) string {
	if idx := strings.IndexByte(ticker, '.'); idx >= 0 {
		return ticker[:idx]
	}
	return ticker
}

// CompanyNameFromTicker derives a readable fallback display name when the
// provider has none: suffix stripped, dashes spaced, words title-cased.
// "TATA-MOTORS.NS" → "Tata Motors".
func CompanyNameFromTicker(ticker string) string {
	base := BaseSymbol(NormalizeTicker(ticker))
	base = strings.ReplaceAll(base, "-", " ")

	words := strings.Fields(strings.ToLower(base))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
