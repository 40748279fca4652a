// Package compare implements the two-ticker comparison engine: market
// classification, news link resolution, recommendation scoring,
// performance and delta computation, and report assembly.
package compare

import (
	"strings"

	"github.com/seenimoa/stockinsight/pkg/models"
)

// defaultDomesticSuffixes cover NSE and BSE listings.
var defaultDomesticSuffixes = []string{".NS", ".BO"}

// Classifier decides which market a ticker trades on by matching its
// exchange suffix against a configured domestic set.
type Classifier struct {
	suffixes []string
}

// NewClassifier builds a classifier from the configured domestic
// suffixes. An empty set falls back to the NSE/BSE defaults.
func NewClassifier(suffixes []string) *Classifier {
	if len(suffixes) == 0 {
		suffixes = defaultDomesticSuffixes
	}
	upper := make([]string, len(suffixes))
	for i, s := range suffixes {
		upper[i] = strings.ToUpper(s)
	}
	return &Classifier{suffixes: upper}
}

// Classify returns the market for a ticker. Anything that doesn't match
// a domestic suffix is foreign; there is no failure mode.
func (c *Classifier) Classify(ticker string) models.Market {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	for _, suf := range c.suffixes {
		if strings.HasSuffix(t, suf) {
			return models.MarketDomestic
		}
	}
	return models.MarketForeign
}
