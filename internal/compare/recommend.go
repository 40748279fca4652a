package compare

import (
	"github.com/seenimoa/stockinsight/pkg/models"
	"github.com/seenimoa/stockinsight/pkg/utils"
)

// recommendationTier maps the numeric analyst consensus (1.0 bullish to
// 5.0 bearish) to a textual tier. Thresholds are inclusive upper bounds
// checked in ascending order.
func recommendationTier(score models.Float) string {
	if !score.Valid {
		return utils.NA
	}
	switch {
	case score.Value <= 1.5:
		return "Strong Buy"
	case score.Value <= 2.5:
		return "Buy"
	case score.Value <= 3.5:
		return "Hold"
	case score.Value <= 4.5:
		return "Sell"
	default:
		return "Strong Sell"
	}
}
