package compare

import (
	"fmt"

	"github.com/seenimoa/stockinsight/pkg/models"
	"github.com/seenimoa/stockinsight/pkg/utils"
)

// performance computes the percentage change from the first to the last
// close of a chronological series. Fewer than two points, or a zero
// starting price, yields "N/A".
func performance(history []models.PricePoint) string {
	if len(history) < 2 {
		return utils.NA
	}
	start := history[0].Close
	end := history[len(history)-1].Close
	if start == 0 {
		return utils.NA
	}
	return fmt.Sprintf("%.2f%%", (end-start)/start*100)
}
