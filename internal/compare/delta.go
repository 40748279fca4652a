package compare

import (
	"fmt"

	"github.com/seenimoa/stockinsight/pkg/models"
)

// deltaPct renders the canonical delta for a metric row: the difference
// between a and b as a percentage of b. "above" when a exceeds b. When
// either side is absent, or b is zero, there is no delta.
func deltaPct(a, b models.Float) string {
	if !a.Valid || !b.Valid || b.Value == 0 {
		return ""
	}
	diff := a.Value - b.Value
	direction := "below"
	if diff > 0 {
		direction = "above"
	}
	return fmt.Sprintf("%.1f%% %s", diff/b.Value*100, direction)
}

// deltaAbs renders the absolute-difference alternative ("X.XX
// higher|lower"). Same absence rules as deltaPct.
func deltaAbs(a, b models.Float) string {
	if !a.Valid || !b.Valid || b.Value == 0 {
		return ""
	}
	diff := a.Value - b.Value
	direction := "lower"
	if diff > 0 {
		direction = "higher"
	}
	return fmt.Sprintf("%.2f %s", abs(diff), direction)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
