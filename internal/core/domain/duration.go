package domain

import (
	"fmt"
	"math"
)

// HumanDuration renders seconds as "Xm Ys", or "Ys" under a minute.
func HumanDuration(seconds float64) string {
	total := int(math.RoundToEven(seconds))
	m, s := total/60, total%60
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
