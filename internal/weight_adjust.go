package internal

import (
	"time"
)

// AdjustWeights combines the seasonal day-of-month weights with the
// trend and admin day-of-week multipliers, zeroes closed dates and
// renormalizes. If every weight degenerates to zero the open days
// fall back to an even share, so a valid distribution over open days
// is always produced (all-zero only when every day is closed).
func AdjustWeights(
	seasonal []float64,
	trend [7]float64,
	adminDow [7]float64,
	monthStart time.Time,
	closed ClosedDateSet,
) []float64 {
	adjusted := make([]float64, len(seasonal))
	openDays := []int{}

	for i := range seasonal {
		date := monthStart.AddDate(0, 0, i)
		if closed.Contains(date) {
			continue
		}
		openDays = append(openDays, i)
		dow := int(date.Weekday())
		adjusted[i] = seasonal[i] * trend[dow] * adminDow[dow]
	}

	sum := 0.0
	for _, w := range adjusted {
		sum += w
	}

	if sum > 0 {
		for i := range adjusted {
			adjusted[i] /= sum
		}
		return adjusted
	}

	if len(openDays) > 0 {
		evenShare := 1.0 / float64(len(openDays))
		for _, i := range openDays {
			adjusted[i] = evenShare
		}
	}

	return adjusted
}
