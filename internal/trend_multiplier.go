package internal

import (
	"storeops/internal/domain"

	"github.com/montanaflynn/stats"
)

// BuildTrendMultipliers derives a 7-element day-of-week multiplier
// (index 0 = Sunday) for one metric from a trailing window of rows.
// Each weekday's share of the window total is divided by the uniform
// expectation of 1/7, then clamped so a skewed window can neither
// dominate nor vanish a weekday. An empty window yields all ones.
func BuildTrendMultipliers(metric Metric, windowRows []domain.StoreDay, policy SuggestionPolicy) [7]float64 {
	multipliers := [7]float64{1, 1, 1, 1, 1, 1, 1}

	totalsByDow := make([]float64, 7)
	for _, row := range windowRows {
		totalsByDow[int(row.Date.Weekday())] += metric.ValueOf(row)
	}

	grandTotal, err := stats.Sum(totalsByDow)
	if err != nil || grandTotal == 0 {
		return multipliers
	}

	for dow := 0; dow < 7; dow++ {
		share := totalsByDow[dow] / grandTotal
		mult := share / (1.0 / 7.0)
		if mult < policy.TrendClampMin {
			mult = policy.TrendClampMin
		}
		if mult > policy.TrendClampMax {
			mult = policy.TrendClampMax
		}
		multipliers[dow] = mult
	}

	return multipliers
}

// SanitizeDowMultipliers coerces invalid admin day-of-week inputs to
// the neutral 1.0.
func SanitizeDowMultipliers(in [7]float64) [7]float64 {
	out := in
	for i := range out {
		if out[i] <= 0 {
			out[i] = 1.0
		}
	}
	return out
}
