package internal

import (
	"storeops/internal/domain"

	"github.com/montanaflynn/stats"
)

// BuildSeasonalWeights builds the day-of-month weight vector for one
// metric from the same-month-last-year rows: each entry is that
// calendar day's share of the month total. Rows whose day-of-month
// falls outside the target month (day 31 vs a 30-day month) are
// discarded. No signal at all yields a uniform split.
func BuildSeasonalWeights(metric Metric, lastYearRows []domain.StoreDay, daysInMonth int) []float64 {
	totals := make([]float64, daysInMonth)
	for _, row := range lastYearRows {
		day := row.Date.Day()
		if day < 1 || day > daysInMonth {
			continue
		}
		totals[day-1] += metric.ValueOf(row)
	}

	grandTotal, err := stats.Sum(totals)
	if err != nil || grandTotal == 0 {
		weights := make([]float64, daysInMonth)
		for i := range weights {
			weights[i] = 1.0 / float64(daysInMonth)
		}
		return weights
	}

	weights := make([]float64, daysInMonth)
	for i := range totals {
		weights[i] = totals[i] / grandTotal
	}
	return weights
}
