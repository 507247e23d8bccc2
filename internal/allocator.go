package internal

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// AllocateTotal turns a final weight vector plus a monthly total into
// non-negative per-day integers summing exactly to total. Closed
// dates get zero regardless of weight. The last open day is the
// true-up day: it receives the exact remainder, so accumulated
// rounding never drifts the monthly sum. When rounding overshoots the
// total, the true-up day is floored at zero and the overshoot is
// walked back through earlier open days, so both the exact sum and
// non-negativity hold.
func AllocateTotal(weights []float64, total int64, monthStart time.Time, closed ClosedDateSet) []int64 {
	n := len(weights)
	out := make([]int64, n)
	if n == 0 {
		return out
	}

	trueUp := n - 1
	for i := n - 1; i >= 0; i-- {
		if !closed.Contains(monthStart.AddDate(0, 0, i)) {
			trueUp = i
			break
		}
	}

	var sumSoFar int64
	for i := 0; i < n; i++ {
		if closed.Contains(monthStart.AddDate(0, 0, i)) {
			out[i] = 0
			continue
		}
		if i == trueUp {
			out[i] = total - sumSoFar
		} else {
			v := int64(math.Round(weights[i] * float64(total)))
			if v < 0 {
				v = 0
			}
			out[i] = v
		}
		sumSoFar += out[i]
	}

	// Overshoot: the rounded days already exceed the total, leaving a
	// negative remainder on the true-up day. Zero it and claw the
	// deficit back from the preceding open days.
	if out[trueUp] < 0 {
		deficit := -out[trueUp]
		out[trueUp] = 0
		for i := trueUp - 1; i >= 0 && deficit > 0; i-- {
			take := out[i]
			if take > deficit {
				take = deficit
			}
			out[i] -= take
			deficit -= take
		}
	}

	return out
}

// BoundSuggestedTotal pads the raw monthly target into the configured
// corridor: suggested plans should sum to at least the raw target and
// not meaningfully over it. Applied independently per metric.
func BoundSuggestedTotal(raw decimal.Decimal, policy SuggestionPolicy) int64 {
	padded := raw.Mul(decimal.NewFromFloat(policy.PadDefault)).Ceil()
	lower := raw.Mul(decimal.NewFromFloat(policy.PadMin)).Ceil()
	upper := raw.Mul(decimal.NewFromFloat(policy.PadMax)).Ceil()

	if padded.LessThan(lower) {
		padded = lower
	}
	if padded.GreaterThan(upper) {
		padded = upper
	}
	return padded.IntPart()
}

// EvenSplit divides total across days with the remainder going to the
// first days in calendar order. This is the neutral default shown
// before any suggestion runs - closures are deliberately not applied.
func EvenSplit(total int64, days int) []int64 {
	out := make([]int64, days)
	if days == 0 {
		return out
	}
	floor := total / int64(days)
	remainder := total % int64(days)
	for i := range out {
		out[i] = floor
		if int64(i) < remainder {
			out[i]++
		}
	}
	return out
}
