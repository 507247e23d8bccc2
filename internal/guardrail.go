package internal

import (
	"math"
)

const (
	guardrailMaxIterations = 80
	guardrailEpsilon       = 1e-5
)

// ApplyGuardrail clamps each day's provisional share of the total
// into a band around the daily average, then iteratively hands the
// clamping residual back to days that still have room inside the
// band. A fixed clamp alone would lose mass; the bounded loop
// conserves the total as tightly as redistribution allows. Days with
// zero weight are exempt from the lower clamp: they carry no demand
// (typically closures), and lifting them to the floor would fabricate
// volume the allocator zeroes again, dumping it all on the true-up
// day. The result is renormalized to sum to 1 - callers re-multiply
// by their total.
func ApplyGuardrail(weights []float64, total float64, maxVariance float64) []float64 {
	n := len(weights)
	out := make([]float64, n)
	if n == 0 || total <= 0 {
		copy(out, weights)
		return out
	}

	avg := total / float64(n)
	minDay := avg * (1 - maxVariance)
	maxDay := avg * (1 + maxVariance)

	values := make([]float64, n)
	for i := range weights {
		// a zero weight means the day carries no demand (typically a
		// closure) - lifting it to the floor would fabricate volume
		// the allocator zeroes again, dumping it all on the true-up
		// day
		if weights[i] <= 0 {
			continue
		}
		v := weights[i] * total
		if v < minDay {
			v = minDay
		}
		if v > maxDay {
			v = maxDay
		}
		values[i] = v
	}

	for iter := 0; iter < guardrailMaxIterations; iter++ {
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		delta := total - sum
		if math.Abs(delta) < guardrailEpsilon {
			break
		}

		// room toward the bound the residual pushes against
		room := make([]float64, n)
		totalRoom := 0.0
		for i, v := range values {
			if v == 0 {
				continue
			}
			if delta > 0 {
				room[i] = maxDay - v
			} else {
				room[i] = v - minDay
			}
			if room[i] < 0 {
				room[i] = 0
			}
			totalRoom += room[i]
		}
		if totalRoom <= 0 {
			// every day pinned to a bound - bail rather than divide
			// by zero; the final renormalization corrects the sum
			break
		}

		for i := range values {
			if room[i] == 0 {
				continue
			}
			add := delta * (room[i] / totalRoom)
			if add > room[i] {
				add = room[i]
			}
			if add < -room[i] {
				add = -room[i]
			}
			values[i] += add
		}
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	if sum <= 0 {
		copy(out, weights)
		return out
	}
	for i, v := range values {
		out[i] = v / sum
	}
	return out
}
