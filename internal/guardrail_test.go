package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ApplyGuardrail(t *testing.T) {
	t.Run("weights inside the band pass through", func(t *testing.T) {
		weights := make([]float64, 30)
		for i := range weights {
			weights[i] = 1.0 / 30.0
		}
		out := ApplyGuardrail(weights, 100_000, 0.35)
		require.InDelta(t, 1.0, sumFloats(out), 1e-9)
		for i := range out {
			require.InDelta(t, weights[i], out[i], 1e-9)
		}
	})

	t.Run("spiky day clamped to the cap around the daily average", func(t *testing.T) {
		// $100k over 30 days: average $3,333.33, cap at +35% is $4,500
		weights := make([]float64, 30)
		for i := range weights {
			weights[i] = 0.5 / 29.0
		}
		weights[14] = 0.5 // half the month on one day

		out := ApplyGuardrail(weights, 100_000, 0.35)
		require.InDelta(t, 1.0, sumFloats(out), 1e-9)

		avg := 100_000.0 / 30.0
		for i, w := range out {
			day := w * 100_000
			require.LessOrEqual(t, day, avg*1.35+1, "day %d over the cap", i)
			require.GreaterOrEqual(t, day, avg*0.65-1, "day %d under the floor", i)
		}
		require.InDelta(t, avg*1.35, out[14]*100_000, 1.0)
	})

	t.Run("residual is redistributed so the total is conserved", func(t *testing.T) {
		weights := []float64{0.6, 0.1, 0.1, 0.1, 0.1}
		out := ApplyGuardrail(weights, 1000, 0.35)
		require.InDelta(t, 1.0, sumFloats(out), 1e-6)
	})

	t.Run("zero-weight days are never lifted to the floor", func(t *testing.T) {
		weights := make([]float64, 30)
		for i := range weights {
			weights[i] = 1.0 / 28.0
		}
		weights[6] = 0
		weights[20] = 0

		out := ApplyGuardrail(weights, 102_000, 0.35)
		require.Zero(t, out[6])
		require.Zero(t, out[20])
		require.InDelta(t, 1.0, sumFloats(out), 1e-9)
	})

	t.Run("all-zero weights stay all zero", func(t *testing.T) {
		out := ApplyGuardrail(make([]float64, 30), 102_000, 0.35)
		require.Equal(t, make([]float64, 30), out)
	})

	t.Run("zero total passes weights through untouched", func(t *testing.T) {
		weights := []float64{0.25, 0.75}
		out := ApplyGuardrail(weights, 0, 0.35)
		require.Equal(t, weights, out)
	})

	t.Run("empty input", func(t *testing.T) {
		require.Empty(t, ApplyGuardrail(nil, 1000, 0.35))
	})
}
