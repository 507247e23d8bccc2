package internal

import (
	"testing"

	"storeops/internal/domain"
	"storeops/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_BuildSeasonalWeights(t *testing.T) {
	t.Run("weights are each day's share of the month total", func(t *testing.T) {
		rows := []domain.StoreDay{
			{Date: util.NewDate(2025, 9, 1), NetSales: 100, Transactions: 10},
			{Date: util.NewDate(2025, 9, 2), NetSales: 300, Transactions: 30},
		}
		weights := BuildSeasonalWeights(Metric_Sales, rows, 30)
		require.Len(t, weights, 30)
		require.InDelta(t, 0.25, weights[0], 1e-9)
		require.InDelta(t, 0.75, weights[1], 1e-9)
		require.Zero(t, weights[2])
		require.InDelta(t, 1.0, sumFloats(weights), 1e-9)
	})

	t.Run("transactions metric reads the transactions column", func(t *testing.T) {
		rows := []domain.StoreDay{
			{Date: util.NewDate(2025, 9, 1), NetSales: 999, Transactions: 10},
			{Date: util.NewDate(2025, 9, 2), NetSales: 1, Transactions: 10},
		}
		weights := BuildSeasonalWeights(Metric_Transactions, rows, 30)
		require.InDelta(t, 0.5, weights[0], 1e-9)
		require.InDelta(t, 0.5, weights[1], 1e-9)
	})

	t.Run("no rows falls back to uniform", func(t *testing.T) {
		weights := BuildSeasonalWeights(Metric_Sales, nil, 31)
		require.Len(t, weights, 31)
		for _, w := range weights {
			require.InDelta(t, 1.0/31.0, w, 1e-9)
		}
	})

	t.Run("all-zero rows fall back to uniform", func(t *testing.T) {
		rows := []domain.StoreDay{
			{Date: util.NewDate(2025, 2, 1), NetSales: 0},
		}
		weights := BuildSeasonalWeights(Metric_Sales, rows, 28)
		require.InDelta(t, 1.0/28.0, weights[0], 1e-9)
	})

	t.Run("day 31 discarded for a 30-day month", func(t *testing.T) {
		rows := []domain.StoreDay{
			{Date: util.NewDate(2025, 8, 31), NetSales: 500},
			{Date: util.NewDate(2025, 9, 1), NetSales: 500},
		}
		weights := BuildSeasonalWeights(Metric_Sales, rows, 30)
		require.InDelta(t, 1.0, weights[0], 1e-9)
	})
}

func sumFloats(in []float64) float64 {
	sum := 0.0
	for _, v := range in {
		sum += v
	}
	return sum
}
