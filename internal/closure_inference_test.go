package internal

import (
	"testing"

	"storeops/internal/domain"
	"storeops/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_ParseClosedDatesText(t *testing.T) {
	t.Run("mixed separators", func(t *testing.T) {
		closed := ParseClosedDatesText("2026-09-25, 2026-09-07\n2026-09-13\t2026-09-01")
		require.Equal(t, 4, len(closed))
		require.True(t, closed["2026-09-25"])
		require.True(t, closed["2026-09-01"])
	})
	t.Run("invalid tokens silently dropped", func(t *testing.T) {
		closed := ParseClosedDatesText("garbage, 2026-13-99, 25-09-2026, 2026-09-25extra, 2026-09-25")
		require.Equal(t, ClosedDateSet{"2026-09-25": true}, closed)
	})
	t.Run("empty input", func(t *testing.T) {
		require.Empty(t, ParseClosedDatesText(""))
		require.Empty(t, ParseClosedDatesText("  \n ,, "))
	})
}

func Test_InferClosedDates(t *testing.T) {
	monthStart := util.NewDate(2026, 9, 1)

	t.Run("zero-transaction day a year prior is inferred closed", func(t *testing.T) {
		lastYearRows := []domain.StoreDay{}
		for day := 1; day <= 30; day++ {
			txns := int32(50)
			if day == 10 {
				txns = 0
			}
			lastYearRows = append(lastYearRows, domain.StoreDay{
				Date:         util.NewDate(2025, 9, day),
				NetSales:     1000,
				Transactions: txns,
			})
		}

		closed := InferClosedDates(monthStart, lastYearRows, "2026-09-25")
		require.True(t, closed["2026-09-10"])
		require.True(t, closed["2026-09-25"])
		require.Equal(t, 2, len(closed))
	})

	t.Run("no last-year data infers nothing", func(t *testing.T) {
		closed := InferClosedDates(monthStart, nil, "2026-09-25")
		require.Equal(t, ClosedDateSet{"2026-09-25": true}, closed)
	})

	t.Run("duplicate explicit and inferred dates collapse", func(t *testing.T) {
		lastYearRows := []domain.StoreDay{}
		for day := 1; day <= 30; day++ {
			txns := int32(50)
			if day == 25 {
				txns = 0
			}
			lastYearRows = append(lastYearRows, domain.StoreDay{
				Date:         util.NewDate(2025, 9, day),
				Transactions: txns,
			})
		}
		closed := InferClosedDates(monthStart, lastYearRows, "2026-09-25")
		require.Equal(t, 1, len(closed))
	})

	t.Run("day 31 row ignored for a 30-day month", func(t *testing.T) {
		lastYearRows := []domain.StoreDay{}
		for day := 1; day <= 30; day++ {
			lastYearRows = append(lastYearRows, domain.StoreDay{
				Date:         util.NewDate(2025, 9, day),
				Transactions: 10,
			})
		}
		// out-of-range date from a sloppy export
		lastYearRows = append(lastYearRows, domain.StoreDay{
			Date:         util.NewDate(2025, 10, 31),
			Transactions: 0,
		})

		closed := InferClosedDates(monthStart, lastYearRows, "")
		require.Empty(t, closed)
	})
}
