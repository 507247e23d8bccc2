package internal

import (
	"time"

	"storeops/internal/domain"
	"storeops/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BuildEvenSplitGrid produces the default grid: each raw monthly
// total split evenly across every calendar day, remainder to the
// first days. No padding, no closures - a neutral baseline rather
// than an operational forecast.
func BuildEvenSplitGrid(
	storeID uuid.UUID,
	monthStart time.Time,
	salesTotal decimal.Decimal,
	txnTotal int64,
) *domain.DraftGrid {
	monthStart = util.MonthStart(monthStart)
	daysInMonth := util.DaysInMonth(monthStart)

	salesByDay := EvenSplit(salesTotal.Round(0).IntPart(), daysInMonth)
	txnsByDay := EvenSplit(txnTotal, daysInMonth)

	grid := &domain.DraftGrid{
		StoreID:    storeID,
		MonthStart: monthStart,
		State:      domain.DraftStateEvenSplit,
		Cells:      make([]domain.DraftCell, daysInMonth),
		Provenance: "even split of raw monthly targets",
	}
	for i := 0; i < daysInMonth; i++ {
		date := monthStart.AddDate(0, 0, i)
		grid.Cells[i] = domain.DraftCell{
			GoalDate:         date,
			DayNum:           i + 1,
			Dow:              date.Weekday(),
			TransactionsGoal: txnsByDay[i],
			NetSalesGoal:     decimal.NewFromInt(salesByDay[i]),
		}
	}
	return grid
}
