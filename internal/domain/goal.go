package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyTarget is the authoritative input for a (store, month): the
// raw monthly totals the daily plan must reconcile to. Owned by the
// admin workflow; the engine only reads it.
type MonthlyTarget struct {
	StoreID    uuid.UUID
	MonthStart time.Time
	SalesTotal decimal.Decimal
	TxnTotal   int64
}

func (t MonthlyTarget) Runnable() bool {
	return t.SalesTotal.IsPositive() && t.TxnTotal > 0
}

type DraftState string

const (
	DraftStateUninitialized DraftState = "UNINITIALIZED"
	DraftStateEvenSplit     DraftState = "EVEN_SPLIT"
	DraftStateSuggested     DraftState = "SUGGESTED"
	DraftStateEdited        DraftState = "EDITED"
	DraftStateSaved         DraftState = "SAVED"
	DraftStatePublished     DraftState = "PUBLISHED"
)

// DraftCell is one editable day of the goal grid.
type DraftCell struct {
	GoalDate         time.Time
	DayNum           int
	Dow              time.Weekday
	TransactionsGoal int64
	NetSalesGoal     decimal.Decimal
}

// DraftGrid is the in-memory month grid for one (store, month)
// session. It is owned by a single writer and fully replaced, never
// merged, on each run or reset.
type DraftGrid struct {
	StoreID    uuid.UUID
	MonthStart time.Time
	State      DraftState
	Cells      []DraftCell
	Provenance string
}

func (g DraftGrid) Totals() (decimal.Decimal, int64) {
	sales := decimal.Zero
	var txns int64
	for _, cell := range g.Cells {
		sales = sales.Add(cell.NetSalesGoal)
		txns += cell.TransactionsGoal
	}
	return sales, txns
}

func (g DraftGrid) DeepCopy() *DraftGrid {
	newGrid := &DraftGrid{
		StoreID:    g.StoreID,
		MonthStart: g.MonthStart,
		State:      g.State,
		Provenance: g.Provenance,
		Cells:      make([]DraftCell, len(g.Cells)),
	}
	copy(newGrid.Cells, g.Cells)
	return newGrid
}
