package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoreDay is one observed day of actuals for a store. Rows are
// read-only facts - the engine never writes them.
type StoreDay struct {
	StoreID      uuid.UUID
	Date         time.Time
	NetSales     float64
	Transactions int32
}

// DateRange is a half-open [Start, End) span of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}
