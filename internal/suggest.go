package internal

import (
	"fmt"
	"time"

	"storeops/internal/domain"
	"storeops/internal/util"

	"github.com/shopspring/decimal"
)

// ErrTargetNotRunnable blocks a suggestion run before any state is
// touched: both monthly totals must be present and positive.
var ErrTargetNotRunnable = fmt.Errorf("monthly target missing or not positive for both metrics")

type SuggestionInput struct {
	Target domain.MonthlyTarget

	// same-month-last-year actuals for the store
	LastYearRows []domain.StoreDay
	// trailing-window actuals, store-first with company-wide fallback
	TrendRows   []domain.StoreDay
	TrendWindow domain.DateRange
	// which source TrendRows came from, for provenance ("store" or
	// "company")
	TrendSource string

	ClosedDatesText     string
	AdminDowMultipliers [7]float64

	Policy SuggestionPolicy
}

// BuildSuggestedGrid runs the full allocation pipeline on already
// fetched inputs. It is pure and deterministic: identical inputs
// produce identical grids.
func BuildSuggestedGrid(in SuggestionInput) (*domain.DraftGrid, error) {
	if !in.Target.Runnable() {
		return nil, ErrTargetNotRunnable
	}

	monthStart := util.MonthStart(in.Target.MonthStart)
	daysInMonth := util.DaysInMonth(monthStart)
	adminDow := SanitizeDowMultipliers(in.AdminDowMultipliers)

	closed := InferClosedDates(monthStart, in.LastYearRows, in.ClosedDatesText)

	salesTotal := BoundSuggestedTotal(in.Target.SalesTotal, in.Policy)
	txnTotal := BoundSuggestedTotal(decimal.NewFromInt(in.Target.TxnTotal), in.Policy)

	salesByDay := allocateMetric(Metric_Sales, in, monthStart, daysInMonth, adminDow, closed, salesTotal)
	txnsByDay := allocateMetric(Metric_Transactions, in, monthStart, daysInMonth, adminDow, closed, txnTotal)

	grid := &domain.DraftGrid{
		StoreID:    in.Target.StoreID,
		MonthStart: monthStart,
		State:      domain.DraftStateSuggested,
		Cells:      make([]domain.DraftCell, daysInMonth),
		Provenance: buildProvenance(in, monthStart, closed),
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

	return grid, nil
}

func allocateMetric(
	metric Metric,
	in SuggestionInput,
	monthStart time.Time,
	daysInMonth int,
	adminDow [7]float64,
	closed ClosedDateSet,
	total int64,
) []int64 {
	seasonal := BuildSeasonalWeights(metric, in.LastYearRows, daysInMonth)
	trend := BuildTrendMultipliers(metric, in.TrendRows, in.Policy)
	adjusted := AdjustWeights(seasonal, trend, adminDow, monthStart, closed)
	guarded := ApplyGuardrail(adjusted, float64(total), in.Policy.GuardrailVariance)
	return AllocateTotal(guarded, total, monthStart, closed)
}

func buildProvenance(in SuggestionInput, monthStart time.Time, closed ClosedDateSet) string {
	lastYear := util.SameMonthLastYear(monthStart)
	return fmt.Sprintf(
		"suggested from %s seasonality, %dd %s trend window [%s, %s), %d closed day(s), guardrail ±%.0f%%, pad %.3f in [%.3f, %.3f]; ATV is calculated, not targeted",
		lastYear.Format("2006-01"),
		in.Policy.TrendWindowDays,
		in.TrendSource,
		util.FormatDate(in.TrendWindow.Start),
		util.FormatDate(in.TrendWindow.End),
		len(closed),
		in.Policy.GuardrailVariance*100,
		in.Policy.PadDefault,
		in.Policy.PadMin,
		in.Policy.PadMax,
	)
}
