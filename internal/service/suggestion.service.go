package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storeops/internal"
	"storeops/internal/db/models/postgres/public/model"
	"storeops/internal/domain"
	"storeops/internal/logger"
	"storeops/internal/repository"
	"storeops/internal/util"

	"github.com/google/uuid"
)

// ErrNoMonthlyTarget blocks a run when no target row exists for the
// (store, month) at all.
var ErrNoMonthlyTarget = fmt.Errorf("no monthly target set for this store and month")

type RunSuggestionInput struct {
	StoreID         uuid.UUID
	MonthStart      time.Time
	ClosedDatesText string
	DowMultipliers  [7]float64
	// anchor for the trailing trend window; zero value means "now"
	AsOf time.Time
}

// SuggestionService runs the allocation pipeline end to end: the
// historical fetches are the only I/O, everything downstream is the
// pure engine in package internal.
type SuggestionService interface {
	RunSuggestion(ctx context.Context, in RunSuggestionInput) (*domain.DraftGrid, error)
}

type suggestionServiceHandler struct {
	MonthlyGoalRepository   repository.MonthlyGoalRepository
	StoreDayRepository      repository.StoreDayRepository
	SuggestionRunRepository repository.SuggestionRunRepository
	Policy                  internal.SuggestionPolicy
}

func NewSuggestionService(
	monthlyGoalRepository repository.MonthlyGoalRepository,
	storeDayRepository repository.StoreDayRepository,
	suggestionRunRepository repository.SuggestionRunRepository,
	policy internal.SuggestionPolicy,
) SuggestionService {
	return suggestionServiceHandler{
		MonthlyGoalRepository:   monthlyGoalRepository,
		StoreDayRepository:      storeDayRepository,
		SuggestionRunRepository: suggestionRunRepository,
		Policy:                  policy,
	}
}

func (h suggestionServiceHandler) RunSuggestion(ctx context.Context, in RunSuggestionInput) (*domain.DraftGrid, error) {
	log := logger.FromContext(ctx)
	monthStart := util.MonthStart(in.MonthStart)

	target, err := h.MonthlyGoalRepository.Get(in.StoreID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly target: %w", err)
	}
	if target == nil {
		return nil, ErrNoMonthlyTarget
	}
	if !target.Runnable() {
		return nil, internal.ErrTargetNotRunnable
	}

	lastYearStart := util.SameMonthLastYear(monthStart)
	lastYearRows, err := h.StoreDayRepository.List(&in.StoreID, lastYearStart, lastYearStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to load last-year rows: %w", err)
	}

	asOf := in.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	trendWindow := domain.DateRange{
		Start: util.NewDate(asOf.Year(), int(asOf.Month()), asOf.Day()).AddDate(0, 0, -h.Policy.TrendWindowDays),
		End:   util.NewDate(asOf.Year(), int(asOf.Month()), asOf.Day()),
	}
	trendSource := "store"
	trendRows, err := h.StoreDayRepository.List(&in.StoreID, trendWindow.Start, trendWindow.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load trend window rows: %w", err)
	}
	if len(trendRows) == 0 {
		// the store has no recent history - lean on company-wide
		trendSource = "company"
		trendRows, err = h.StoreDayRepository.List(nil, trendWindow.Start, trendWindow.End)
		if err != nil {
			return nil, fmt.Errorf("failed to load company trend rows: %w", err)
		}
	}

	grid, err := internal.BuildSuggestedGrid(internal.SuggestionInput{
		Target:              *target,
		LastYearRows:        lastYearRows,
		TrendRows:           trendRows,
		TrendWindow:         trendWindow,
		TrendSource:         trendSource,
		ClosedDatesText:     in.ClosedDatesText,
		AdminDowMultipliers: in.DowMultipliers,
		Policy:              h.Policy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build suggested grid: %w", err)
	}

	if err := h.recordRun(grid); err != nil {
		// the draft is still valid without its audit row
		log.Warnf("failed to record suggestion run: %v", err)
	}

	log.Infow("suggestion run complete",
		"storeID", in.StoreID,
		"month", monthStart.Format("2006-01"),
		"trendSource", trendSource,
	)

	return grid, nil
}

func (h suggestionServiceHandler) recordRun(grid *domain.DraftGrid) error {
	policyJSON, err := json.Marshal(h.Policy)
	if err != nil {
		return err
	}

	return h.SuggestionRunRepository.Add(model.SuggestionRun{
		StoreID:    grid.StoreID,
		MonthStart: grid.MonthStart,
		Provenance: grid.Provenance,
		PolicyJSON: util.StringPointer(string(policyJSON)),
		CreatedAt:  time.Now().UTC(),
	})
}
