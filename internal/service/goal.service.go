package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storeops/internal"
	"storeops/internal/domain"
	"storeops/internal/logger"
	"storeops/internal/repository"
	"storeops/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNoDraftOpen = fmt.Errorf("no draft grid open for this store and month")

// GoalService owns the draft grids. Each (store, month) session holds
// one grid that is fully replaced - never merged - by runs and
// resets; a run-sequence counter stops a slow stale run from
// clobbering a newer one.
type GoalService interface {
	OpenMonth(storeID uuid.UUID, monthStart time.Time) (*domain.DraftGrid, error)
	RunSuggestion(ctx context.Context, in RunSuggestionInput) (*domain.DraftGrid, error)
	ResetEvenSplit(storeID uuid.UUID, monthStart time.Time) (*domain.DraftGrid, error)
	EditCell(storeID uuid.UUID, monthStart, goalDate time.Time, transactionsGoal int64, netSalesGoal decimal.Decimal) (*domain.DraftGrid, error)
	SaveDraft(storeID uuid.UUID, monthStart time.Time) (*domain.DraftGrid, error)
	Publish(storeID uuid.UUID, monthStart time.Time) (*domain.DraftGrid, error)
}

type draftSession struct {
	grid   *domain.DraftGrid
	runSeq uint64
}

type goalServiceHandler struct {
	SuggestionService     SuggestionService
	MonthlyGoalRepository repository.MonthlyGoalRepository
	DailyGoalRepository   repository.DailyGoalRepository

	mu       sync.Mutex
	sessions map[string]*draftSession
}

func NewGoalService(
	suggestionService SuggestionService,
	monthlyGoalRepository repository.MonthlyGoalRepository,
	dailyGoalRepository repository.DailyGoalRepository,
) GoalService {
	return &goalServiceHandler{
		SuggestionService:     suggestionService,
		MonthlyGoalRepository: monthlyGoalRepository,
		DailyGoalRepository:   dailyGoalRepository,
		sessions:              map[string]*draftSession{},
	}
}

func sessionKey(storeID uuid.UUID, monthStart time.Time) string {
	return storeID.String() + "|" + util.FormatDate(util.MonthStart(monthStart))
}

// OpenMonth returns the current grid for the session, creating it if
// needed: persisted goals when the month was saved before, otherwise
// an even split of the raw monthly target (zeros when no target yet).
func (h *goalServiceHandler) OpenMonth(storeID uuid.UUID, monthStart time.Time) (*domain.DraftGrid, error) {
	monthStart = util.MonthStart(monthStart)

	h.mu.Lock()
	if sess, ok := h.sessions[sessionKey(storeID, monthStart)]; ok {
		defer h.mu.Unlock()
		return sess.grid.DeepCopy(), nil
	}
	h.mu.Unlock()

	grid, err := h.loadInitialGrid(storeID, monthStart)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	key := sessionKey(storeID, monthStart)
	if sess, ok := h.sessions[key]; ok {
		// lost the race to another open - keep the existing session
		return sess.grid.DeepCopy(), nil
	}
	h.sessions[key] = &draftSession{grid: grid}
	return grid.DeepCopy(), nil
}

func (h *goalServiceHandler) loadInitialGrid(storeID uuid.UUID, monthStart time.Time) (*domain.DraftGrid, error) {
	persisted, err := h.DailyGoalRepository.ListMonth(storeID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted goals: %w", err)
	}
	if len(persisted) > 0 {
		state := domain.DraftStateSaved
		cells := make([]domain.DraftCell, len(persisted))
		for i, row := range persisted {
			cells[i] = domain.DraftCell{
				GoalDate:         row.GoalDate,
				DayNum:           row.GoalDate.Day(),
				Dow:              row.GoalDate.Weekday(),
				TransactionsGoal: int64(row.TransactionsGoal),
				NetSalesGoal:     row.NetSalesGoal,
			}
			if row.Published {
				state = domain.DraftStatePublished
			}
		}
		return &domain.DraftGrid{
			StoreID:    storeID,
			MonthStart: monthStart,
			State:      state,
			Cells:      cells,
			Provenance: "loaded from saved goals",
		}, nil
	}

	target, err := h.MonthlyGoalRepository.Get(storeID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly target: %w", err)
	}
	salesTotal := decimal.Zero
	var txnTotal int64
	if target != nil {
		salesTotal = target.SalesTotal
		txnTotal = target.TxnTotal
	}
	return internal.BuildEvenSplitGrid(storeID, monthStart, salesTotal, txnTotal), nil
}

func (h *goalServiceHandler) RunSuggestion(ctx context.Context, in RunSuggestionInput) (*domain.DraftGrid, error) {
	log := logger.FromContext(ctx)
	monthStart := util.MonthStart(in.MonthStart)

	if _, err := h.OpenMonth(in.StoreID, monthStart); err != nil {
		return nil, err
	}
	key := sessionKey(in.StoreID, monthStart)

	h.mu.Lock()
	sess := h.sessions[key]
	sess.runSeq++
	seq := sess.runSeq
	h.mu.Unlock()

	grid, err := h.SuggestionService.RunSuggestion(ctx, in)
	if err != nil {
		// fail closed: the last valid draft stays in place
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if sess.runSeq != seq {
		// a newer run landed while this one was fetching
		log.Warnw("discarding stale suggestion run", "storeID", in.StoreID, "seq", seq)
		return sess.grid.DeepCopy(), nil
	}
	sess.grid = grid
	return grid.DeepCopy(), nil
}

func (h *goalServiceHandler) ResetEvenSplit(storeID uuid.UUID, monthStart time.Time) (*domain.DraftGrid, error) {
	monthStart = util.MonthStart(monthStart)

	if _, err := h.OpenMonth(storeID, monthStart); err != nil {
		return nil, err
	}

	target, err := h.MonthlyGoalRepository.Get(storeID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly target: %w", err)
	}
	salesTotal := decimal.Zero
	var txnTotal int64
	if target != nil {
		salesTotal = target.SalesTotal
		txnTotal = target.TxnTotal
	}
	grid := internal.BuildEvenSplitGrid(storeID, monthStart, salesTotal, txnTotal)

	h.mu.Lock()
	defer h.mu.Unlock()
	sess := h.sessions[sessionKey(storeID, monthStart)]
	sess.runSeq++
	sess.grid = grid
	return grid.DeepCopy(), nil
}

func (h *goalServiceHandler) EditCell(storeID uuid.UUID, monthStart, goalDate time.Time, transactionsGoal int64, netSalesGoal decimal.Decimal) (*domain.DraftGrid, error) {
	if transactionsGoal < 0 || netSalesGoal.IsNegative() {
		return nil, fmt.Errorf("cell goals cannot be negative")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.sessions[sessionKey(storeID, monthStart)]
	if !ok {
		return nil, ErrNoDraftOpen
	}

	found := false
	for i := range sess.grid.Cells {
		if util.FormatDate(sess.grid.Cells[i].GoalDate) == util.FormatDate(goalDate) {
			sess.grid.Cells[i].TransactionsGoal = transactionsGoal
			sess.grid.Cells[i].NetSalesGoal = netSalesGoal
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("no cell for date %s", util.FormatDate(goalDate))
	}

	sess.grid.State = domain.DraftStateEdited
	return sess.grid.DeepCopy(), nil
}

func (h *goalServiceHandler) SaveDraft(storeID uuid.UUID, monthStart time.Time) (*domain.DraftGrid, error) {
	h.mu.Lock()
	sess, ok := h.sessions[sessionKey(storeID, monthStart)]
	if !ok {
		h.mu.Unlock()
		return nil, ErrNoDraftOpen
	}
	grid := sess.grid.DeepCopy()
	h.mu.Unlock()

	if err := h.DailyGoalRepository.UpsertCells(storeID, grid.Cells); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	sess.grid.State = domain.DraftStateSaved
	return sess.grid.DeepCopy(), nil
}

func (h *goalServiceHandler) Publish(storeID uuid.UUID, monthStart time.Time) (*domain.DraftGrid, error) {
	grid, err := h.SaveDraft(storeID, monthStart)
	if err != nil {
		return nil, err
	}

	if err := h.DailyGoalRepository.SetPublished(storeID, util.MonthStart(monthStart), true); err != nil {
		return nil, fmt.Errorf("failed to publish goals: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	sess := h.sessions[sessionKey(storeID, monthStart)]
	sess.grid.State = domain.DraftStatePublished
	grid.State = domain.DraftStatePublished
	return grid, nil
}
