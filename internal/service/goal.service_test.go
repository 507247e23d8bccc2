package service

import (
	"context"
	"testing"

	"storeops/internal/db/models/postgres/public/model"
	"storeops/internal/domain"
	mock_repository "storeops/internal/repository/mocks"
	"storeops/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeSuggestionService struct {
	fn func(ctx context.Context, in RunSuggestionInput) (*domain.DraftGrid, error)
}

func (f fakeSuggestionService) RunSuggestion(ctx context.Context, in RunSuggestionInput) (*domain.DraftGrid, error) {
	return f.fn(ctx, in)
}

func newGoalServiceForTest(
	suggestionService SuggestionService,
	monthlyGoalRepository *mock_repository.MockMonthlyGoalRepository,
	dailyGoalRepository *mock_repository.MockDailyGoalRepository,
) *goalServiceHandler {
	return &goalServiceHandler{
		SuggestionService:     suggestionService,
		MonthlyGoalRepository: monthlyGoalRepository,
		DailyGoalRepository:   dailyGoalRepository,
		sessions:              map[string]*draftSession{},
	}
}

func Test_OpenMonth(t *testing.T) {
	storeID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	monthStart := util.NewDate(2026, 9, 1)

	t.Run("no target yet yields an all-zero even split", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monthlyGoalRepository := mock_repository.NewMockMonthlyGoalRepository(ctrl)
		dailyGoalRepository := mock_repository.NewMockDailyGoalRepository(ctrl)
		handler := newGoalServiceForTest(nil, monthlyGoalRepository, dailyGoalRepository)

		dailyGoalRepository.EXPECT().ListMonth(storeID, monthStart).Return(nil, nil)
		monthlyGoalRepository.EXPECT().Get(storeID, monthStart).Return(nil, nil)

		grid, err := handler.OpenMonth(storeID, monthStart)
		require.NoError(t, err)
		require.Equal(t, domain.DraftStateEvenSplit, grid.State)
		require.Len(t, grid.Cells, 30)

		salesSum, txnSum := grid.Totals()
		require.True(t, salesSum.IsZero())
		require.Zero(t, txnSum)
	})

	t.Run("raw target is split evenly and the session is reused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monthlyGoalRepository := mock_repository.NewMockMonthlyGoalRepository(ctrl)
		dailyGoalRepository := mock_repository.NewMockDailyGoalRepository(ctrl)
		handler := newGoalServiceForTest(nil, monthlyGoalRepository, dailyGoalRepository)

		dailyGoalRepository.EXPECT().ListMonth(storeID, monthStart).Return(nil, nil).Times(1)
		monthlyGoalRepository.EXPECT().Get(storeID, monthStart).Return(&domain.MonthlyTarget{
			StoreID:    storeID,
			MonthStart: monthStart,
			SalesTotal: decimal.NewFromInt(90_000),
			TxnTotal:   3_000,
		}, nil).Times(1)

		grid, err := handler.OpenMonth(storeID, monthStart)
		require.NoError(t, err)
		require.Equal(t, int64(3_000), grid.Cells[0].NetSalesGoal.IntPart())
		require.Equal(t, int64(100), grid.Cells[0].TransactionsGoal)

		// second open hits the in-memory session, not the repositories
		again, err := handler.OpenMonth(storeID, monthStart)
		require.NoError(t, err)
		require.Equal(t, grid.Cells, again.Cells)
	})

	t.Run("persisted goals load as a saved draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monthlyGoalRepository := mock_repository.NewMockMonthlyGoalRepository(ctrl)
		dailyGoalRepository := mock_repository.NewMockDailyGoalRepository(ctrl)
		handler := newGoalServiceForTest(nil, monthlyGoalRepository, dailyGoalRepository)

		persisted := []model.DailyGoal{}
		for day := 1; day <= 30; day++ {
			persisted = append(persisted, model.DailyGoal{
				StoreID:          storeID,
				GoalDate:         util.NewDate(2026, 9, day),
				NetSalesGoal:     decimal.NewFromInt(3_400),
				TransactionsGoal: 102,
			})
		}
		dailyGoalRepository.EXPECT().ListMonth(storeID, monthStart).Return(persisted, nil)

		grid, err := handler.OpenMonth(storeID, monthStart)
		require.NoError(t, err)
		require.Equal(t, domain.DraftStateSaved, grid.State)
		require.Equal(t, "loaded from saved goals", grid.Provenance)
		require.Equal(t, int64(102), grid.Cells[0].TransactionsGoal)
	})

	t.Run("published goals load as published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monthlyGoalRepository := mock_repository.NewMockMonthlyGoalRepository(ctrl)
		dailyGoalRepository := mock_repository.NewMockDailyGoalRepository(ctrl)
		handler := newGoalServiceForTest(nil, monthlyGoalRepository, dailyGoalRepository)

		dailyGoalRepository.EXPECT().ListMonth(storeID, monthStart).Return([]model.DailyGoal{
			{
				StoreID:          storeID,
				GoalDate:         monthStart,
				NetSalesGoal:     decimal.NewFromInt(3_400),
				TransactionsGoal: 102,
				Published:        true,
			},
		}, nil)

		grid, err := handler.OpenMonth(storeID, monthStart)
		require.NoError(t, err)
		require.Equal(t, domain.DraftStatePublished, grid.State)
	})
}

func Test_EditCell(t *testing.T) {
	storeID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	monthStart := util.NewDate(2026, 9, 1)

	openZeroDraft := func(t *testing.T, ctrl *gomock.Controller) *goalServiceHandler {
		monthlyGoalRepository := mock_repository.NewMockMonthlyGoalRepository(ctrl)
		dailyGoalRepository := mock_repository.NewMockDailyGoalRepository(ctrl)
		handler := newGoalServiceForTest(nil, monthlyGoalRepository, dailyGoalRepository)

		dailyGoalRepository.EXPECT().ListMonth(storeID, monthStart).Return(nil, nil)
		monthlyGoalRepository.EXPECT().Get(storeID, monthStart).Return(nil, nil)
		_, err := handler.OpenMonth(storeID, monthStart)
		require.NoError(t, err)
		return handler
	}

	t.Run("edit marks the draft edited and keeps other cells", func(t *testing.T) {
		handler := openZeroDraft(t, gomock.NewController(t))

		grid, err := handler.EditCell(storeID, monthStart, util.NewDate(2026, 9, 15), 120, decimal.NewFromInt(4_000))
		require.NoError(t, err)
		require.Equal(t, domain.DraftStateEdited, grid.State)
		require.Equal(t, int64(120), grid.Cells[14].TransactionsGoal)
		require.Equal(t, int64(4_000), grid.Cells[14].NetSalesGoal.IntPart())
		require.Zero(t, grid.Cells[13].TransactionsGoal)
	})

	t.Run("negative goals are rejected", func(t *testing.T) {
		handler := openZeroDraft(t, gomock.NewController(t))

		_, err := handler.EditCell(storeID, monthStart, util.NewDate(2026, 9, 15), -1, decimal.Zero)
		require.Error(t, err)
		_, err = handler.EditCell(storeID, monthStart, util.NewDate(2026, 9, 15), 0, decimal.NewFromInt(-5))
		require.Error(t, err)
	})

	t.Run("edit without an open draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := newGoalServiceForTest(nil,
			mock_repository.NewMockMonthlyGoalRepository(ctrl),
			mock_repository.NewMockDailyGoalRepository(ctrl),
		)
		_, err := handler.EditCell(storeID, monthStart, monthStart, 1, decimal.Zero)
		require.ErrorIs(t, err, ErrNoDraftOpen)
	})

	t.Run("edit outside the month", func(t *testing.T) {
		handler := openZeroDraft(t, gomock.NewController(t))
		_, err := handler.EditCell(storeID, monthStart, util.NewDate(2026, 10, 1), 1, decimal.Zero)
		require.ErrorContains(t, err, "no cell for date")
	})
}

func Test_SaveDraftAndPublish(t *testing.T) {
	storeID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	monthStart := util.NewDate(2026, 9, 1)

	t.Run("save persists the cells and marks the draft saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monthlyGoalRepository := mock_repository.NewMockMonthlyGoalRepository(ctrl)
		dailyGoalRepository := mock_repository.NewMockDailyGoalRepository(ctrl)
		handler := newGoalServiceForTest(nil, monthlyGoalRepository, dailyGoalRepository)

		dailyGoalRepository.EXPECT().ListMonth(storeID, monthStart).Return(nil, nil)
		monthlyGoalRepository.EXPECT().Get(storeID, monthStart).Return(&domain.MonthlyTarget{
			StoreID:    storeID,
			MonthStart: monthStart,
			SalesTotal: decimal.NewFromInt(90_000),
			TxnTotal:   3_000,
		}, nil)
		_, err := handler.OpenMonth(storeID, monthStart)
		require.NoError(t, err)

		dailyGoalRepository.EXPECT().
			UpsertCells(storeID, gomock.Len(30)).
			Return(nil)

		grid, err := handler.SaveDraft(storeID, monthStart)
		require.NoError(t, err)
		require.Equal(t, domain.DraftStateSaved, grid.State)
	})

	t.Run("save without an open draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := newGoalServiceForTest(nil,
			mock_repository.NewMockMonthlyGoalRepository(ctrl),
			mock_repository.NewMockDailyGoalRepository(ctrl),
		)
		_, err := handler.SaveDraft(storeID, monthStart)
		require.ErrorIs(t, err, ErrNoDraftOpen)
	})

	t.Run("publish saves then flips the published flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monthlyGoalRepository := mock_repository.NewMockMonthlyGoalRepository(ctrl)
		dailyGoalRepository := mock_repository.NewMockDailyGoalRepository(ctrl)
		handler := newGoalServiceForTest(nil, monthlyGoalRepository, dailyGoalRepository)

		dailyGoalRepository.EXPECT().ListMonth(storeID, monthStart).Return(nil, nil)
		monthlyGoalRepository.EXPECT().Get(storeID, monthStart).Return(&domain.MonthlyTarget{
			StoreID:    storeID,
			MonthStart: monthStart,
			SalesTotal: decimal.NewFromInt(90_000),
			TxnTotal:   3_000,
		}, nil)
		_, err := handler.OpenMonth(storeID, monthStart)
		require.NoError(t, err)

		gomock.InOrder(
			dailyGoalRepository.EXPECT().UpsertCells(storeID, gomock.Len(30)).Return(nil),
			dailyGoalRepository.EXPECT().SetPublished(storeID, monthStart, true).Return(nil),
		)

		grid, err := handler.Publish(storeID, monthStart)
		require.NoError(t, err)
		require.Equal(t, domain.DraftStatePublished, grid.State)
	})
}

func Test_GoalService_RunSuggestion(t *testing.T) {
	storeID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	monthStart := util.NewDate(2026, 9, 1)

	suggestedGrid := func() *domain.DraftGrid {
		grid := &domain.DraftGrid{
			StoreID:    storeID,
			MonthStart: monthStart,
			State:      domain.DraftStateSuggested,
			Cells:      make([]domain.DraftCell, 30),
			Provenance: "suggested",
		}
		for i := range grid.Cells {
			date := monthStart.AddDate(0, 0, i)
			grid.Cells[i] = domain.DraftCell{
				GoalDate:         date,
				DayNum:           i + 1,
				Dow:              date.Weekday(),
				TransactionsGoal: 102,
				NetSalesGoal:     decimal.NewFromInt(3_400),
			}
		}
		return grid
	}

	t.Run("a completed run replaces the draft wholesale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monthlyGoalRepository := mock_repository.NewMockMonthlyGoalRepository(ctrl)
		dailyGoalRepository := mock_repository.NewMockDailyGoalRepository(ctrl)
		suggestionService := fakeSuggestionService{
			fn: func(ctx context.Context, in RunSuggestionInput) (*domain.DraftGrid, error) {
				return suggestedGrid(), nil
			},
		}
		handler := newGoalServiceForTest(suggestionService, monthlyGoalRepository, dailyGoalRepository)

		dailyGoalRepository.EXPECT().ListMonth(storeID, monthStart).Return(nil, nil)
		monthlyGoalRepository.EXPECT().Get(storeID, monthStart).Return(nil, nil)

		grid, err := handler.RunSuggestion(context.Background(), RunSuggestionInput{
			StoreID:    storeID,
			MonthStart: monthStart,
		})
		require.NoError(t, err)
		require.Equal(t, domain.DraftStateSuggested, grid.State)
		require.Equal(t, int64(102), grid.Cells[0].TransactionsGoal)
	})

	t.Run("a failed run leaves the last valid draft in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monthlyGoalRepository := mock_repository.NewMockMonthlyGoalRepository(ctrl)
		dailyGoalRepository := mock_repository.NewMockDailyGoalRepository(ctrl)
		suggestionService := fakeSuggestionService{
			fn: func(ctx context.Context, in RunSuggestionInput) (*domain.DraftGrid, error) {
				return nil, ErrNoMonthlyTarget
			},
		}
		handler := newGoalServiceForTest(suggestionService, monthlyGoalRepository, dailyGoalRepository)

		dailyGoalRepository.EXPECT().ListMonth(storeID, monthStart).Return(nil, nil)
		monthlyGoalRepository.EXPECT().Get(storeID, monthStart).Return(nil, nil)

		before, err := handler.OpenMonth(storeID, monthStart)
		require.NoError(t, err)

		_, err = handler.RunSuggestion(context.Background(), RunSuggestionInput{
			StoreID:    storeID,
			MonthStart: monthStart,
		})
		require.ErrorIs(t, err, ErrNoMonthlyTarget)

		after, err := handler.OpenMonth(storeID, monthStart)
		require.NoError(t, err)
		require.Equal(t, before.Cells, after.Cells)
		require.Equal(t, before.State, after.State)
	})

	t.Run("a run overtaken by a reset is discarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		monthlyGoalRepository := mock_repository.NewMockMonthlyGoalRepository(ctrl)
		dailyGoalRepository := mock_repository.NewMockDailyGoalRepository(ctrl)

		handler := newGoalServiceForTest(nil, monthlyGoalRepository, dailyGoalRepository)
		handler.SuggestionService = fakeSuggestionService{
			fn: func(ctx context.Context, in RunSuggestionInput) (*domain.DraftGrid, error) {
				// a reset lands while this run is still fetching
				_, err := handler.ResetEvenSplit(storeID, monthStart)
				require.NoError(t, err)
				return suggestedGrid(), nil
			},
		}

		dailyGoalRepository.EXPECT().ListMonth(storeID, monthStart).Return(nil, nil)
		monthlyGoalRepository.EXPECT().Get(storeID, monthStart).Return(&domain.MonthlyTarget{
			StoreID:    storeID,
			MonthStart: monthStart,
			SalesTotal: decimal.NewFromInt(90_000),
			TxnTotal:   3_000,
		}, nil).Times(2)

		grid, err := handler.RunSuggestion(context.Background(), RunSuggestionInput{
			StoreID:    storeID,
			MonthStart: monthStart,
		})
		require.NoError(t, err)
		require.Equal(t, domain.DraftStateEvenSplit, grid.State)
		require.Equal(t, int64(100), grid.Cells[0].TransactionsGoal)
	})
}
