package integration_tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"storeops/internal"
	"storeops/internal/db/models/postgres/public/model"
	"storeops/internal/db/models/postgres/public/table"
	"storeops/internal/domain"
	"storeops/internal/repository"
	"storeops/internal/service"
	"storeops/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testDb(t *testing.T) *sql.DB {
	db, err := internal.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		t.Skipf("test database not reachable: %v", err)
	}
	return db
}

func seedStore(t *testing.T, db *sql.DB) uuid.UUID {
	store := model.Store{}
	err := table.Store.
		INSERT(table.Store.MutableColumns).
		MODEL(model.Store{
			Name:      "Integration Test Store",
			Active:    true,
			CreatedAt: time.Now().UTC(),
		}).
		RETURNING(table.Store.AllColumns).
		Query(db, &store)
	require.NoError(t, err)
	return store.StoreID
}

func cleanupStore(db *sql.DB, storeID uuid.UUID) {
	table.DailyGoal.DELETE().WHERE(table.DailyGoal.StoreID.EQ(postgres.UUID(storeID))).Exec(db)
	table.SuggestionRun.DELETE().WHERE(table.SuggestionRun.StoreID.EQ(postgres.UUID(storeID))).Exec(db)
	table.MonthlyGoal.DELETE().WHERE(table.MonthlyGoal.StoreID.EQ(postgres.UUID(storeID))).Exec(db)
	table.StoreDay.DELETE().WHERE(table.StoreDay.StoreID.EQ(postgres.UUID(storeID))).Exec(db)
	table.Store.DELETE().WHERE(table.Store.StoreID.EQ(postgres.UUID(storeID))).Exec(db)
}

// seedHistory writes same-month-last-year actuals with two zero days
// (the 7th and 21st) plus a trailing trend window ending the day
// before asOf.
func seedHistory(t *testing.T, storeDayRepository repository.StoreDayRepository, storeID uuid.UUID, asOf time.Time) {
	now := time.Now().UTC()
	rows := []model.StoreDay{}
	for day := 1; day <= 30; day++ {
		sales := 1000.0
		txns := int32(40)
		if day == 7 || day == 21 {
			sales = 0
			txns = 0
		}
		rows = append(rows, model.StoreDay{
			StoreID:      storeID,
			Date:         util.NewDate(2025, 9, day),
			NetSales:     sales,
			Transactions: txns,
			CreatedAt:    now,
		})
	}
	for i := 1; i <= 70; i++ {
		rows = append(rows, model.StoreDay{
			StoreID:      storeID,
			Date:         asOf.AddDate(0, 0, -i),
			NetSales:     900,
			Transactions: 35,
			CreatedAt:    now,
		})
	}
	require.NoError(t, storeDayRepository.Add(rows))
}

func Test_GoalFlow(t *testing.T) {
	db := testDb(t)
	defer db.Close()

	storeID := seedStore(t, db)
	defer cleanupStore(db, storeID)

	monthStart := util.NewDate(2026, 9, 1)
	asOf := util.NewDate(2026, 9, 1)

	storeDayRepository := repository.NewStoreDayRepository(db)
	monthlyGoalRepository := repository.NewMonthlyGoalRepository(db)
	dailyGoalRepository := repository.NewDailyGoalRepository(db)
	suggestionRunRepository := repository.NewSuggestionRunRepository(db)

	seedHistory(t, storeDayRepository, storeID, asOf)

	now := time.Now().UTC()
	require.NoError(t, monthlyGoalRepository.Upsert(model.MonthlyGoal{
		StoreID:            storeID,
		MonthStart:         monthStart,
		NetSalesTarget:     decimal.NewFromInt(100_000),
		TransactionsTarget: 3_000,
		CreatedAt:          now,
		ModifiedAt:         now,
	}))

	suggestionService := service.NewSuggestionService(
		monthlyGoalRepository,
		storeDayRepository,
		suggestionRunRepository,
		internal.DefaultSuggestionPolicy(),
	)
	goalService := service.NewGoalService(suggestionService, monthlyGoalRepository, dailyGoalRepository)

	// opening an untouched month shows the even split of the raw target
	grid, err := goalService.OpenMonth(storeID, monthStart)
	require.NoError(t, err)
	require.Equal(t, domain.DraftStateEvenSplit, grid.State)
	salesSum, txnSum := grid.Totals()
	require.Equal(t, int64(100_000), salesSum.IntPart())
	require.Equal(t, int64(3_000), txnSum)

	grid, err = goalService.RunSuggestion(context.Background(), service.RunSuggestionInput{
		StoreID:        storeID,
		MonthStart:     monthStart,
		DowMultipliers: [7]float64{1, 1, 1, 1, 1, 1, 1},
		AsOf:           asOf,
	})
	require.NoError(t, err)
	require.Equal(t, domain.DraftStateSuggested, grid.State)

	// padded corridor totals, with last year's zero days inferred closed
	salesSum, txnSum = grid.Totals()
	require.Equal(t, int64(102_000), salesSum.IntPart())
	require.Equal(t, int64(3_060), txnSum)
	require.True(t, grid.Cells[6].NetSalesGoal.IsZero())
	require.Zero(t, grid.Cells[6].TransactionsGoal)
	require.True(t, grid.Cells[20].NetSalesGoal.IsZero())
	require.Zero(t, grid.Cells[20].TransactionsGoal)

	// the run left an audit row behind
	runs := []model.SuggestionRun{}
	err = table.SuggestionRun.
		SELECT(table.SuggestionRun.AllColumns).
		WHERE(table.SuggestionRun.StoreID.EQ(postgres.UUID(storeID))).
		Query(db, &runs)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Contains(t, runs[0].Provenance, "2025-09 seasonality")

	// a manual tweak, then save
	_, err = goalService.EditCell(storeID, monthStart, util.NewDate(2026, 9, 15), 120, decimal.NewFromInt(4_000))
	require.NoError(t, err)

	grid, err = goalService.SaveDraft(storeID, monthStart)
	require.NoError(t, err)
	require.Equal(t, domain.DraftStateSaved, grid.State)

	persisted, err := dailyGoalRepository.ListMonth(storeID, monthStart)
	require.NoError(t, err)
	require.Len(t, persisted, 30)
	require.Equal(t, int32(120), persisted[14].TransactionsGoal)
	for _, row := range persisted {
		require.False(t, row.Published)
	}

	grid, err = goalService.Publish(storeID, monthStart)
	require.NoError(t, err)
	require.Equal(t, domain.DraftStatePublished, grid.State)

	persisted, err = dailyGoalRepository.ListMonth(storeID, monthStart)
	require.NoError(t, err)
	for _, row := range persisted {
		require.True(t, row.Published)
	}

	// saving the same month again overwrites rather than duplicates
	_, err = goalService.SaveDraft(storeID, monthStart)
	require.NoError(t, err)
	persisted, err = dailyGoalRepository.ListMonth(storeID, monthStart)
	require.NoError(t, err)
	require.Len(t, persisted, 30)
}
