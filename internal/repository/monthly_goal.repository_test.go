package repository

import (
	"testing"
	"time"

	"storeops/internal/db/models/postgres/public/model"
	"storeops/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_MonthlyGoalRepository_Get(t *testing.T) {
	storeID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	now := time.Now().UTC()

	t.Run("existing target maps to the domain type", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		handler := NewMonthlyGoalRepository(db)

		columns := []string{
			"monthly_goal.monthly_goal_id",
			"monthly_goal.store_id",
			"monthly_goal.month_start",
			"monthly_goal.net_sales_target",
			"monthly_goal.transactions_target",
			"monthly_goal.created_at",
			"monthly_goal.modified_at",
		}
		mock.ExpectQuery(`SELECT .+ FROM public\.monthly_goal`).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(uuid.New().String(), storeID.String(), util.NewDate(2026, 9, 1), "100000", 3000, now, now),
			)

		target, err := handler.Get(storeID, util.NewDate(2026, 9, 1))
		require.NoError(t, err)
		require.NotNil(t, target)
		require.Equal(t, int64(3000), target.TxnTotal)
		require.True(t, target.SalesTotal.Equal(decimal.NewFromInt(100_000)))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing target is nil, not an error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		handler := NewMonthlyGoalRepository(db)

		mock.ExpectQuery(`SELECT .+ FROM public\.monthly_goal`).
			WillReturnRows(sqlmock.NewRows([]string{"monthly_goal.monthly_goal_id"}))

		target, err := handler.Get(storeID, util.NewDate(2026, 9, 1))
		require.NoError(t, err)
		require.Nil(t, target)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func Test_MonthlyGoalRepository_Upsert(t *testing.T) {
	storeID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	handler := NewMonthlyGoalRepository(db)

	mock.ExpectExec(`INSERT INTO public\.monthly_goal`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = handler.Upsert(model.MonthlyGoal{
		StoreID:            storeID,
		MonthStart:         util.NewDate(2026, 9, 1),
		NetSalesTarget:     decimal.NewFromInt(100_000),
		TransactionsTarget: 3000,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
