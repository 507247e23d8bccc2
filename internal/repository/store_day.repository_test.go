package repository

import (
	"testing"
	"time"

	"storeops/internal/db/models/postgres/public/model"
	"storeops/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func storeDayColumns() []string {
	return []string{
		"store_day.store_day_id",
		"store_day.store_id",
		"store_day.date",
		"store_day.net_sales",
		"store_day.transactions",
		"store_day.created_at",
	}
}

func Test_StoreDayRepository_List(t *testing.T) {
	storeID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	now := time.Now().UTC()

	t.Run("store filter applies when a store is given", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		handler := NewStoreDayRepository(db)

		mock.ExpectQuery(`SELECT .+ FROM public\.store_day.+store_day\.store_id = `).
			WillReturnRows(sqlmock.NewRows(storeDayColumns()).
				AddRow(uuid.New().String(), storeID.String(), util.NewDate(2025, 9, 1), 1234.5, 42, now),
			)

		rows, err := handler.List(&storeID, util.NewDate(2025, 9, 1), util.NewDate(2025, 10, 1))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, storeID, rows[0].StoreID)
		require.Equal(t, 1234.5, rows[0].NetSales)
		require.Equal(t, int32(42), rows[0].Transactions)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil store queries every store", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		handler := NewStoreDayRepository(db)

		mock.ExpectQuery(`SELECT .+ FROM public\.store_day`).
			WillReturnRows(sqlmock.NewRows(storeDayColumns()))

		rows, err := handler.List(nil, util.NewDate(2025, 9, 1), util.NewDate(2025, 10, 1))
		require.NoError(t, err)
		require.Empty(t, rows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func Test_StoreDayRepository_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	handler := NewStoreDayRepository(db)

	mock.ExpectExec(`INSERT INTO public\.store_day`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, handler.Add([]model.StoreDay{
		{
			StoreID:      uuid.New(),
			Date:         util.NewDate(2026, 8, 30),
			NetSales:     999.99,
			Transactions: 31,
			CreatedAt:    time.Now().UTC(),
		},
	}))
	require.NoError(t, mock.ExpectationsWereMet())
}
