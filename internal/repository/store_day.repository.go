package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"storeops/internal/db/models/postgres/public/model"
	"storeops/internal/db/models/postgres/public/table"
	"storeops/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// StoreDayRepository reads historical per-day actuals. List takes a
// half-open [start, end) range; a nil storeID queries all stores,
// which backs the company-wide trend fallback.
type StoreDayRepository interface {
	List(storeID *uuid.UUID, start, end time.Time) ([]domain.StoreDay, error)
	Add([]model.StoreDay) error
}

type storeDayRepositoryHandler struct {
	Db *sql.DB
}

func NewStoreDayRepository(db *sql.DB) StoreDayRepository {
	return storeDayRepositoryHandler{db}
}

func (h storeDayRepositoryHandler) List(storeID *uuid.UUID, start, end time.Time) ([]domain.StoreDay, error) {
	rangeCondition := postgres.AND(
		table.StoreDay.Date.GT_EQ(postgres.DateT(start)),
		table.StoreDay.Date.LT(postgres.DateT(end)),
	)
	condition := rangeCondition
	if storeID != nil {
		condition = postgres.AND(
			rangeCondition,
			table.StoreDay.StoreID.EQ(postgres.UUID(*storeID)),
		)
	}

	query := table.StoreDay.
		SELECT(table.StoreDay.AllColumns).
		WHERE(condition).
		ORDER_BY(table.StoreDay.Date.ASC())

	result := []model.StoreDay{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list store days in [%v, %v): %w", start, end, err)
	}

	out := []domain.StoreDay{}
	for _, row := range result {
		out = append(out, domain.StoreDay{
			StoreID:      row.StoreID,
			Date:         row.Date,
			NetSales:     row.NetSales,
			Transactions: row.Transactions,
		})
	}

	return out, nil
}

func (h storeDayRepositoryHandler) Add(rows []model.StoreDay) error {
	if len(rows) == 0 {
		return nil
	}

	query := table.StoreDay.
		INSERT(table.StoreDay.MutableColumns).
		MODELS(rows).
		ON_CONFLICT(
			table.StoreDay.StoreID, table.StoreDay.Date,
		).DO_UPDATE(
		postgres.SET(
			table.StoreDay.NetSales.SET(table.StoreDay.EXCLUDED.NetSales),
			table.StoreDay.Transactions.SET(table.StoreDay.EXCLUDED.Transactions),
		),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add store days: %w", err)
	}

	return nil
}
