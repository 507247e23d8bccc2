package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"storeops/internal/db/models/postgres/public/model"
	"storeops/internal/db/models/postgres/public/table"
	"storeops/internal/domain"
	"storeops/internal/util"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type MonthlyGoalRepository interface {
	Get(storeID uuid.UUID, monthStart time.Time) (*domain.MonthlyTarget, error)
	Upsert(goal model.MonthlyGoal) error
}

type monthlyGoalRepositoryHandler struct {
	Db *sql.DB
}

func NewMonthlyGoalRepository(db *sql.DB) MonthlyGoalRepository {
	return monthlyGoalRepositoryHandler{db}
}

func (h monthlyGoalRepositoryHandler) Get(storeID uuid.UUID, monthStart time.Time) (*domain.MonthlyTarget, error) {
	query := table.MonthlyGoal.
		SELECT(table.MonthlyGoal.AllColumns).
		WHERE(
			postgres.AND(
				table.MonthlyGoal.StoreID.EQ(postgres.UUID(storeID)),
				table.MonthlyGoal.MonthStart.EQ(postgres.DateT(util.MonthStart(monthStart))),
			),
		)

	out := model.MonthlyGoal{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get monthly goal for %s %v: %w", storeID, monthStart, err)
	}

	return &domain.MonthlyTarget{
		StoreID:    out.StoreID,
		MonthStart: out.MonthStart,
		SalesTotal: out.NetSalesTarget,
		TxnTotal:   int64(out.TransactionsTarget),
	}, nil
}

func (h monthlyGoalRepositoryHandler) Upsert(goal model.MonthlyGoal) error {
	goal.CreatedAt = time.Now().UTC()
	goal.ModifiedAt = time.Now().UTC()

	query := table.MonthlyGoal.
		INSERT(table.MonthlyGoal.MutableColumns).
		MODEL(goal).
		ON_CONFLICT(
			table.MonthlyGoal.StoreID, table.MonthlyGoal.MonthStart,
		).DO_UPDATE(
		postgres.SET(
			table.MonthlyGoal.NetSalesTarget.SET(table.MonthlyGoal.EXCLUDED.NetSalesTarget),
			table.MonthlyGoal.TransactionsTarget.SET(table.MonthlyGoal.EXCLUDED.TransactionsTarget),
			table.MonthlyGoal.ModifiedAt.SET(table.MonthlyGoal.EXCLUDED.ModifiedAt),
		),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert monthly goal: %w", err)
	}

	return nil
}
