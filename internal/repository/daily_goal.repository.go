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

type DailyGoalRepository interface {
	UpsertCells(storeID uuid.UUID, cells []domain.DraftCell) error
	ListMonth(storeID uuid.UUID, monthStart time.Time) ([]model.DailyGoal, error)
	SetPublished(storeID uuid.UUID, monthStart time.Time, published bool) error
}

type dailyGoalRepositoryHandler struct {
	Db *sql.DB
}

func NewDailyGoalRepository(db *sql.DB) DailyGoalRepository {
	return dailyGoalRepositoryHandler{db}
}

// UpsertCells persists a draft grid. Idempotent on (store_id,
// goal_date), so re-saving a month simply overwrites it.
func (h dailyGoalRepositoryHandler) UpsertCells(storeID uuid.UUID, cells []domain.DraftCell) error {
	if len(cells) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]model.DailyGoal, len(cells))
	for i, cell := range cells {
		rows[i] = model.DailyGoal{
			StoreID:          storeID,
			GoalDate:         cell.GoalDate,
			NetSalesGoal:     cell.NetSalesGoal,
			TransactionsGoal: int32(cell.TransactionsGoal),
			CreatedAt:        now,
			ModifiedAt:       now,
		}
	}

	query := table.DailyGoal.
		INSERT(table.DailyGoal.MutableColumns).
		MODELS(rows).
		ON_CONFLICT(
			table.DailyGoal.StoreID, table.DailyGoal.GoalDate,
		).DO_UPDATE(
		postgres.SET(
			table.DailyGoal.NetSalesGoal.SET(table.DailyGoal.EXCLUDED.NetSalesGoal),
			table.DailyGoal.TransactionsGoal.SET(table.DailyGoal.EXCLUDED.TransactionsGoal),
			table.DailyGoal.ModifiedAt.SET(table.DailyGoal.EXCLUDED.ModifiedAt),
		),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert daily goals: %w", err)
	}

	return nil
}

func (h dailyGoalRepositoryHandler) ListMonth(storeID uuid.UUID, monthStart time.Time) ([]model.DailyGoal, error) {
	monthStart = util.MonthStart(monthStart)
	nextMonth := monthStart.AddDate(0, 1, 0)

	query := table.DailyGoal.
		SELECT(table.DailyGoal.AllColumns).
		WHERE(
			postgres.AND(
				table.DailyGoal.StoreID.EQ(postgres.UUID(storeID)),
				table.DailyGoal.GoalDate.GT_EQ(postgres.DateT(monthStart)),
				table.DailyGoal.GoalDate.LT(postgres.DateT(nextMonth)),
			),
		).
		ORDER_BY(table.DailyGoal.GoalDate.ASC())

	out := []model.DailyGoal{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list daily goals for %s %v: %w", storeID, monthStart, err)
	}

	return out, nil
}

// SetPublished toggles visibility for the whole month at once.
func (h dailyGoalRepositoryHandler) SetPublished(storeID uuid.UUID, monthStart time.Time, published bool) error {
	monthStart = util.MonthStart(monthStart)
	nextMonth := monthStart.AddDate(0, 1, 0)

	query := table.DailyGoal.
		UPDATE(table.DailyGoal.Published, table.DailyGoal.ModifiedAt).
		SET(postgres.Bool(published), postgres.TimestampT(time.Now().UTC())).
		WHERE(
			postgres.AND(
				table.DailyGoal.StoreID.EQ(postgres.UUID(storeID)),
				table.DailyGoal.GoalDate.GT_EQ(postgres.DateT(monthStart)),
				table.DailyGoal.GoalDate.LT(postgres.DateT(nextMonth)),
			),
		)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to set published flag: %w", err)
	}

	return nil
}
