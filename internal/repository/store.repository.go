package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"storeops/internal/db/models/postgres/public/model"
	"storeops/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type StoreRepository interface {
	Get(storeID uuid.UUID) (*model.Store, error)
	ListActive() ([]model.Store, error)
}

type storeRepositoryHandler struct {
	Db *sql.DB
}

func NewStoreRepository(db *sql.DB) StoreRepository {
	return storeRepositoryHandler{db}
}

func (h storeRepositoryHandler) Get(storeID uuid.UUID) (*model.Store, error) {
	query := table.Store.
		SELECT(table.Store.AllColumns).
		WHERE(table.Store.StoreID.EQ(postgres.UUID(storeID)))

	out := model.Store{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get store %s: %w", storeID, err)
	}

	return &out, nil
}

func (h storeRepositoryHandler) ListActive() ([]model.Store, error) {
	query := table.Store.
		SELECT(table.Store.AllColumns).
		WHERE(table.Store.Active.IS_TRUE()).
		ORDER_BY(table.Store.Name.ASC())

	out := []model.Store{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	return out, nil
}
