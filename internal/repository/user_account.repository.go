package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"storeops/internal/db/models/postgres/public/model"
	"storeops/internal/db/models/postgres/public/table"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type UserAccountRepository interface {
	GetOrCreate(email string, displayName *string) (*model.UserAccount, error)
}

type userAccountRepositoryHandler struct {
	Db *sql.DB
}

func NewUserAccountRepository(db *sql.DB) UserAccountRepository {
	return userAccountRepositoryHandler{db}
}

// GetOrCreate resolves the portal user for a verified JWT email.
// First-time users are created as non-admins.
func (h userAccountRepositoryHandler) GetOrCreate(email string, displayName *string) (*model.UserAccount, error) {
	t := table.UserAccount

	getQuery := t.SELECT(t.AllColumns).WHERE(t.Email.EQ(postgres.String(email)))
	out := model.UserAccount{}
	err := getQuery.Query(h.Db, &out)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to get user account: %w", err)
	} else if err == nil {
		return &out, nil
	}

	newModel := model.UserAccount{
		Email:       email,
		DisplayName: displayName,
		Admin:       false,
		CreatedAt:   time.Now().UTC(),
	}
	createQuery := t.INSERT(t.MutableColumns).MODEL(newModel).RETURNING(t.AllColumns)
	err = createQuery.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to create user account: %w", err)
	}

	return &out, nil
}
