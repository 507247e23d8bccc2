package repository

import (
	"database/sql"
	"fmt"
	"storeops/internal/db/models/postgres/public/model"
	"storeops/internal/db/models/postgres/public/table"
)

// SuggestionRunRepository records one audit row per successful
// suggestion run, so the provenance of any draft can be reproduced.
type SuggestionRunRepository interface {
	Add(run model.SuggestionRun) error
}

type suggestionRunRepositoryHandler struct {
	Db *sql.DB
}

func NewSuggestionRunRepository(db *sql.DB) SuggestionRunRepository {
	return suggestionRunRepositoryHandler{db}
}

func (h suggestionRunRepositoryHandler) Add(run model.SuggestionRun) error {
	query := table.SuggestionRun.
		INSERT(table.SuggestionRun.MutableColumns).
		MODEL(run)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to insert suggestion run: %w", err)
	}

	return nil
}
