package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"storeops/api"
	"storeops/internal"
	"storeops/internal/repository"
	"storeops/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	storeRepository := repository.NewStoreRepository(dbConn)
	storeDayRepository := repository.NewStoreDayRepository(dbConn)
	monthlyGoalRepository := repository.NewMonthlyGoalRepository(dbConn)
	dailyGoalRepository := repository.NewDailyGoalRepository(dbConn)
	suggestionRunRepository := repository.NewSuggestionRunRepository(dbConn)
	userAccountRepository := repository.NewUserAccountRepository(dbConn)

	suggestionService := service.NewSuggestionService(
		monthlyGoalRepository,
		storeDayRepository,
		suggestionRunRepository,
		secrets.SuggestionPolicy(),
	)
	goalService := service.NewGoalService(
		suggestionService,
		monthlyGoalRepository,
		dailyGoalRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		GoalService:           goalService,
		StoreRepository:       storeRepository,
		StoreDayRepository:    storeDayRepository,
		UserAccountRepository: userAccountRepository,
		ApiRequestRepository:  repository.ApiRequestRepositoryHandler{},
		JwtDecodeToken:        secrets.Jwt,
	}

	return apiHandler, nil
}
