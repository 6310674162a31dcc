package cmd

import (
	"database/sql"
	"fmt"
	"net/http"
	"simcompare/api"
	"simcompare/internal/logger"
	"simcompare/internal/repository"
	"simcompare/internal/service"
	"simcompare/internal/util"
	"simcompare/pkg/simbackend"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func CloseDependencies(handler *api.ApiHandler) {
	lg := handler.Logger
	if lg == nil {
		lg = zap.S()
	}
	defer lg.Sync()

	if handler.Db == nil {
		return
	}
	err := handler.Db.Close()
	if err != nil {
		lg.Errorf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, *util.Secrets, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	lg := logger.New()

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	backendClient := simbackend.NewClient(
		&http.Client{
			Timeout: time.Duration(secrets.SimulationBackend.TimeoutSeconds) * time.Second,
		},
		secrets.SimulationBackend.BaseURL,
	)
	simulationRepository := repository.NewSimulationRepository(backendClient)

	apiHandler := &api.ApiHandler{
		Db:                        dbConn,
		Logger:                    lg,
		JwtDecodeToken:            secrets.Auth.JwtDecodeToken,
		AuthDisabled:              secrets.Auth.Disabled,
		ComparisonService:         service.NewComparisonService(simulationRepository),
		SimulationRepository:      simulationRepository,
		SavedComparisonRepository: repository.NewSavedComparisonRepository(dbConn),
		RequestLogRepository:      repository.RequestLogRepositoryHandler{},
	}

	if secrets.Auth.Disabled {
		lg.Warn("jwt verification is disabled")
	}

	return apiHandler, secrets, nil
}
