package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"fundsignal/api"
	"fundsignal/internal"
	"fundsignal/internal/repository"
	"fundsignal/internal/service"
	"fundsignal/pkg/fundata"

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

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey, secrets.ReviewModel)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	fundataClient := fundata.Client{
		HttpClient: http.DefaultClient,
		ApiKey:     secrets.FinancialDatasetsApiKey,
	}

	fundamentalsRepository := repository.NewFundamentalsRepository(fundataClient)
	apiKeyRepository := repository.NewApiKeyRepository()
	ollamaRepository := repository.NewOllamaRepository(http.DefaultClient, secrets.OllamaBaseUrl)

	progressService := service.NewProgressService()
	signalAnalysisService := service.NewSignalAnalysisService(
		fundamentalsRepository,
		gptRepository,
		progressService,
	)
	modelCatalogService := service.NewModelCatalogService(
		dbConn,
		apiKeyRepository,
		ollamaRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		SignalAnalysisService: signalAnalysisService,
		ModelCatalogService:   modelCatalogService,
		ProgressService:       progressService,
	}

	return apiHandler, nil
}
