package service

import (
	"context"
	"database/sql"

	"fundsignal/internal/domain"
	"fundsignal/internal/repository"
)

// ModelCatalogService answers the two catalog queries: the credential-filtered
// list of usable models, and the unfiltered provider grouping.
type ModelCatalogService interface {
	AvailableModels(ctx context.Context) ([]domain.ModelDescriptor, error)
	ModelsByProvider() []ProviderModels
}

type ProviderModels struct {
	Name   string               `json:"name"`
	Models []ProviderModelEntry `json:"models"`
}

type ProviderModelEntry struct {
	DisplayName string `json:"display_name"`
	ModelName   string `json:"model_name"`
}

type modelCatalogServiceHandler struct {
	Db               *sql.DB
	ApiKeyRepository repository.ApiKeyRepository
	OllamaRepository repository.OllamaRepository
}

func NewModelCatalogService(
	db *sql.DB,
	apiKeyRepository repository.ApiKeyRepository,
	ollamaRepository repository.OllamaRepository,
) ModelCatalogService {
	return modelCatalogServiceHandler{
		Db:               db,
		ApiKeyRepository: apiKeyRepository,
		OllamaRepository: ollamaRepository,
	}
}

type ollamaProbeResult struct {
	models []domain.ModelDescriptor
	err    error
}

// AvailableModels returns catalog entries whose provider has an active
// credential, in catalog order, with locally probed models appended. The
// probe runs concurrently with the credential read since neither depends on
// the other.
func (h modelCatalogServiceHandler) AvailableModels(ctx context.Context) ([]domain.ModelDescriptor, error) {
	probeCh := make(chan ollamaProbeResult, 1)
	go func() {
		models, err := h.OllamaRepository.ListModels(ctx)
		probeCh <- ollamaProbeResult{models: models, err: err}
	}()

	apiKeys, err := h.ApiKeyRepository.List(h.Db, false)
	if err != nil {
		return nil, err
	}

	activeCredentials := map[string]bool{}
	for _, key := range apiKeys {
		activeCredentials[key.Provider] = true
	}

	out := []domain.ModelDescriptor{}
	for _, entry := range modelCatalog {
		credentialName, ok := entry.Provider.CredentialName()
		if !ok {
			continue
		}
		if activeCredentials[credentialName] {
			out = append(out, entry.Descriptor())
		}
	}

	probe := <-probeCh
	if probe.err != nil {
		return nil, probe.err
	}
	out = append(out, probe.models...)

	return out, nil
}

// ModelsByProvider groups the full catalog without credential filtering.
func (h modelCatalogServiceHandler) ModelsByProvider() []ProviderModels {
	grouped := []ProviderModels{}
	index := map[domain.ModelProvider]int{}

	for _, entry := range modelCatalog {
		i, ok := index[entry.Provider]
		if !ok {
			i = len(grouped)
			index[entry.Provider] = i
			grouped = append(grouped, ProviderModels{Name: string(entry.Provider)})
		}
		grouped[i].Models = append(grouped[i].Models, ProviderModelEntry{
			DisplayName: entry.DisplayName,
			ModelName:   entry.ModelName,
		})
	}

	return grouped
}
