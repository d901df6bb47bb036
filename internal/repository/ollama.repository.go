package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"fundsignal/internal/domain"
	"fundsignal/internal/logger"
)

// OllamaRepository discovers locally served models by probing the daemon.
// Local models bypass credential filtering: if the daemon answers, the model
// is usable. An unreachable daemon yields an empty set, not an error.
type OllamaRepository interface {
	ListModels(ctx context.Context) ([]domain.ModelDescriptor, error)
}

type ollamaRepositoryHandler struct {
	HttpClient *http.Client
	BaseUrl    string
}

func NewOllamaRepository(httpClient *http.Client, baseUrl string) OllamaRepository {
	if baseUrl == "" {
		baseUrl = "http://localhost:11434"
	}
	return ollamaRepositoryHandler{
		HttpClient: httpClient,
		BaseUrl:    baseUrl,
	}
}

type ollamaTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func (h ollamaRepositoryHandler) ListModels(ctx context.Context) ([]domain.ModelDescriptor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseUrl+"/api/tags", nil)
	if err != nil {
		return nil, err
	}

	response, err := h.HttpClient.Do(req)
	if err != nil {
		logger.Debug("ollama not reachable at %s: %v", h.BaseUrl, err)
		return []domain.ModelDescriptor{}, nil
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ollama tags response: %w", err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("ollama tags request failed with status code %d", response.StatusCode)
	}

	tags := ollamaTagsResponse{}
	if err := json.Unmarshal(responseBytes, &tags); err != nil {
		return nil, fmt.Errorf("failed to parse ollama tags response: %w", err)
	}

	out := make([]domain.ModelDescriptor, 0, len(tags.Models))
	for _, m := range tags.Models {
		out = append(out, domain.ModelDescriptor{
			Provider:    "Ollama",
			DisplayName: fmt.Sprintf("[ollama] %s", m.Name),
			ModelName:   m.Name,
		})
	}

	return out, nil
}
