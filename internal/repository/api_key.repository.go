package repository

import (
	"fmt"

	"fundsignal/internal/db/models/postgres/public/model"
	. "fundsignal/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/qrm"
)

// ApiKeyRepository reads provider credentials. The catalog filter only ever
// needs the active set; rows are never written from this service.
type ApiKeyRepository interface {
	List(db qrm.Queryable, includeInactive bool) ([]model.APIKey, error)
}

type ApiKeyRepositoryHandler struct{}

func NewApiKeyRepository() ApiKeyRepository {
	return ApiKeyRepositoryHandler{}
}

func (h ApiKeyRepositoryHandler) List(db qrm.Queryable, includeInactive bool) ([]model.APIKey, error) {
	query := APIKey.SELECT(APIKey.AllColumns)
	if !includeInactive {
		query = query.WHERE(APIKey.IsActive.IS_TRUE())
	}

	out := []model.APIKey{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}

	return out, nil
}
