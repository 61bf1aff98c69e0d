package usecases_port

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

type FindListingsUseCase interface {
	Execute(ctx context.Context, filters domain.ListingFilters, mode domain.SortMode, page, pageSize int) (*domain.QueryResult, error)
}
