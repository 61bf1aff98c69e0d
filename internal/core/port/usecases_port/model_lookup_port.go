package usecases_port

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

type GetModelsUseCase interface {
	Execute(ctx context.Context, brand string) ([]string, error)
}

type GetVariantsUseCase interface {
	Execute(ctx context.Context, model string) ([]string, error)
}

// GetAvailableModelsUseCase - модели марки, которые реально есть в каталоге
type GetAvailableModelsUseCase interface {
	Execute(ctx context.Context, brand string, filters domain.ListingFilters) ([]string, error)
}

type GetModelCountsUseCase interface {
	Execute(ctx context.Context, brand string, filters domain.ListingFilters) (map[string]int, error)
}
