package usecases_port

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

type GetFeaturedListingsUseCase interface {
	Execute(ctx context.Context) ([]domain.Listing, error)
}
