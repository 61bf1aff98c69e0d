package usecases_port

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/locale"
)

type GetListingDetailsUseCase interface {
	Execute(ctx context.Context, listingID string, lang locale.Language) (*domain.ListingDetails, error)
}
