package port

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

// ListingCatalogPort - источник объявлений только для чтения.
// Возвращаемые срезы принадлежат вызывающему, их изменение не влияет на каталог.
type ListingCatalogPort interface {
	All(ctx context.Context) ([]domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
}
