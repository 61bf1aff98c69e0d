package usecase

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
)

// GetFeaturedListingsUseCase - первые объявления каталога для главной страницы
type GetFeaturedListingsUseCase struct {
	catalog port.ListingCatalogPort
}

func NewGetFeaturedListingsUseCase(catalog port.ListingCatalogPort) *GetFeaturedListingsUseCase {
	return &GetFeaturedListingsUseCase{catalog: catalog}
}

func (uc *GetFeaturedListingsUseCase) Execute(ctx context.Context) ([]domain.Listing, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetFeaturedListings",
	})

	listings, err := uc.catalog.All(ctx)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	if len(listings) > constants.FeaturedListingsCount {
		listings = listings[:constants.FeaturedListingsCount]
	}
	return listings, nil
}
