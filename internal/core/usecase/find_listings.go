package usecase

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
	"github.com/mnasyf821-dotcom/palcars/internal/core/search"
)

type FindListingsUseCase struct {
	catalog port.ListingCatalogPort
}

func NewFindListingsUseCase(catalog port.ListingCatalogPort) *FindListingsUseCase {
	return &FindListingsUseCase{catalog: catalog}
}

func (uc *FindListingsUseCase) Execute(ctx context.Context, filters domain.ListingFilters, mode domain.SortMode, page, pageSize int) (*domain.QueryResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "FindListings",
		"sort":      string(mode),
		"page":      page,
		"page_size": pageSize,
	})

	ucLogger.Info("Use case started", nil)

	listings, err := uc.catalog.All(ctx)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	result := search.Query(listings, filters, mode, page, pageSize)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Items),
	})
	return &result, nil
}
