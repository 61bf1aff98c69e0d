package usecase

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
	"github.com/mnasyf821-dotcom/palcars/internal/core/search"
)

// GetModelsUseCase отдает справочник моделей марки
type GetModelsUseCase struct{}

func NewGetModelsUseCase() *GetModelsUseCase {
	return &GetModelsUseCase{}
}

func (uc *GetModelsUseCase) Execute(ctx context.Context, brand string) ([]string, error) {
	contextkeys.LoggerFromContext(ctx).Debug("Looking up models for brand", port.Fields{
		"use_case": "GetModels",
		"brand":    brand,
	})
	return search.ModelsForBrand(brand), nil
}

type GetVariantsUseCase struct{}

func NewGetVariantsUseCase() *GetVariantsUseCase {
	return &GetVariantsUseCase{}
}

func (uc *GetVariantsUseCase) Execute(ctx context.Context, model string) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetVariants",
		"model":    model,
	})
	if !search.HasVariants(model) {
		logger.Debug("Model has no variants", nil)
		return []string{}, nil
	}
	logger.Debug("Looking up variants for model", nil)
	return search.VariantsForModel(model), nil
}

type GetAvailableModelsUseCase struct {
	catalog port.ListingCatalogPort
}

func NewGetAvailableModelsUseCase(catalog port.ListingCatalogPort) *GetAvailableModelsUseCase {
	return &GetAvailableModelsUseCase{catalog: catalog}
}

func (uc *GetAvailableModelsUseCase) Execute(ctx context.Context, brand string, filters domain.ListingFilters) ([]string, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetAvailableModels",
		"brand":    brand,
	})

	listings, err := uc.catalog.All(ctx)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	models := search.AvailableModels(listings, brand, filters)
	ucLogger.Debug("Available models computed", port.Fields{"count": len(models)})
	return models, nil
}

type GetModelCountsUseCase struct {
	catalog port.ListingCatalogPort
}

func NewGetModelCountsUseCase(catalog port.ListingCatalogPort) *GetModelCountsUseCase {
	return &GetModelCountsUseCase{catalog: catalog}
}

func (uc *GetModelCountsUseCase) Execute(ctx context.Context, brand string, filters domain.ListingFilters) (map[string]int, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetModelCounts",
		"brand":    brand,
	})

	listings, err := uc.catalog.All(ctx)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}
	return search.ModelCounts(listings, brand, filters), nil
}
