package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/locale"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
)

// Имена справочников, которые понимает GetDictionariesUseCase
const (
	DictionaryBrands        = "brands"
	DictionaryCities        = "cities"
	DictionarySortOptions   = "sort_options"
	DictionaryFuelTypes     = "fuel_types"
	DictionaryTransmissions = "transmissions"
	DictionaryColors        = "colors"
	DictionaryEngines       = "engines"
	DictionaryConditions    = "conditions"
	DictionaryMinYears      = "min_years"
	DictionaryMaxYears      = "max_years"
)

type GetDictionariesUseCase struct {
	builders map[string]func(lang locale.Language) []domain.DictionaryItem
}

func NewGetDictionariesUseCase() *GetDictionariesUseCase {
	return &GetDictionariesUseCase{
		builders: map[string]func(lang locale.Language) []domain.DictionaryItem{
			DictionaryBrands:        func(locale.Language) []domain.DictionaryItem { return plainItems(constants.CarBrands) },
			DictionaryCities:        func(locale.Language) []domain.DictionaryItem { return plainItems(constants.PalestinianCities) },
			DictionarySortOptions:   sortOptionItems,
			DictionaryFuelTypes:     entriesBuilder(constants.FuelTypeOptions),
			DictionaryTransmissions: entriesBuilder(constants.TransmissionOptions),
			DictionaryColors:        entriesBuilder(constants.ColorOptions),
			DictionaryEngines:       entriesBuilder(constants.EngineOptions),
			DictionaryConditions:    entriesBuilder(constants.ConditionOptions),
			DictionaryMinYears:      func(locale.Language) []domain.DictionaryItem { return yearItems(constants.MinYearOptions) },
			DictionaryMaxYears:      func(locale.Language) []domain.DictionaryItem { return yearItems(constants.MaxYearOptions) },
		},
	}
}

// Execute получает список имен справочников и возвращает их содержимое.
// Пустой список означает "все справочники", неизвестные имена пропускаются.
func (uc *GetDictionariesUseCase) Execute(ctx context.Context, names []string, lang locale.Language) (map[string][]domain.DictionaryItem, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetDictionariesUseCase",
		"lang":     string(lang),
	})

	ucLogger.Info("Use case started", nil)

	requested := make(map[string]bool)
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			requested[name] = true
		}
	}

	result := make(map[string][]domain.DictionaryItem)
	for name, build := range uc.builders {
		if len(requested) == 0 || requested[name] {
			result[name] = build(lang)
		}
	}

	for name := range requested {
		if _, ok := uc.builders[name]; !ok {
			ucLogger.Warn("Unknown dictionary requested", port.Fields{"name": name})
		}
	}

	return result, nil
}

func plainItems(values []string) []domain.DictionaryItem {
	items := make([]domain.DictionaryItem, len(values))
	for i, v := range values {
		items[i] = domain.DictionaryItem{SystemName: v, DisplayName: v}
	}
	return items
}

func yearItems(years []int) []domain.DictionaryItem {
	items := make([]domain.DictionaryItem, len(years))
	for i, y := range years {
		s := strconv.Itoa(y)
		items[i] = domain.DictionaryItem{SystemName: s, DisplayName: s}
	}
	return items
}

func sortOptionItems(lang locale.Language) []domain.DictionaryItem {
	items := make([]domain.DictionaryItem, len(constants.SortOptions))
	for i, opt := range constants.SortOptions {
		items[i] = domain.DictionaryItem{SystemName: opt.Value, DisplayName: locale.Label(lang, opt.Label)}
	}
	return items
}

func entriesBuilder(entries []constants.DictionaryEntry) func(lang locale.Language) []domain.DictionaryItem {
	return func(lang locale.Language) []domain.DictionaryItem {
		items := make([]domain.DictionaryItem, len(entries))
		for i, e := range entries {
			items[i] = domain.DictionaryItem{SystemName: e.Value, DisplayName: locale.Label(lang, e.Label)}
		}
		return items
	}
}
