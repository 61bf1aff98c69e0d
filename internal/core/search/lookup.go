package search

import (
	"slices"
	"strings"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const allBrands = "all"

// ModelsForBrand возвращает модели марки из справочника.
// Пустая марка, "all" и неизвестная марка дают пустой список.
func ModelsForBrand(brand string) []string {
	if brand == "" || brand == allBrands {
		return []string{}
	}
	return slices.Clone(constants.ModelsByBrand[brand])
}

// VariantsForModel возвращает комплектации модели
func VariantsForModel(model string) []string {
	if model == "" {
		return []string{}
	}
	variants := slices.Clone(constants.ModelVariants[model])
	if variants == nil {
		return []string{}
	}
	return variants
}

func HasVariants(model string) bool {
	return len(constants.ModelVariants[model]) > 0
}

// AvailableModels возвращает модели марки, которые реально есть в каталоге
// при остальных выбранных фильтрах. Поле model, query и engine не учитываются.
// Результат без повторов и отсортирован по правилам арабской локали без учета регистра.
func AvailableModels(catalog []domain.Listing, brand string, f domain.ListingFilters) []string {
	if brand == "" || brand == allBrands || len(catalog) == 0 {
		return []string{}
	}

	reduced := reducedFilters(brand, f)
	seen := make(map[string]bool)
	models := make([]string, 0)
	for _, l := range catalog {
		if !Matches(l, reduced) {
			continue
		}
		model := strings.TrimSpace(l.Model)
		if model == "" || seen[model] {
			continue
		}
		seen[model] = true
		models = append(models, model)
	}

	// Collator не потокобезопасен, создаем на каждый вызов
	collate.New(language.Arabic, collate.Loose).SortStrings(models)
	return models
}

// ModelCounts считает объявления по моделям при тех же правилах, что и AvailableModels
func ModelCounts(catalog []domain.Listing, brand string, f domain.ListingFilters) map[string]int {
	counts := make(map[string]int)
	if brand == "" || brand == allBrands {
		return counts
	}

	reduced := reducedFilters(brand, f)
	for _, l := range catalog {
		if l.Model != "" && Matches(l, reduced) {
			counts[l.Model]++
		}
	}
	return counts
}

// ParseModelList разбирает мультивыбор моделей вида "Corolla, Camry"
func ParseModelList(raw string) []string {
	models := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if m := strings.TrimSpace(part); m != "" {
			models = append(models, m)
		}
	}
	return models
}

// MatchesAnyModel: модель объявления содержит выбранную или содержится в ней.
// Пустой выбор ничего не ограничивает.
func MatchesAnyModel(model string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if containsFold(model, s) || containsFold(s, model) {
			return true
		}
	}
	return false
}

func reducedFilters(brand string, f domain.ListingFilters) domain.ListingFilters {
	reduced := f
	reduced.Brand = brand
	reduced.Model = ""
	reduced.Models = nil
	reduced.Query = ""
	reduced.Engine = ""
	return reduced
}
