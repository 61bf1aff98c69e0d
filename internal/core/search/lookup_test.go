package search

import (
	"testing"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestModelsForBrand(t *testing.T) {
	models := ModelsForBrand("Toyota")
	assert.Contains(t, models, "Corolla")
	assert.Equal(t, "Corolla", models[0])

	assert.Empty(t, ModelsForBrand(""))
	assert.Empty(t, ModelsForBrand("all"))
	assert.Empty(t, ModelsForBrand("Lada"))
	assert.Empty(t, ModelsForBrand("toyota"))
}

func TestModelsForBrand_ReturnsCopy(t *testing.T) {
	models := ModelsForBrand("Kia")
	models[0] = "changed"
	assert.Equal(t, "Cerato", ModelsForBrand("Kia")[0])
}

func TestVariantsForModel(t *testing.T) {
	assert.Equal(t, []string{"LE", "SE", "XLE", "XSE", "TRD"}, VariantsForModel("Camry"))
	assert.Empty(t, VariantsForModel(""))
	assert.Empty(t, VariantsForModel("Avalon"))

	assert.True(t, HasVariants("Golf"))
	assert.False(t, HasVariants("Avalon"))
	assert.False(t, HasVariants(""))
}

func TestAvailableModels(t *testing.T) {
	catalog := testCatalog()

	assert.Equal(t, []string{"Camry", "Corolla", "yaris"}, AvailableModels(catalog, "toyota", domain.ListingFilters{}))

	// модель, query и engine не сужают список
	got := AvailableModels(catalog, "Toyota", domain.ListingFilters{Model: "Corolla", Query: "zzz", Engine: "9.9"})
	assert.Equal(t, []string{"Camry", "Corolla", "yaris"}, got)

	got = AvailableModels(catalog, "Toyota", domain.ListingFilters{Transmission: "automatic", MinYear: ptr(2022)})
	assert.Equal(t, []string{"Camry"}, got)

	assert.Empty(t, AvailableModels(catalog, "", domain.ListingFilters{}))
	assert.Empty(t, AvailableModels(catalog, "all", domain.ListingFilters{}))
	assert.Empty(t, AvailableModels(nil, "Toyota", domain.ListingFilters{}))
}

func TestAvailableModels_Distinct(t *testing.T) {
	catalog := []domain.Listing{
		{ID: "1", Brand: "Kia", Model: "Rio"},
		{ID: "2", Brand: "Kia", Model: " Rio "},
		{ID: "3", Brand: "Kia", Model: "  "},
		{ID: "4", Brand: "Kia", Model: "Cerato"},
	}
	assert.Equal(t, []string{"Cerato", "Rio"}, AvailableModels(catalog, "Kia", domain.ListingFilters{}))
}

func TestModelCounts(t *testing.T) {
	catalog := append(testCatalog(), domain.Listing{ID: "6", Brand: "Toyota", Model: "Corolla", Price: 70000})

	counts := ModelCounts(catalog, "Toyota", domain.ListingFilters{})
	assert.Equal(t, map[string]int{"Corolla": 2, "Camry": 1, "yaris ": 1}, counts)

	counts = ModelCounts(catalog, "Toyota", domain.ListingFilters{MaxPrice: ptr(80000)})
	assert.Equal(t, map[string]int{"Corolla": 1, "yaris ": 1}, counts)

	assert.Empty(t, ModelCounts(catalog, "all", domain.ListingFilters{}))
}

func TestParseModelList(t *testing.T) {
	assert.Equal(t, []string{"Corolla", "Camry"}, ParseModelList(" Corolla, ,Camry ,"))
	assert.Empty(t, ParseModelList(""))
}

func TestMatchesAnyModel(t *testing.T) {
	assert.True(t, MatchesAnyModel("Golf Plus", []string{"golf"}))
	assert.True(t, MatchesAnyModel("Golf", []string{"Golf Plus"}))
	assert.False(t, MatchesAnyModel("Passat", []string{"Golf"}))
	assert.True(t, MatchesAnyModel("Passat", nil))
}
