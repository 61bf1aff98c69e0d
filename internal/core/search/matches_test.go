package search

import (
	"math"
	"testing"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMatches_EmptyFiltersMatchEverything(t *testing.T) {
	for _, l := range testCatalog() {
		assert.True(t, Matches(l, domain.ListingFilters{}), l.ID)
	}
}

func TestMatches_Criteria(t *testing.T) {
	testCases := []struct {
		name    string
		filters domain.ListingFilters
		want    []string
	}{
		{"query matches name case-insensitively", domain.ListingFilters{Query: "COROLLA"}, []string{"1"}},
		{"query matches location", domain.ListingFilters{Query: "ramall"}, []string{"1", "5"}},
		{"query matches arabic description", domain.ListingFilters{Query: "نظيفة"}, []string{"2"}},
		{"brand ignores case", domain.ListingFilters{Brand: "toyota"}, []string{"1", "3", "5"}},
		{"condition All is no constraint", domain.ListingFilters{Condition: "All"}, []string{"1", "2", "3", "4", "5"}},
		{"condition New", domain.ListingFilters{Condition: "New"}, []string{"3"}},
		{"condition is case-sensitive", domain.ListingFilters{Condition: "new"}, []string{}},
		{"location ignores case", domain.ListingFilters{Location: "HEBRON"}, []string{"3"}},
		{"price range inclusive", domain.ListingFilters{MinPrice: ptr(45000), MaxPrice: ptr(92000)}, []string{"1", "2", "5"}},
		{"min greater than max yields nothing", domain.ListingFilters{MinPrice: ptr(100000), MaxPrice: ptr(10)}, []string{}},
		{"year lower bound", domain.ListingFilters{MinYear: ptr(2020)}, []string{"1", "3"}},
		{"mileage upper bound includes new cars", domain.ListingFilters{MaxMileage: ptr(0)}, []string{"3"}},
		{"NaN bound is ignored", domain.ListingFilters{MinPrice: ptr(math.NaN())}, []string{"1", "2", "3", "4", "5"}},
		{"fuel alias petrol", domain.ListingFilters{Fuel: "petrol"}, []string{"1", "4", "5"}},
		{"fuel alias arabic", domain.ListingFilters{Fuel: "ديزل"}, []string{"2"}},
		{"fuel canonical value", domain.ListingFilters{Fuel: "hybrid"}, []string{"3"}},
		{"unknown fuel compared literally", domain.ListingFilters{Fuel: "gasoline"}, []string{"1", "4", "5"}},
		{"unknown fuel matches nothing", domain.ListingFilters{Fuel: "hydrogen"}, []string{}},
		{"transmission arabic alias", domain.ListingFilters{Transmission: "يدوي"}, []string{"4", "5"}},
		{"color ignores case", domain.ListingFilters{Color: "white"}, []string{"1"}},
		{"color excludes listings without color", domain.ListingFilters{Color: "gray"}, []string{}},
		{"engine exact equality", domain.ListingFilters{Engine: "2.0"}, []string{"2", "3"}},
		{"engine is not numeric", domain.ListingFilters{Engine: "2"}, []string{}},
		{"model substring", domain.ListingFilters{Model: "YAR"}, []string{"5"}},
		{"multi model selection", domain.ListingFilters{Models: []string{"Corolla", "Camry"}}, []string{"1", "3"}},
		{"combined criteria", domain.ListingFilters{Brand: "Toyota", Transmission: "automatic", MaxPrice: ptr(100000)}, []string{"1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(testCatalog(), tc.filters))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Gasoline", NormalizeFuel("Petrol"))
	assert.Equal(t, "Electric", NormalizeFuel("كهرباء"))
	assert.Equal(t, "LPG", NormalizeFuel("LPG"))
	assert.Equal(t, "Automatic", NormalizeTransmission("أوتوماتيك"))
	assert.Equal(t, "Manual", NormalizeTransmission("MANUAL"))
	assert.Equal(t, "CVT", NormalizeTransmission("CVT"))
}

func TestIsDealer(t *testing.T) {
	assert.True(t, IsDealer("Nablus Auto DEALER"))
	assert.True(t, IsDealer("معرض تاجر الخليل"))
	assert.False(t, IsDealer("Ahmad"))
	assert.False(t, IsDealer(""))
}

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		in   string
		want *float64
	}{
		{"", nil},
		{"   ", nil},
		{"abc", nil},
		{"-", nil},
		{"15000", ptr(15000)},
		{" 3.5 ", ptr(3.5)},
		{"12abc", ptr(12)},
		{".5", ptr(0.5)},
		{"1e3", ptr(1000)},
		{"-20", ptr(-20)},
	}

	for _, tc := range testCases {
		got := ParseNumber(tc.in)
		if tc.want == nil {
			assert.Nil(t, got, tc.in)
			continue
		}
		if assert.NotNil(t, got, tc.in) {
			assert.Equal(t, *tc.want, *got, tc.in)
		}
	}

	inf := ParseNumber("Infinity")
	if assert.NotNil(t, inf) {
		assert.True(t, math.IsInf(*inf, 1))
	}
}
