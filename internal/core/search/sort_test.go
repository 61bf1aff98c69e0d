package search

import (
	"testing"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSortListings_Modes(t *testing.T) {
	testCases := []struct {
		mode domain.SortMode
		want []string
	}{
		{domain.SortPriceAsc, []string{"4", "5", "1", "2", "3"}},
		{domain.SortPriceDesc, []string{"3", "2", "1", "5", "4"}},
		{domain.SortKmAsc, []string{"3", "1", "2", "5", "4"}},
		{domain.SortKmDesc, []string{"4", "5", "2", "1", "3"}},
		{domain.SortYearAsc, []string{"4", "5", "2", "1", "3"}},
		{domain.SortYearDesc, []string{"3", "1", "2", "5", "4"}},
		{domain.SortDateDesc, []string{"4", "2", "1", "5", "3"}},
		{domain.SortDealer, []string{"2", "3", "1", "4", "5"}},
		{domain.SortDistance, []string{"1", "2", "3", "4", "5"}},
		{domain.SortMode("bogus"), []string{"1", "2", "3", "4", "5"}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.mode), func(t *testing.T) {
			assert.Equal(t, tc.want, ids(SortListings(testCatalog(), tc.mode)))
		})
	}
}

func TestSortListings_DoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	_ = SortListings(catalog, domain.SortPriceDesc)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(catalog))
}

func TestSortListings_Idempotent(t *testing.T) {
	once := SortListings(testCatalog(), domain.SortDealer)
	twice := SortListings(once, domain.SortDealer)
	assert.Equal(t, ids(once), ids(twice))
}

func TestSortListings_StableForEqualKeys(t *testing.T) {
	catalog := []domain.Listing{
		{ID: "a", Price: 10},
		{ID: "b", Price: 5},
		{ID: "c", Price: 10},
		{ID: "d", Price: 5},
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(SortListings(catalog, domain.SortPriceAsc)))
}

func TestSortListings_Empty(t *testing.T) {
	assert.Empty(t, SortListings(nil, domain.SortPriceAsc))
}
