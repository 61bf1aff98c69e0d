package rest

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilters(t *testing.T) {
	query := url.Values{
		"query":    {"  corolla "},
		"brand":    {"all"},
		"models":   {"Corolla, Camry"},
		"engine":   {" 2.0"},
		"minPrice": {"12abc"},
		"maxYear":  {"garbage"},
	}

	f := parseFilters(query)

	assert.Equal(t, "corolla", f.Query)
	assert.Empty(t, f.Brand)
	assert.Equal(t, []string{"Corolla", "Camry"}, f.Models)
	assert.Equal(t, " 2.0", f.Engine)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 12.0, *f.MinPrice)
	assert.Nil(t, f.MaxYear)
}

func TestFindListings_EngineIsExactMatch(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/cars?engine=2.0&perPage=100", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, decode[PaginatedListingsResponse](t, rec).Total)

	rec = env.do(t, http.MethodGet, "/api/v1/cars?engine=%202.0", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[PaginatedListingsResponse](t, rec).Total)
}
