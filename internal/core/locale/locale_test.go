package locale

import (
	"strings"
	"testing"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	testCases := []struct {
		name     string
		explicit string
		accept   string
		want     Language
	}{
		{"explicit wins", "EN", "ar", English},
		{"explicit arabic", "ar", "en-US", Arabic},
		{"unknown explicit falls back to header", "fr", "en-US,en;q=0.9", English},
		{"regional arabic", "", "ar-PS", Arabic},
		{"unsupported header", "", "fr-FR", English},
		{"empty", "", "", English},
		{"garbage header", "", ";;;", English},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Negotiate(tc.explicit, tc.accept, English))
		})
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	lang, ok := MatchAcceptLanguage("fr-FR,de;q=0.8")
	assert.False(t, ok)
	assert.Empty(t, lang)

	lang, ok = MatchAcceptLanguage("fr-FR,ar;q=0.5")
	assert.True(t, ok)
	assert.Equal(t, Arabic, lang)
}

func TestT(t *testing.T) {
	assert.Equal(t, "Search", T(English, "Search", "بحث"))
	assert.Equal(t, "بحث", T(Arabic, "Search", "بحث"))
	assert.Equal(t, "تاجر", Label(Arabic, constants.SortOptions[8].Label))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "ILS", PriceCurrency.String())
	assert.Equal(t, "₪", PriceSymbol(English))

	assert.Equal(t, "₪85,000", FormatPrice(English, 85000))
	assert.Equal(t, "₪0", FormatPrice(English, 0))

	ar := FormatPrice(Arabic, 85000)
	assert.True(t, strings.HasSuffix(ar, " "+PriceSymbol(Arabic)), ar)
	assert.NotEqual(t, FormatPrice(English, 85000), ar)
}

func TestInterestMessage(t *testing.T) {
	assert.Equal(t,
		"Hello, I am interested in your Kia Rio listed on Palestine Car Market.",
		InterestMessage(English, "Kia", "Rio"))
	assert.Equal(t,
		"مرحباً، أنا مهتم بسيارتك Kia Rio المعروضة في سوق السيارات الفلسطيني.",
		InterestMessage(Arabic, "Kia", "Rio"))
}
