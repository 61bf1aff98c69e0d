package search

import (
	"math"
	"strings"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

// dealerMarkers - подстроки в имени продавца, по которым он считается дилером
var dealerMarkers = []string{"dealer", "تاجر"}

// Matches проверяет объявление по всем критериям сразу (логическое И).
// Пустые критерии ничего не ограничивают. Функция чистая и не паникует.
func Matches(l domain.Listing, f domain.ListingFilters) bool {
	return matchesQuery(l, f.Query) &&
		equalFoldOrAny(l.Brand, f.Brand) &&
		matchesCondition(l.Condition, f.Condition) &&
		equalFoldOrAny(l.Location, f.Location) &&
		inRange(float64(l.Price), f.MinPrice, f.MaxPrice) &&
		inRange(float64(l.Year), f.MinYear, f.MaxYear) &&
		inRange(float64(l.Mileage), f.MinMileage, f.MaxMileage) &&
		(f.Fuel == "" || strings.EqualFold(string(l.FuelType), NormalizeFuel(f.Fuel))) &&
		(f.Transmission == "" || strings.EqualFold(string(l.Transmission), NormalizeTransmission(f.Transmission))) &&
		equalFoldOrAny(l.Color, f.Color) &&
		(f.Engine == "" || l.Engine == f.Engine) &&
		(f.Model == "" || containsFold(l.Model, f.Model)) &&
		MatchesAnyModel(l.Model, f.Models)
}

// Filter возвращает подходящие объявления в исходном порядке каталога
func Filter(catalog []domain.Listing, f domain.ListingFilters) []domain.Listing {
	result := make([]domain.Listing, 0, len(catalog))
	for _, l := range catalog {
		if Matches(l, f) {
			result = append(result, l)
		}
	}
	return result
}

// IsDealer сообщает, что объявление выставлено дилером
func IsDealer(sellerName string) bool {
	name := strings.ToLower(sellerName)
	for _, marker := range dealerMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

func matchesQuery(l domain.Listing, query string) bool {
	if query == "" {
		return true
	}
	return containsFold(l.Name, query) ||
		containsFold(l.Brand, query) ||
		containsFold(l.Model, query) ||
		containsFold(l.Location, query) ||
		containsFold(l.Description, query)
}

func matchesCondition(value domain.Condition, criterion string) bool {
	if criterion == "" || criterion == domain.ConditionAll {
		return true
	}
	return string(value) == criterion
}

// inRange: отсутствующая или NaN граница не ограничивает
func inRange(value float64, min, max *float64) bool {
	if min != nil && !math.IsNaN(*min) && value < *min {
		return false
	}
	if max != nil && !math.IsNaN(*max) && value > *max {
		return false
	}
	return true
}

func equalFoldOrAny(value, criterion string) bool {
	return criterion == "" || strings.EqualFold(value, criterion)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
