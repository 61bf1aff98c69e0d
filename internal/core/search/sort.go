package search

import (
	"cmp"
	"slices"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

// Comparator возвращает <0, если a должно идти раньше b
type Comparator func(a, b domain.Listing) int

// ComparatorFor выбирает функцию сравнения для режима сортировки.
// Для distance и неизвестных режимов порядок не меняется.
func ComparatorFor(mode domain.SortMode) Comparator {
	switch mode {
	case domain.SortPriceAsc:
		return func(a, b domain.Listing) int { return cmp.Compare(a.Price, b.Price) }
	case domain.SortPriceDesc:
		return func(a, b domain.Listing) int { return cmp.Compare(b.Price, a.Price) }
	case domain.SortKmAsc:
		return func(a, b domain.Listing) int { return cmp.Compare(a.Mileage, b.Mileage) }
	case domain.SortKmDesc:
		return func(a, b domain.Listing) int { return cmp.Compare(b.Mileage, a.Mileage) }
	case domain.SortYearAsc:
		return func(a, b domain.Listing) int { return cmp.Compare(a.Year, b.Year) }
	case domain.SortYearDesc:
		return func(a, b domain.Listing) int { return cmp.Compare(b.Year, a.Year) }
	case domain.SortDateDesc:
		return func(a, b domain.Listing) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case domain.SortDealer:
		// дилеры вперед, внутри групп порядок сохраняется
		return func(a, b domain.Listing) int {
			aDealer, bDealer := IsDealer(a.SellerName), IsDealer(b.SellerName)
			switch {
			case aDealer && !bDealer:
				return -1
			case !aDealer && bDealer:
				return 1
			default:
				return 0
			}
		}
	default:
		return func(a, b domain.Listing) int { return 0 }
	}
}

// SortListings возвращает отсортированную копию. Входной срез не меняется.
// Сортировка стабильная, поэтому повторный вызов дает тот же порядок.
func SortListings(listings []domain.Listing, mode domain.SortMode) []domain.Listing {
	sorted := slices.Clone(listings)
	if sorted == nil {
		return []domain.Listing{}
	}
	slices.SortStableFunc(sorted, ComparatorFor(mode))
	return sorted
}
