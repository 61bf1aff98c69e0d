package domain

// ConditionAll - значение фильтра "состояние", которое не ограничивает выборку
const ConditionAll = "All"

// ListingFilters - критерии поиска. Пустое поле или nil означает "без ограничения".
// min > max допустимо и просто дает пустой результат.
type ListingFilters struct {
	Query string
	Brand string
	Model string
	// Models - мультивыбор моделей ("Corolla, Camry")
	Models []string

	Condition    string
	Location     string
	Fuel         string
	Transmission string
	Color        string
	Engine       string

	MinPrice   *float64
	MaxPrice   *float64
	MinYear    *float64
	MaxYear    *float64
	MinMileage *float64
	MaxMileage *float64
}

// SortMode - режим сортировки выдачи
type SortMode string

const (
	SortDistance  SortMode = "distance"
	SortDateDesc  SortMode = "date_desc"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortKmAsc     SortMode = "km_asc"
	SortKmDesc    SortMode = "km_desc"
	SortYearAsc   SortMode = "year_asc"
	SortYearDesc  SortMode = "year_desc"
	SortDealer    SortMode = "dealer"
)

// DefaultSortMode используется, когда клиент не передал sort
const DefaultSortMode = SortDateDesc

var knownSortModes = map[SortMode]bool{
	SortDistance:  true,
	SortDateDesc:  true,
	SortPriceAsc:  true,
	SortPriceDesc: true,
	SortKmAsc:     true,
	SortKmDesc:    true,
	SortYearAsc:   true,
	SortYearDesc:  true,
	SortDealer:    true,
}

// IsKnown сообщает, входит ли режим в закрытый набор
func (m SortMode) IsKnown() bool {
	return knownSortModes[m]
}
