package search

import (
	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

// Query выполняет полный конвейер выдачи: фильтр, сортировка, разбиение на страницы.
// Страницы нумеруются с 1. Страница вне диапазона дает пустой список, а не ошибку.
// pageSize <= 0 заменяется размером страницы по умолчанию.
func Query(catalog []domain.Listing, f domain.ListingFilters, mode domain.SortMode, page, pageSize int) domain.QueryResult {
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}

	matched := SortListings(Filter(catalog, f), mode)
	total := len(matched)

	return domain.QueryResult{
		Items:      Paginate(matched, page, pageSize),
		TotalCount: total,
		TotalPages: TotalPages(total, pageSize),
		Page:       page,
		PageSize:   pageSize,
	}
}

// TotalPages = ceil(total / pageSize). Для пустой выдачи страниц 0.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Paginate вырезает страницу page (с 1) из уже отсортированного списка
func Paginate(listings []domain.Listing, page, pageSize int) []domain.Listing {
	if page < 1 || page > TotalPages(len(listings), pageSize) {
		return []domain.Listing{}
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(listings))

	items := make([]domain.Listing, end-start)
	copy(items, listings[start:end])
	return items
}
