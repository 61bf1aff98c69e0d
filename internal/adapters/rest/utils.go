package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/search"
)

// maxRequestBodySize ограничивает тело POST/PATCH запросов
const maxRequestBodySize = 1 << 20

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// decodeJSONBody читает тело запроса с ограничением размера
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// parsePagination: page < 1 превращается в 1, perPage вне [1, MaxPageSize] - в значение по умолчанию
func parsePagination(query url.Values, defaultPerPage int) (page, perPage int) {
	page, _ = strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(query.Get("perPage"))
	if perPage < 1 || perPage > constants.MaxPageSize {
		perPage = defaultPerPage
	}
	return page, perPage
}

// parseSortMode: пустое значение - режим по умолчанию, неизвестное - ok=false
func parseSortMode(query url.Values) (domain.SortMode, bool) {
	raw := strings.TrimSpace(query.Get("sort"))
	if raw == "" {
		return domain.DefaultSortMode, true
	}
	mode := domain.SortMode(raw)
	return mode, mode.IsKnown()
}

// parseBrand: "all" из селекта марки означает "любая марка"
func parseBrand(query url.Values) string {
	brand := strings.TrimSpace(query.Get("brand"))
	if strings.EqualFold(brand, "all") {
		return ""
	}
	return brand
}

func parseString(query url.Values, key string) string {
	return strings.TrimSpace(query.Get(key))
}

// parseFilters собирает критерии поиска из query-параметров.
// Числа разбираются по правилам parseFloat, мусор означает "без ограничения".
func parseFilters(query url.Values) domain.ListingFilters {
	return domain.ListingFilters{
		Query:        parseString(query, "query"),
		Brand:        parseBrand(query),
		Model:        parseString(query, "model"),
		Models:       search.ParseModelList(query.Get("models")),
		Condition:    parseString(query, "condition"),
		Location:     parseString(query, "location"),
		Fuel:         parseString(query, "fuel"),
		Transmission: parseString(query, "transmission"),
		Color:        parseString(query, "color"),
		// engine сравнивается точным равенством, поэтому значение не обрезается
		Engine:       query.Get("engine"),

		MinPrice:   search.ParseNumber(query.Get("minPrice")),
		MaxPrice:   search.ParseNumber(query.Get("maxPrice")),
		MinYear:    search.ParseNumber(query.Get("minYear")),
		MaxYear:    search.ParseNumber(query.Get("maxYear")),
		MinMileage: search.ParseNumber(query.Get("minMileage")),
		MaxMileage: search.ParseNumber(query.Get("maxMileage")),
	}
}

// parseNames разбирает список через запятую, например names=brands,cities
func parseNames(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
