package rest

import (
	"net/http"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port/usecases_port"
)

type DictionariesHandler struct {
	getDictionariesUC usecases_port.GetDictionariesUseCase
}

func NewDictionariesHandler(getDictionariesUC usecases_port.GetDictionariesUseCase) *DictionariesHandler {
	return &DictionariesHandler{getDictionariesUC: getDictionariesUC}
}

// GetDictionaries обрабатывает GET /api/v1/dictionaries?names=brands,cities.
// Без names возвращаются все справочники.
func (h *DictionariesHandler) GetDictionaries(w http.ResponseWriter, r *http.Request) {
	lang := contextkeys.LanguageFromContext(r.Context())
	names := parseNames(r.URL.Query().Get("names"))

	dictionaries, err := h.getDictionariesUC.Execute(r.Context(), names, lang)
	if err != nil {
		// Use Case сам логирует ошибки
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve dictionaries")
		return
	}

	response := make(DictionariesResponse, len(dictionaries))
	for name, items := range dictionaries {
		respItems := make([]DictionaryItemResponse, len(items))
		for i, item := range items {
			respItems[i] = DictionaryItemResponse{SystemName: item.SystemName, DisplayName: item.DisplayName}
		}
		response[name] = respItems
	}

	RespondWithJSON(w, http.StatusOK, response)
}
