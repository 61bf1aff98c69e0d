package rest

import (
	"net/http"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type ModelsHandler struct {
	getModelsUC          usecases_port.GetModelsUseCase
	getVariantsUC        usecases_port.GetVariantsUseCase
	getAvailableModelsUC usecases_port.GetAvailableModelsUseCase
	getModelCountsUC     usecases_port.GetModelCountsUseCase
}

func NewModelsHandler(
	getModelsUC usecases_port.GetModelsUseCase,
	getVariantsUC usecases_port.GetVariantsUseCase,
	getAvailableModelsUC usecases_port.GetAvailableModelsUseCase,
	getModelCountsUC usecases_port.GetModelCountsUseCase) *ModelsHandler {
	return &ModelsHandler{
		getModelsUC:          getModelsUC,
		getVariantsUC:        getVariantsUC,
		getAvailableModelsUC: getAvailableModelsUC,
		getModelCountsUC:     getModelCountsUC,
	}
}

// GetModels обрабатывает GET /api/v1/models?brand=
func (h *ModelsHandler) GetModels(w http.ResponseWriter, r *http.Request) {
	brand := parseBrand(r.URL.Query())

	models, err := h.getModelsUC.Execute(r.Context(), brand)
	if err != nil {
		h.fail(w, r, "GetModels", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, ModelsResponse{Brand: brand, Models: models})
}

// GetVariants обрабатывает GET /api/v1/models/{model}/variants
func (h *ModelsHandler) GetVariants(w http.ResponseWriter, r *http.Request) {
	model := chi.URLParam(r, "model")

	variants, err := h.getVariantsUC.Execute(r.Context(), model)
	if err != nil {
		h.fail(w, r, "GetVariants", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, VariantsResponse{Model: model, Variants: variants})
}

// GetAvailableModels обрабатывает GET /api/v1/models/available?brand=&...
func (h *ModelsHandler) GetAvailableModels(w http.ResponseWriter, r *http.Request) {
	filters := parseFilters(r.URL.Query())

	models, err := h.getAvailableModelsUC.Execute(r.Context(), filters.Brand, filters)
	if err != nil {
		h.fail(w, r, "GetAvailableModels", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, ModelsResponse{Brand: filters.Brand, Models: models})
}

// GetModelCounts обрабатывает GET /api/v1/models/counts?brand=&...
func (h *ModelsHandler) GetModelCounts(w http.ResponseWriter, r *http.Request) {
	filters := parseFilters(r.URL.Query())

	counts, err := h.getModelCountsUC.Execute(r.Context(), filters.Brand, filters)
	if err != nil {
		h.fail(w, r, "GetModelCounts", err)
		return
	}
	RespondWithJSON(w, http.StatusOK, ModelCountsResponse{Brand: filters.Brand, Counts: counts})
}

func (h *ModelsHandler) fail(w http.ResponseWriter, r *http.Request, handler string, err error) {
	contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, port.Fields{"handler": handler})
	WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve models")
}
