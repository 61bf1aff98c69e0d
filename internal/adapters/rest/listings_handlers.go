package rest

import (
	"errors"
	"net/http"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type ListingsHandler struct {
	findListingsUC      usecases_port.FindListingsUseCase
	getFeaturedUC       usecases_port.GetFeaturedListingsUseCase
	getListingDetailsUC usecases_port.GetListingDetailsUseCase
	submitListingUC     usecases_port.SubmitListingUseCase
	getCurrentUserUC    usecases_port.GetCurrentUserUseCase
	defaultPerPage      int
}

func NewListingsHandler(
	findListingsUC usecases_port.FindListingsUseCase,
	getFeaturedUC usecases_port.GetFeaturedListingsUseCase,
	getListingDetailsUC usecases_port.GetListingDetailsUseCase,
	submitListingUC usecases_port.SubmitListingUseCase,
	getCurrentUserUC usecases_port.GetCurrentUserUseCase,
	defaultPerPage int) *ListingsHandler {
	return &ListingsHandler{
		findListingsUC:      findListingsUC,
		getFeaturedUC:       getFeaturedUC,
		getListingDetailsUC: getListingDetailsUC,
		submitListingUC:     submitListingUC,
		getCurrentUserUC:    getCurrentUserUC,
		defaultPerPage:      defaultPerPage,
	}
}

// FindListings обрабатывает GET /api/v1/cars
func (h *ListingsHandler) FindListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	lang := contextkeys.LanguageFromContext(r.Context())
	query := r.URL.Query()

	page, perPage := parsePagination(query, h.defaultPerPage)
	mode, ok := parseSortMode(query)
	if !ok {
		logger.Warn("Unknown sort mode", port.Fields{"sort": query.Get("sort")})
		WriteJSONError(w, http.StatusBadRequest, "Unknown sort mode")
		return
	}
	filters := parseFilters(query)

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "FindListings",
		"page":     page,
		"per_page": perPage,
		"filters":  filters,
	})
	handlerLogger.Debug("Processing request to find listings", nil)

	result, err := h.findListingsUC.Execute(r.Context(), filters, mode, page, perPage)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve listings")
		return
	}

	RespondWithJSON(w, http.StatusOK, PaginatedListingsResponse{
		Total:      result.TotalCount,
		TotalPages: result.TotalPages,
		Page:       result.Page,
		PerPage:    result.PageSize,
		Sort:       string(mode),
		Data:       newListingCards(result.Items, lang),
	})
}

// GetFeatured обрабатывает GET /api/v1/cars/featured
func (h *ListingsHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	lang := contextkeys.LanguageFromContext(r.Context())

	listings, err := h.getFeaturedUC.Execute(r.Context())
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, port.Fields{"handler": "GetFeatured"})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve listings")
		return
	}

	RespondWithJSON(w, http.StatusOK, FeaturedListingsResponse{Data: newListingCards(listings, lang)})
}

// GetListingDetails обрабатывает GET /api/v1/cars/{carID}
func (h *ListingsHandler) GetListingDetails(w http.ResponseWriter, r *http.Request) {
	lang := contextkeys.LanguageFromContext(r.Context())
	listingID := chi.URLParam(r, "carID")

	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":    "GetListingDetails",
		"listing_id": listingID,
	})

	details, err := h.getListingDetailsUC.Execute(r.Context(), listingID, lang)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Listing not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve listing")
		return
	}

	listing := newListingResponse(details.Listing, lang)
	listing.FormattedPrice = details.FormattedPrice

	RespondWithJSON(w, http.StatusOK, ListingDetailsResponse{
		Listing: listing,
		Gallery: details.Gallery,
		Related: newListingCards(details.Related, lang),
		Contact: ContactResponse{
			WhatsApp: details.Contact.WhatsApp,
			Phone:    details.Contact.Phone,
		},
	})
}

// SubmitListing обрабатывает POST /api/v1/cars, маршрут закрыт AuthMiddleware
func (h *ListingsHandler) SubmitListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	claims, ok := contextkeys.ClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req SubmitListingRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	seller, err := h.getCurrentUserUC.Execute(r.Context(), claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			WriteJSONError(w, http.StatusUnauthorized, "Session expired")
			return
		}
		logger.Error("Failed to load session user", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to submit listing")
		return
	}

	submission, err := h.submitListingUC.Execute(r.Context(), *seller, req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSubmission) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Use case failed", err, port.Fields{"handler": "SubmitListing"})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to submit listing")
		return
	}

	RespondWithJSON(w, http.StatusCreated, SubmissionResponse{
		ID:        submission.ID.String(),
		Status:    "submitted",
		CreatedAt: submission.CreatedAt,
	})
}
