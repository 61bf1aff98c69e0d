package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port/usecases_port"
)

type AuthHandler struct {
	loginUC          usecases_port.LoginUseCase
	registerUC       usecases_port.RegisterUseCase
	logoutUC         usecases_port.LogoutUseCase
	getCurrentUserUC usecases_port.GetCurrentUserUseCase
	updateProfileUC  usecases_port.UpdateProfileUseCase
}

func NewAuthHandler(
	loginUC usecases_port.LoginUseCase,
	registerUC usecases_port.RegisterUseCase,
	logoutUC usecases_port.LogoutUseCase,
	getCurrentUserUC usecases_port.GetCurrentUserUseCase,
	updateProfileUC usecases_port.UpdateProfileUseCase) *AuthHandler {
	return &AuthHandler{
		loginUC:          loginUC,
		registerUC:       registerUC,
		logoutUC:         logoutUC,
		getCurrentUserUC: getCurrentUserUC,
		updateProfileUC:  updateProfileUC,
	}
}

// Login обрабатывает POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.loginUC.Execute(r.Context(), req.Email, req.Password)
	h.respondSession(w, r, session, err, http.StatusOK)
}

// Register обрабатывает POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.registerUC.Execute(r.Context(), req.Name, req.Email, req.Phone, req.Password)
	h.respondSession(w, r, session, err, http.StatusCreated)
}

func (h *AuthHandler) respondSession(w http.ResponseWriter, r *http.Request, session *domain.Session, err error, status int) {
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			WriteJSONError(w, http.StatusBadRequest, "Invalid credentials")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// клиент ушел, пока шла имитация задержки
			WriteJSONError(w, http.StatusRequestTimeout, "Request cancelled")
		default:
			contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, nil)
			WriteJSONError(w, http.StatusInternalServerError, "Failed to open session")
		}
		return
	}

	RespondWithJSON(w, status, SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      newUserResponse(session.User),
	})
}

// Logout обрабатывает POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := contextkeys.ClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.logoutUC.Execute(r.Context(), claims.SessionID); err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to logout")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me обрабатывает GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := contextkeys.ClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.getCurrentUserUC.Execute(r.Context(), claims.SessionID)
	if err != nil {
		h.respondUserError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, newUserResponse(*user))
}

// UpdateProfile обрабатывает PATCH /api/v1/auth/me
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := contextkeys.ClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.updateProfileUC.Execute(r.Context(), claims.SessionID, domain.ProfileUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Avatar: req.Avatar,
	})
	if err != nil {
		h.respondUserError(w, r, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, newUserResponse(*user))
}

func (h *AuthHandler) respondUserError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrUnauthenticated) {
		WriteJSONError(w, http.StatusUnauthorized, "Session expired")
		return
	}
	contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, port.Fields{"handler": "AuthHandler"})
	WriteJSONError(w, http.StatusInternalServerError, "Failed to load user")
}
