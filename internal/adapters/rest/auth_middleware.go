package rest

import (
	"net/http"
	"strings"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port/usecases_port"
)

type AuthMiddleware struct {
	validateSessionUC usecases_port.ValidateSessionUseCase
}

func NewAuthMiddleware(validateSessionUC usecases_port.ValidateSessionUseCase) *AuthMiddleware {
	return &AuthMiddleware{validateSessionUC: validateSessionUC}
}

// Authenticate - middleware для проверки JWT из заголовка Authorization
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		claims, err := am.validateSessionUC.Execute(r.Context(), tokenString)
		if err != nil {
			logger.Warn("Token rejected", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := contextkeys.ContextWithClaims(r.Context(), claims)
		ctx = contextkeys.ContextWithLogger(ctx, logger.WithFields(port.Fields{"user_id": claims.UserID}))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
