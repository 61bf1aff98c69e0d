package contextkeys

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

// ContextWithClaims кладет данные проверенного токена в контекст
func ContextWithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, sessionKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(sessionKey).(*domain.Claims)
	return claims, ok && claims != nil
}
