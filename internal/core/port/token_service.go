package port

import (
	"context"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

// TokenServicePort выпускает и проверяет токены сессий
type TokenServicePort interface {
	GenerateToken(ctx context.Context, sessionID string, user domain.User, ttl time.Duration) (string, time.Time, error)
	ValidateToken(ctx context.Context, token string) (*domain.Claims, error)
}
