package port

import (
	"context"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

// SessionStorePort хранит пользователя текущей сессии.
// Get возвращает domain.ErrSessionNotFound, если сессии нет или запись повреждена.
type SessionStorePort interface {
	Save(ctx context.Context, sessionID string, user domain.User, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*domain.User, error)
	Delete(ctx context.Context, sessionID string) error
}
