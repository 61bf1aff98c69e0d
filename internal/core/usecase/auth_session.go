package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"

	"github.com/google/uuid"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newMockUserID - "u_" и 9 случайных символов base36
func newMockUserID() string {
	random := uuid.New()
	var b strings.Builder
	b.WriteString(constants.MockUserIDBase)
	for i := 0; i < constants.MockUserIDLen; i++ {
		b.WriteByte(base36Alphabet[int(random[i])%len(base36Alphabet)])
	}
	return b.String()
}

// waitContext имитирует задержку сети и прерывается вместе с контекстом
func waitContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// sessionIssuer сохраняет пользователя под новым id сессии и выпускает токен
type sessionIssuer struct {
	sessions port.SessionStorePort
	tokens   port.TokenServicePort
	ttl      time.Duration
}

func (s sessionIssuer) issue(ctx context.Context, user domain.User) (*domain.Session, error) {
	sessionID := uuid.NewString()

	if err := s.sessions.Save(ctx, sessionID, user, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, expiresAt, err := s.tokens.GenerateToken(ctx, sessionID, user, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
