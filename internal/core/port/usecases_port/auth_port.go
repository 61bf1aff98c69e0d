package usecases_port

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
)

type LoginUseCase interface {
	Execute(ctx context.Context, email, password string) (*domain.Session, error)
}

type RegisterUseCase interface {
	Execute(ctx context.Context, name, email, phone, password string) (*domain.Session, error)
}

type LogoutUseCase interface {
	Execute(ctx context.Context, sessionID string) error
}

// ValidateSessionUseCase проверяет токен и возвращает его claims
type ValidateSessionUseCase interface {
	Execute(ctx context.Context, token string) (*domain.Claims, error)
}

type GetCurrentUserUseCase interface {
	Execute(ctx context.Context, sessionID string) (*domain.User, error)
}

type UpdateProfileUseCase interface {
	Execute(ctx context.Context, sessionID string, update domain.ProfileUpdate) (*domain.User, error)
}
