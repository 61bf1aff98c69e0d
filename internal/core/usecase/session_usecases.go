package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
)

type LogoutUseCase struct {
	sessions port.SessionStorePort
}

func NewLogoutUseCase(sessions port.SessionStorePort) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, sessionID string) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "Logout"})

	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		ucLogger.Error("Failed to delete session", err, nil)
		return err
	}
	ucLogger.Info("User logged out", nil)
	return nil
}

type ValidateSessionUseCase struct {
	tokens port.TokenServicePort
}

func NewValidateSessionUseCase(tokens port.TokenServicePort) *ValidateSessionUseCase {
	return &ValidateSessionUseCase{tokens: tokens}
}

func (uc *ValidateSessionUseCase) Execute(ctx context.Context, token string) (*domain.Claims, error) {
	claims, err := uc.tokens.ValidateToken(ctx, token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

type GetCurrentUserUseCase struct {
	sessions port.SessionStorePort
}

func NewGetCurrentUserUseCase(sessions port.SessionStorePort) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{sessions: sessions}
}

// Execute возвращает ErrUnauthenticated, если сессии нет
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, sessionID string) (*domain.User, error) {
	return loadSessionUser(ctx, uc.sessions, sessionID, "GetCurrentUser")
}

type UpdateProfileUseCase struct {
	sessions port.SessionStorePort
	ttl      time.Duration
}

func NewUpdateProfileUseCase(sessions port.SessionStorePort, sessionTTL time.Duration) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{sessions: sessions, ttl: sessionTTL}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, sessionID string, update domain.ProfileUpdate) (*domain.User, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "UpdateProfile"})

	user, err := loadSessionUser(ctx, uc.sessions, sessionID, "UpdateProfile")
	if err != nil {
		return nil, err
	}

	updated := user.Apply(update)
	if err := uc.sessions.Save(ctx, sessionID, updated, uc.ttl); err != nil {
		ucLogger.Error("Failed to save updated profile", err, nil)
		return nil, err
	}

	ucLogger.Info("Profile updated", port.Fields{"user_id": updated.ID})
	return &updated, nil
}

func loadSessionUser(ctx context.Context, sessions port.SessionStorePort, sessionID, useCase string) (*domain.User, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": useCase})

	user, err := sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			ucLogger.Warn("Session not found", nil)
			return nil, domain.ErrUnauthenticated
		}
		ucLogger.Error("Session store returned an error", err, nil)
		return nil, err
	}
	return user, nil
}
