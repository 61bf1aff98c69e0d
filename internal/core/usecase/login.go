package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"
	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
)

// LoginUseCase - мок входа: пароль не проверяется, пользователь собирается из email
type LoginUseCase struct {
	issuer sessionIssuer
	delay  time.Duration
}

func NewLoginUseCase(sessions port.SessionStorePort, tokens port.TokenServicePort, sessionTTL, delay time.Duration) *LoginUseCase {
	return &LoginUseCase{
		issuer: sessionIssuer{sessions: sessions, tokens: tokens, ttl: sessionTTL},
		delay:  delay,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (*domain.Session, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "Login",
		"email":    email,
	})
	ucLogger.Info("Use case started: attempting to login user", nil)

	email = strings.TrimSpace(email)
	localPart, _, found := strings.Cut(email, "@")
	if !found || localPart == "" {
		ucLogger.Warn("Login failed: malformed email", nil)
		return nil, domain.ErrInvalidCredentials
	}

	if err := waitContext(ctx, uc.delay); err != nil {
		ucLogger.Warn("Login interrupted", port.Fields{"error": err.Error()})
		return nil, err
	}

	user := domain.User{
		ID:    newMockUserID(),
		Name:  localPart,
		Email: email,
		Phone: constants.MockUserPhone,
	}

	session, err := uc.issuer.issue(ctx, user)
	if err != nil {
		ucLogger.Error("Failed to open session", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: user logged in successfully", port.Fields{"user_id": user.ID})
	return session, nil
}
