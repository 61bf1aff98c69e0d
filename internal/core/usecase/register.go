package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
)

type RegisterUseCase struct {
	issuer sessionIssuer
	delay  time.Duration
}

func NewRegisterUseCase(sessions port.SessionStorePort, tokens port.TokenServicePort, sessionTTL, delay time.Duration) *RegisterUseCase {
	return &RegisterUseCase{
		issuer: sessionIssuer{sessions: sessions, tokens: tokens, ttl: sessionTTL},
		delay:  delay,
	}
}

// Execute создает пользователя из данных формы, пароль нигде не хранится
func (uc *RegisterUseCase) Execute(ctx context.Context, name, email, phone, password string) (*domain.Session, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Register",
		"email":    email,
	})
	ucLogger.Info("Use case started", nil)

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || !strings.Contains(email, "@") {
		ucLogger.Warn("Registration failed: name or email is missing", nil)
		return nil, domain.ErrInvalidCredentials
	}

	if err := waitContext(ctx, uc.delay); err != nil {
		ucLogger.Warn("Registration interrupted", port.Fields{"error": err.Error()})
		return nil, err
	}

	user := domain.User{
		ID:    newMockUserID(),
		Name:  name,
		Email: email,
		Phone: strings.TrimSpace(phone),
	}

	session, err := uc.issuer.issue(ctx, user)
	if err != nil {
		ucLogger.Error("Failed to open session", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"user_id": user.ID})
	return session, nil
}
