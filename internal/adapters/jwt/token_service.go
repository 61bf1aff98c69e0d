package token_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"
	"github.com/mnasyf821-dotcom/palcars/internal/core/port"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "palcars"

// TokenService - реализация TokenServicePort для JWT.
// В токене только id сессии и пользователя, сам пользователь лежит в хранилище сессий.
type TokenService struct {
	signingKey []byte
	now        func() time.Time
}

func NewTokenService(signingKey string) (*TokenService, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	return &TokenService{signingKey: []byte(signingKey), now: time.Now}, nil
}

type jwtCustomClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// GenerateToken возвращает подписанный токен и момент его истечения
func (s *TokenService) GenerateToken(ctx context.Context, sessionID string, user domain.User, ttl time.Duration) (string, time.Time, error) {
	serviceLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "TokenService",
		"method":    "GenerateToken",
		"user_id":   user.ID,
	})

	now := s.now()
	expiresAt := now.Add(ttl)
	claims := &jwtCustomClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		serviceLogger.Error("Failed to sign token", err, nil)
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	serviceLogger.Debug("Token generated successfully.", port.Fields{"ttl": ttl.String()})
	return signedToken, expiresAt, nil
}

// ValidateToken проверяет подпись и срок действия
func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	serviceLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "TokenService",
		"method":    "ValidateToken",
	})

	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			serviceLogger.Warn("Token has expired", nil)
		} else {
			serviceLogger.Warn("Invalid token format or signature", port.Fields{"error": err.Error()})
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		serviceLogger.Error("Token was parsed without error, but claims are incomplete", nil, nil)
		return nil, domain.ErrTokenInvalid
	}

	result := &domain.Claims{
		SessionID: claims.SessionID,
		UserID:    claims.Subject,
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}
