package token_adapter

import (
	"context"
	"testing"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)
	ctx := context.Background()

	token, expiresAt, err := svc.GenerateToken(ctx, "session-1", domain.User{ID: "u_abcdefghi"}, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "u_abcdefghi", claims.UserID)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestTokenService_Expired(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)
	ctx := context.Background()

	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }
	token, _, err := svc.GenerateToken(ctx, "sid", domain.User{ID: "u_1"}, time.Hour)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_WrongKey(t *testing.T) {
	issuerSvc, err := NewTokenService("key-a")
	require.NoError(t, err)
	verifier, err := NewTokenService("key-b")
	require.NoError(t, err)

	token, _, err := issuerSvc.GenerateToken(context.Background(), "sid", domain.User{ID: "u_1"}, time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	claims := jwtCustomClaims{
		SessionID: "sid",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), unsigned)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_Garbage(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestNewTokenService_EmptyKey(t *testing.T) {
	_, err := NewTokenService("")
	assert.Error(t, err)
}
