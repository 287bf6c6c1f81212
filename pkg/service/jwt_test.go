package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "maintenance-system/pkg/errors"
)

func newTestJWTService(accessTTL, refreshTTL time.Duration) JWTService {
	return NewJWTService("test-secret-key", accessTTL, refreshTTL, zap.NewNop())
}

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := newTestJWTService(time.Hour, 24*time.Hour)

	accessToken, refreshToken, err := svc.GenerateTokens(42, "manager")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), accessClaims.UserID)
	assert.Equal(t, "manager", accessClaims.Role)
	assert.False(t, accessClaims.IsRefreshToken)
	assert.NotEmpty(t, accessClaims.ID)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)

	// jti у каждого токена свой.
	assert.NotEqual(t, accessClaims.ID, refreshClaims.ID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(time.Hour, 24*time.Hour)
	other := NewJWTService("другой-секрет", time.Hour, 24*time.Hour, zap.NewNop())

	token, _, err := svc.GenerateTokens(1, "user")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(-time.Minute, -time.Minute)

	token, _, err := svc.GenerateTokens(1, "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(time.Hour, 24*time.Hour)

	_, err := svc.ValidateToken("не.настоящий.токен")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
}
