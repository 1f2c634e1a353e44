package jwt

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func newTestService() Service {
	return NewJWTService(testSecret, testAccessExp, testRefreshExp)
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "admin@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "access", claims["type"])
}

func TestParseRefreshToken_RoundTrip(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-2")
	require.NoError(t, err)

	userID, tokenID, err := svc.ParseRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-2", userID)
	assert.NotEmpty(t, tokenID)
}

func TestParseRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateAccessToken("user-3", "user@example.com", false)
	require.NoError(t, err)

	_, _, err = svc.ParseRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestParseRefreshToken_RejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService("a-different-secret", testAccessExp, testRefreshExp)

	tokenString, _, err := other.GenerateRefreshToken("user-4")
	require.NoError(t, err)

	_, _, err = svc.ParseRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-5")
	require.NoError(t, err)

	_, tokenID, err := svc.ParseRefreshToken(tokenString)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenID))
	svc.RevokeToken(tokenID)
	assert.True(t, svc.IsTokenRevoked(tokenID))
}
