package payroll

import (
	"context"
	"testing"

	"github.com/clearstaff/payroll-backend-go/internal/domain/auth"
	"github.com/clearstaff/payroll-backend-go/internal/domain/payroll"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimsContext(t *testing.T, claims map[string]interface{}) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestGetClaimsFromContext_NoToken(t *testing.T) {
	_, _, err := getClaimsFromContext(context.Background())

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestGetClaimsFromContext_MissingUserID(t *testing.T) {
	ctx := claimsContext(t, map[string]interface{}{"is_admin": true})

	_, _, err := getClaimsFromContext(ctx)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestGetClaimsFromContext_AdminClaims(t *testing.T) {
	ctx := claimsContext(t, map[string]interface{}{
		"user_id":  "user-1",
		"is_admin": true,
	})

	userID, isAdmin, err := getClaimsFromContext(ctx)

	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.True(t, isAdmin)
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	ctx := claimsContext(t, map[string]interface{}{
		"user_id":  "user-2",
		"is_admin": false,
	})

	_, err := requireAdmin(ctx)

	assert.ErrorIs(t, err, payroll.ErrAdminRequired)
}

func TestRequireAdmin_Admin(t *testing.T) {
	ctx := claimsContext(t, map[string]interface{}{
		"user_id":  "user-3",
		"is_admin": true,
	})

	userID, err := requireAdmin(ctx)

	require.NoError(t, err)
	assert.Equal(t, "user-3", userID)
}
