package auth

import "context"

type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)

	// Logout revokes the presented refresh token.
	Logout(ctx context.Context, req RefreshRequest) error
}
