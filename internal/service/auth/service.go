package auth

import (
	"context"
	"errors"

	"github.com/clearstaff/payroll-backend-go/internal/domain/auth"
	"github.com/clearstaff/payroll-backend-go/internal/domain/user"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/database"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db         *database.DB
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:         db,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		UserID:  u.ID,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
		Tokens: auth.TokenResponse{
			AccessToken:      accessToken,
			AccessExpiresAt:  accessExp,
			RefreshToken:     refreshToken,
			RefreshExpiresAt: refreshExp,
		},
	}, nil
}

func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userID, tokenID, err := a.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if a.jwtService.IsTokenRevoked(tokenID) {
		return auth.TokenResponse{}, auth.ErrTokenRevoked
	}

	u, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}

	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:     accessToken,
		AccessExpiresAt: accessExp,
	}, nil
}

func (a *AuthServiceImpl) Logout(ctx context.Context, req auth.RefreshRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	_, tokenID, err := a.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.ErrInvalidToken
	}

	a.jwtService.RevokeToken(tokenID)
	return nil
}
