package jwt

import (
	"context"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(userID string, email string, isAdmin bool) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string) (token string, expiresAt int64, err error)
	ParseRefreshToken(tokenString string) (userID string, tokenID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(tokenID string)
	IsTokenRevoked(tokenID string) bool
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, email string, isAdmin bool) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":  userID,
		"email":    email,
		"is_admin": isAdmin,
		"type":     "access",
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

func (j *JWTService) GenerateRefreshToken(userID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"jti":     uuid.NewString(),
		"type":    "refresh",
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ParseRefreshToken validates a refresh token and returns the subject user
// and the token ID used for revocation tracking.
func (j *JWTService) ParseRefreshToken(tokenString string) (userID string, tokenID string, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", "", err
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		return "", "", err
	}

	if typ, _ := claims["type"].(string); typ != "refresh" {
		return "", "", jwtauth.ErrUnauthorized
	}

	userID, _ = claims["user_id"].(string)
	tokenID, _ = claims["jti"].(string)
	if userID == "" || tokenID == "" {
		return "", "", jwtauth.ErrUnauthorized
	}

	return userID, tokenID, nil
}

func (j *JWTService) RevokeToken(tokenID string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	// Keep the entry for the longest a refresh token could still live
	retention, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		retention = 168 * time.Hour
	}
	j.revokedTokens[tokenID] = time.Now().Add(retention).Unix()

	// Drop entries for tokens that have expired anyway
	now := time.Now().Unix()
	for id, exp := range j.revokedTokens {
		if exp < now {
			delete(j.revokedTokens, id)
		}
	}
}

func (j *JWTService) IsTokenRevoked(tokenID string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()

	_, revoked := j.revokedTokens[tokenID]
	return revoked
}
