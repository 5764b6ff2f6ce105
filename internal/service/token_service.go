package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/suri-ai/suri-backend/config"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultAccessTokenTTL applies when the config does not override the expiry.
const DefaultAccessTokenTTL = 30 * time.Minute

// SessionClaims is the session token payload: sub carries the email, uid the
// provider-assigned user ID.
type SessionClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies the HMAC-signed session tokens carried as
// bearer credentials on every authenticated request. Single process-wide
// secret, no rotation.
type TokenService interface {
	Issue(userID, email, role string, ttl time.Duration) (string, error)
	Verify(tokenString string) (*SessionClaims, error)
	DefaultTTL() time.Duration
}

type tokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewTokenService(cfg *config.Config) TokenService {
	ttl := DefaultAccessTokenTTL
	if cfg.Auth.AccessTokenMinutes > 0 {
		ttl = time.Duration(cfg.Auth.AccessTokenMinutes) * time.Minute
	}
	return &tokenService{secret: []byte(cfg.Auth.SecretKey), defaultTTL: ttl}
}

func (s *tokenService) DefaultTTL() time.Duration {
	return s.defaultTTL
}

func (s *tokenService) Issue(userID, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) Verify(tokenString string) (*SessionClaims, error) {
	var claims SessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
