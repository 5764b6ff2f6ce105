package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/suri-ai/suri-backend/internal/dto"
	"github.com/suri-ai/suri-backend/internal/repository"
)

// AuthService covers registration and both login flows.
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, email, password string) (*dto.TokenResponse, error)
	LoginWithIDToken(ctx context.Context, idToken string) (*dto.TokenResponse, error)
}

type authService struct {
	users  repository.UserRepository
	tokens TokenService
}

func NewAuthService(users repository.UserRepository, tokens TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	user, err := s.users.Create(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}
	log.Info().Str("uid", user.ID).Str("email", user.Email).Msg("User registered")
	return &dto.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// Login looks the user up by email and issues a session token. The password is
// NOT verified: the identity provider's admin API has no credential check, so
// any password succeeds for a known email. Clients that can should use
// LoginWithIDToken instead.
func (s *authService) Login(ctx context.Context, email, _ string) (*dto.TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.issueFor(user.ID, user.Email, user.Role)
}

// LoginWithIDToken verifies a provider-issued ID token (signature and claims
// against the provider's public keys) and exchanges it for a session token.
func (s *authService) LoginWithIDToken(ctx context.Context, idToken string) (*dto.TokenResponse, error) {
	uid, err := s.users.VerifyIDToken(ctx, idToken)
	if err != nil {
		log.Warn().Err(err).Msg("ID token verification failed")
		return nil, ErrInvalidToken
	}
	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.issueFor(user.ID, user.Email, user.Role)
}

func (s *authService) issueFor(uid, email, role string) (*dto.TokenResponse, error) {
	token, err := s.tokens.Issue(uid, email, role, s.tokens.DefaultTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
