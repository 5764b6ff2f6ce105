package repository

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"github.com/suri-ai/suri-backend/internal/model"
)

// UserRepository is the gateway to the identity provider (Firebase Auth).
// Accounts live entirely in the provider; nothing user-related is stored in
// Firestore.
type UserRepository interface {
	Create(ctx context.Context, email, password, name string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, uid string) (*model.User, error)
	ListAll(ctx context.Context) ([]model.User, error)
	SetRole(ctx context.Context, uid, role string) error
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

type userRepository struct {
	client *auth.Client
}

func NewUserRepository(client *auth.Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) Create(ctx context.Context, email, password, name string) (*model.User, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(name).
		EmailVerified(false)

	record, err := r.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("firebase user creation failed: %w", err)
	}
	return userFromRecord(record), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	record, err := r.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	return userFromRecord(record), nil
}

func (r *userRepository) GetByID(ctx context.Context, uid string) (*model.User, error) {
	record, err := r.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", uid, err)
	}
	return userFromRecord(record), nil
}

// ListAll drains the provider's paged user iterator into a slice. Fine at this
// scale; admin listing is not a hot path.
func (r *userRepository) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	it := r.client.Users(ctx, "")
	for {
		exported, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		users = append(users, *userFromRecord(exported.UserRecord))
	}
	return users, nil
}

// SetRole persists the role as a custom claim on the identity record. Admin
// access is granted by this claim, not by mere possession of a valid token.
func (r *userRepository) SetRole(ctx context.Context, uid, role string) error {
	if err := r.client.SetCustomUserClaims(ctx, uid, map[string]interface{}{"role": role}); err != nil {
		return fmt.Errorf("failed to set role claim for %s: %w", uid, err)
	}
	return nil
}

// VerifyIDToken checks a provider-issued ID token against the provider's
// public keys and returns the account UID.
func (r *userRepository) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := r.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("invalid ID token: %w", err)
	}
	return token.UID, nil
}

func userFromRecord(record *auth.UserRecord) *model.User {
	user := &model.User{
		ID:            record.UID,
		Email:         record.Email,
		Name:          record.DisplayName,
		Role:          model.RoleStudent,
		EmailVerified: record.EmailVerified,
	}
	if record.UserMetadata != nil {
		user.CreatedAt = time.UnixMilli(record.UserMetadata.CreationTimestamp).UTC()
	}
	if role, ok := record.CustomClaims["role"].(string); ok && role != "" {
		user.Role = role
	}
	if user.Name == "" {
		log.Debug().Str("uid", user.ID).Msg("User record has no display name")
		user.Name = "N/A"
	}
	return user
}
