package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suri-ai/suri-backend/internal/dto"
	"github.com/suri-ai/suri-backend/internal/model"
	"github.com/suri-ai/suri-backend/internal/repository"
)

func newAuthFixture() (AuthService, *fakeUserRepo, TokenService) {
	users := &fakeUserRepo{}
	tokens := newTestTokenService("test-secret")
	return NewAuthService(users, tokens), users, tokens
}

func TestRegisterCreatesProviderUser(t *testing.T) {
	svc, users, _ := newAuthFixture()

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "new@example.com",
		Name:     "New Student",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "new@example.com", resp.Email)
	assert.Equal(t, "New Student", resp.Name)
	assert.Len(t, users.users, 1)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Email: "dup@example.com", Name: "A", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Email: "dup@example.com", Name: "B", Password: "password456"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

// Login does not verify the password: any password succeeds for a known email.
// This is the documented behavior of the admin-API-only flow, pending client
// adoption of the ID token path.
func TestLoginIgnoresPassword(t *testing.T) {
	svc, users, tokens := newAuthFixture()
	ctx := context.Background()
	_, err := users.Create(ctx, "known@example.com", "realpassword", "Known")
	require.NoError(t, err)

	for _, password := range []string{"realpassword", "totally-wrong", ""} {
		resp, err := svc.Login(ctx, "known@example.com", password)
		require.NoError(t, err, "password %q", password)
		assert.Equal(t, "bearer", resp.TokenType)

		claims, err := tokens.Verify(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "known@example.com", claims.Subject)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestLoginTokenCarriesAdminRole(t *testing.T) {
	svc, users, tokens := newAuthFixture()
	ctx := context.Background()
	user, err := users.Create(ctx, "admin@example.com", "pw", "Admin")
	require.NoError(t, err)
	require.NoError(t, users.SetRole(ctx, user.ID, model.RoleAdmin))

	resp, err := svc.Login(ctx, "admin@example.com", "anything")
	require.NoError(t, err)

	claims, err := tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestLoginWithIDToken(t *testing.T) {
	svc, users, tokens := newAuthFixture()
	ctx := context.Background()
	user, err := users.Create(ctx, "verified@example.com", "pw", "Verified")
	require.NoError(t, err)

	resp, err := svc.LoginWithIDToken(ctx, "idtoken:"+user.ID)
	require.NoError(t, err)

	claims, err := tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "verified@example.com", claims.Subject)
}

func TestLoginWithInvalidIDToken(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.LoginWithIDToken(context.Background(), "garbage token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
