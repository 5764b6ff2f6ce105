package dto

// RegisterRequest creates a new account with the identity provider.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest follows the OAuth2 password form convention used by the
// frontend: username carries the email.
type LoginRequest struct {
	Username string `form:"username" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// IDTokenLoginRequest exchanges a provider-issued ID token (obtained by the
// client SDK) for a session token. Unlike /auth/login, this path never sends a
// password to the server.
type IDTokenLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the public view of an identity record.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
