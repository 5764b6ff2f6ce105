package model

import "time"

// Roles stored as a custom claim on the identity-provider record.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User mirrors the identity-provider record. It is never persisted in
// Firestore; Firebase Auth owns the account lifecycle.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
