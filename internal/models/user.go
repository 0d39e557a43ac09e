package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account profile.
//
// ListPassword is a plain shared secret gating visibility of the user's
// item list when Privacy is set. It is deliberately not hashed: it protects
// list visibility between users, never account access, and other users must
// be able to be told whether the value they typed matches. This is a known
// weakness carried over from the original product behavior.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Email is the user's email address (unique, case-sensitive as stored).
	// Items reference their owner by this value.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never exposed over the API.
	PasswordHash string `json:"-"`

	// Privacy gates whether other users may view this user's item list
	// without supplying the list password. Defaults to false.
	Privacy bool `json:"privacy"`

	// ListPassword is the plaintext shared secret for viewing this user's
	// list while Privacy is enabled. Empty means no password has been set.
	// Never exposed over the API.
	ListPassword string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last profile update.
	UpdatedAt int64 `json:"updatedAt"`
}

// NewUser creates a user profile with a fresh ID and timestamps.
// Privacy starts disabled and no list password is set.
func NewUser(email, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Privacy:      false,
		ListPassword: "",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
