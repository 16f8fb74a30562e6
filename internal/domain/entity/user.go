package entity

import (
	"time"

	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// RoleUser is the default role assigned on registration.
const RoleUser = "user"

// User owns categories and transactions. The password hash is opaque to the
// core; hashing and verification live behind the PasswordHasher port.
type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// NewUser creates a user with the default role. Field validation (username
// and password length, email shape) happens in the auth use case before the
// password is hashed.
func NewUser(username, email, passwordHash string, timeProvider coreport.TimeProvider) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		CreatedAt:    timeProvider.Now().UTC(),
	}
}
