package persistence

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// Create persists a new user and assigns its id
	//
	// Possible errors:
	// - ErrDuplicateEmail / ErrDuplicateUsername: if a unique constraint fires
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by id
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given id exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by email, used for login
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given email exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByUsername retrieves a user by username, used for registration checks
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given username exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
