package persistence

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// CategoryRepository defines essential methods to interact with category data.
// Every lookup and mutation is scoped by the owning user id at the query
// level; there is deliberately no unscoped variant.
type CategoryRepository interface {
	// Create persists a new category and assigns its id
	//
	// Possible errors:
	// - ErrDuplicateCategory: if the owner already has a category with this name
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, category *entity.Category) error

	// GetOwned retrieves a category by id, scoped to the owner
	//
	// Possible errors:
	// - ErrCategoryNotFound: if the category is absent or owned by someone else
	// - ErrDatabaseConnection: if the database is unreachable
	GetOwned(ctx context.Context, userID, id uint64) (*entity.Category, error)

	// GetOwnedByName retrieves a category by its exact trimmed name, scoped to the owner
	//
	// Possible errors:
	// - ErrCategoryNotFound: if no such category exists for the owner
	// - ErrDatabaseConnection: if the database is unreachable
	GetOwnedByName(ctx context.Context, userID uint64, name string) (*entity.Category, error)

	// ListByUser returns all categories of the owner in insertion order
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Category, error)

	// DeleteOwned deletes a category by id, scoped to the owner
	//
	// Possible errors:
	// - ErrCategoryNotFound: if the category is absent or owned by someone else
	// - ErrDatabaseConnection: if the database is unreachable
	DeleteOwned(ctx context.Context, userID, id uint64) error
}
