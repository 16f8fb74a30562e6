package persistence

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with transaction
// data. As with categories, every operation is scoped by the owning user id.
type TransactionRepository interface {
	// Create persists a new transaction and assigns its id
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetOwned retrieves a transaction by id, scoped to the owner
	//
	// Possible errors:
	// - ErrTransactionNotFound: if absent or owned by someone else
	// - ErrDatabaseConnection: if the database is unreachable
	GetOwned(ctx context.Context, userID, id uint64) (*entity.Transaction, error)

	// Update persists changed fields of an owned transaction.
	// The creation date is never written.
	//
	// Possible errors:
	// - ErrTransactionNotFound: if absent or owned by someone else
	// - ErrDatabaseConnection: if the database is unreachable
	Update(ctx context.Context, transaction *entity.Transaction) error

	// DeleteOwned deletes a transaction by id, scoped to the owner
	//
	// Possible errors:
	// - ErrTransactionNotFound: if absent or owned by someone else
	// - ErrDatabaseConnection: if the database is unreachable
	DeleteOwned(ctx context.Context, userID, id uint64) error

	// ListByUser returns the owner's transactions, most recent first,
	// ties broken by insertion order
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// CountByCategory counts transactions referencing a category,
	// used by the category deletion guard
	CountByCategory(ctx context.Context, categoryID uint64) (int64, error)

	// SumByType sums amounts in cents for one transaction type of one owner
	SumByType(ctx context.Context, userID uint64, transactionType entity.TransactionType) (int64, error)

	// SumByCategoryAndType sums amounts in cents for one category and type of one owner
	SumByCategoryAndType(ctx context.Context, userID, categoryID uint64, transactionType entity.TransactionType) (int64, error)
}
