package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-statement mutations so they commit or roll
// back as one database transaction. Repositories obtained from the returned
// context are bound to that transaction.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// CategoryRepository returns a category repository bound to the current transaction
	CategoryRepository(ctx context.Context) CategoryRepository

	// TransactionRepository returns a transaction repository bound to the current transaction
	TransactionRepository(ctx context.Context) TransactionRepository
}
