package ledger

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
)

// TransactionPatch carries a partial update. Nil fields keep the stored
// value; the creation date is never touched.
type TransactionPatch struct {
	Amount      *float64
	Type        *string
	CategoryID  *uint64
	Description *string
}

// CreateTransaction records an income or expense. When a category is given
// it must exist and belong to the same user, checked in the same database
// transaction as the insert.
func (s *Service) CreateTransaction(
	ctx context.Context,
	userID uint64,
	amount float64,
	transactionType string,
	categoryID *uint64,
	description string,
) (*entity.Transaction, error) {
	transaction, err := entity.NewTransaction(userID, amount, transactionType, categoryID, description, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.checkMaxAmount(transaction.AmountCents); err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = s.uow.Rollback(txCtx)
	}()

	if categoryID != nil {
		if _, err := s.uow.CategoryRepository(txCtx).GetOwned(txCtx, userID, *categoryID); err != nil {
			return nil, err
		}
	}

	if err := s.uow.TransactionRepository(txCtx).Create(txCtx, transaction); err != nil {
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"user_id":        userID,
		"transaction_id": transaction.ID,
		"type":           string(transaction.Type),
		"amount_cents":   transaction.AmountCents,
	})

	return transaction, nil
}

// UpdateTransaction applies a partial update to a transaction the user owns.
// Each provided field is validated the same way as on creation.
func (s *Service) UpdateTransaction(
	ctx context.Context,
	userID, transactionID uint64,
	patch TransactionPatch,
) (*entity.Transaction, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = s.uow.Rollback(txCtx)
	}()

	transactions := s.uow.TransactionRepository(txCtx)

	transaction, err := transactions.GetOwned(txCtx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if patch.Amount != nil {
		cents, err := entity.AmountToCents(*patch.Amount)
		if err != nil {
			return nil, err
		}
		if err := s.checkMaxAmount(cents); err != nil {
			return nil, err
		}
		transaction.AmountCents = cents
	}

	if patch.Type != nil {
		parsedType, err := entity.ParseTransactionType(*patch.Type)
		if err != nil {
			return nil, err
		}
		transaction.Type = parsedType
	}

	if patch.CategoryID != nil {
		if _, err := s.uow.CategoryRepository(txCtx).GetOwned(txCtx, userID, *patch.CategoryID); err != nil {
			return nil, err
		}
		transaction.CategoryID = patch.CategoryID
	}

	if patch.Description != nil {
		transaction.Description = *patch.Description
	}

	if err := transactions.Update(txCtx, transaction); err != nil {
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"user_id":        userID,
		"transaction_id": transactionID,
	})

	return transaction, nil
}

// DeleteTransaction removes a transaction the user owns.
func (s *Service) DeleteTransaction(ctx context.Context, userID, transactionID uint64) error {
	if err := s.transactions.DeleteOwned(ctx, userID, transactionID); err != nil {
		return err
	}

	s.logger.Info("Transaction deleted", map[string]any{
		"user_id":        userID,
		"transaction_id": transactionID,
	})

	return nil
}

func (s *Service) checkMaxAmount(cents int64) error {
	if s.maxAmountCents > 0 && cents > s.maxAmountCents {
		return errs.ErrAmountTooLarge
	}
	return nil
}
