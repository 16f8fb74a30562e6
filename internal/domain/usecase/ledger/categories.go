package ledger

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
)

// CreateCategory adds a named bucket to the user's ledger. Names are unique
// per user, compared case-sensitively after trimming.
func (s *Service) CreateCategory(ctx context.Context, userID uint64, name string) (*entity.Category, error) {
	category, err := entity.NewCategory(userID, name)
	if err != nil {
		return nil, err
	}

	if _, err := s.categories.GetOwnedByName(ctx, userID, category.Name); err == nil {
		return nil, errs.ErrDuplicateCategory
	} else if !errs.IsNotFoundError(err) {
		return nil, err
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Category created", map[string]any{
		"user_id":     userID,
		"category_id": category.ID,
		"name":        category.Name,
	})

	return category, nil
}

// DeleteCategory removes a category the user owns. The existence check, the
// referential guard and the delete run inside one database transaction so a
// concurrent insert cannot slip a referencing transaction past the guard.
func (s *Service) DeleteCategory(ctx context.Context, userID, categoryID uint64) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.uow.Rollback(txCtx)
	}()

	categories := s.uow.CategoryRepository(txCtx)
	transactions := s.uow.TransactionRepository(txCtx)

	if _, err := categories.GetOwned(txCtx, userID, categoryID); err != nil {
		return err
	}

	count, err := transactions.CountByCategory(txCtx, categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.ErrCategoryInUse
	}

	if err := categories.DeleteOwned(txCtx, userID, categoryID); err != nil {
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Category deleted", map[string]any{
		"user_id":     userID,
		"category_id": categoryID,
	})

	return nil
}
