package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the TransactionRepository interface using
// GORM. Every query filters by user_id so a caller can only see its own rows.
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(transactionModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          transactionModel.ID,
		UserID:      transactionModel.UserID,
		AmountCents: transactionModel.AmountCents,
		Type:        entity.TransactionType(transactionModel.Type),
		CategoryID:  transactionModel.CategoryID,
		Description: transactionModel.Description,
		Date:        transactionModel.Date,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	// The only nullable reference a transaction carries is its category, so
	// a constraint violation means the category row is gone.
	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrCategoryNotFound
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create stores a new transaction and fills in its generated ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.Transaction{
		UserID:      transaction.UserID,
		AmountCents: transaction.AmountCents,
		Type:        string(transaction.Type),
		CategoryID:  transaction.CategoryID,
		Description: transaction.Description,
		Date:        transaction.Date,
	}

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error, transaction.UserID)
	}

	transaction.ID = transactionModel.ID

	r.logger.Debug("Transaction created", map[string]any{
		"user_id":        transaction.UserID,
		"transaction_id": transaction.ID,
	})
	return nil
}

// GetOwned retrieves a transaction by ID, scoped to the owning user
func (r *TransactionRepository) GetOwned(ctx context.Context, userID, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&transactionModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error, userID)
	}

	return r.modelToEntity(&transactionModel), nil
}

// Update persists the mutable fields of a transaction.
// The owner and the creation date never change.
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("user_id = ? AND id = ?", transaction.UserID, transaction.ID).
		Updates(map[string]any{
			"amount_cents": transaction.AmountCents,
			"type":         string(transaction.Type),
			"category_id":  transaction.CategoryID,
			"description":  transaction.Description,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating transaction", result.Error, transaction.UserID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	r.logger.Debug("Transaction updated", map[string]any{
		"user_id":        transaction.UserID,
		"transaction_id": transaction.ID,
	})
	return nil
}

// DeleteOwned removes a transaction, scoped to the owning user
func (r *TransactionRepository) DeleteOwned(ctx context.Context, userID, id uint64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Transaction{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting transaction", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	r.logger.Debug("Transaction deleted", map[string]any{
		"user_id":        userID,
		"transaction_id": id,
	})
	return nil
}

// ListByUser returns a user's transactions, most recent first. Rows sharing
// a date keep their insertion order.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions", result.Error, userID)
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}

	return transactions, nil
}

// CountByCategory counts the transactions referencing a category
func (r *TransactionRepository) CountByCategory(ctx context.Context, categoryID uint64) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting transactions", result.Error, 0)
	}

	return count, nil
}

// SumByType totals a user's transactions of one type, in cents
func (r *TransactionRepository) SumByType(ctx context.Context, userID uint64, transactionType entity.TransactionType) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount_cents), 0)").
		Where("user_id = ? AND type = ?", userID, string(transactionType)).
		Scan(&total)
	if result.Error != nil {
		return 0, r.handleDatabaseError("summing transactions by type", result.Error, userID)
	}

	return total, nil
}

// SumByCategoryAndType totals a user's transactions of one type within a
// category, in cents
func (r *TransactionRepository) SumByCategoryAndType(ctx context.Context, userID, categoryID uint64, transactionType entity.TransactionType) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount_cents), 0)").
		Where("user_id = ? AND category_id = ? AND type = ?", userID, categoryID, string(transactionType)).
		Scan(&total)
	if result.Error != nil {
		return 0, r.handleDatabaseError("summing transactions by category", result.Error, userID)
	}

	return total, nil
}
