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

// CategoryRepository implements the CategoryRepository interface using GORM.
// Every query filters by user_id so a caller can only see its own rows.
type CategoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a category model to an entity
func (r *CategoryRepository) modelToEntity(categoryModel *model.Category) *entity.Category {
	return &entity.Category{
		ID:     categoryModel.ID,
		Name:   categoryModel.Name,
		UserID: categoryModel.UserID,
	}
}

// handleDatabaseError standardizes database error handling
func (r *CategoryRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrCategoryNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateCategory
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create stores a new category and fills in its generated ID
func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.Category{
		Name:   category.Name,
		UserID: category.UserID,
	}

	result := r.db.WithContext(ctx).Create(&categoryModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating category", result.Error, category.UserID)
	}

	category.ID = categoryModel.ID

	r.logger.Debug("Category created", map[string]any{
		"user_id":     category.UserID,
		"category_id": category.ID,
	})
	return nil
}

// GetOwned retrieves a category by ID, scoped to the owning user
func (r *CategoryRepository) GetOwned(ctx context.Context, userID, id uint64) (*entity.Category, error) {
	var categoryModel model.Category
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&categoryModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting category", result.Error, userID)
	}

	return r.modelToEntity(&categoryModel), nil
}

// GetOwnedByName retrieves a category by its exact name, scoped to the owning user
func (r *CategoryRepository) GetOwnedByName(ctx context.Context, userID uint64, name string) (*entity.Category, error) {
	var categoryModel model.Category
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&categoryModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting category by name", result.Error, userID)
	}

	return r.modelToEntity(&categoryModel), nil
}

// ListByUser returns all of a user's categories ordered by creation
func (r *CategoryRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Category, error) {
	var categoryModels []model.Category
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing categories", result.Error, userID)
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, r.modelToEntity(&categoryModels[i]))
	}

	return categories, nil
}

// DeleteOwned removes a category, scoped to the owning user.
// Deleting a category that does not exist (or belongs to someone else)
// reports not found.
func (r *CategoryRepository) DeleteOwned(ctx context.Context, userID, id uint64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.Category{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting category", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCategoryNotFound
	}

	r.logger.Debug("Category deleted", map[string]any{
		"user_id":     userID,
		"category_id": id,
	})
	return nil
}
