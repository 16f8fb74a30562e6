package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// MockCategoryRepository is a mock implementation of the CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

// Create provides a mock function
func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// GetOwned provides a mock function
func (m *MockCategoryRepository) GetOwned(ctx context.Context, userID, id uint64) (*entity.Category, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

// GetOwnedByName provides a mock function
func (m *MockCategoryRepository) GetOwnedByName(ctx context.Context, userID uint64, name string) (*entity.Category, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

// ListByUser provides a mock function
func (m *MockCategoryRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

// DeleteOwned provides a mock function
func (m *MockCategoryRepository) DeleteOwned(ctx context.Context, userID, id uint64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
