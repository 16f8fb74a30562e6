package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
)

// MockTransactionRepository is a mock implementation of the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

// Create provides a mock function
func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

// GetOwned provides a mock function
func (m *MockTransactionRepository) GetOwned(ctx context.Context, userID, id uint64) (*entity.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

// Update provides a mock function
func (m *MockTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

// DeleteOwned provides a mock function
func (m *MockTransactionRepository) DeleteOwned(ctx context.Context, userID, id uint64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// ListByUser provides a mock function
func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

// CountByCategory provides a mock function
func (m *MockTransactionRepository) CountByCategory(ctx context.Context, categoryID uint64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

// SumByType provides a mock function
func (m *MockTransactionRepository) SumByType(ctx context.Context, userID uint64, transactionType entity.TransactionType) (int64, error) {
	args := m.Called(ctx, userID, transactionType)
	return args.Get(0).(int64), args.Error(1)
}

// SumByCategoryAndType provides a mock function
func (m *MockTransactionRepository) SumByCategoryAndType(ctx context.Context, userID, categoryID uint64, transactionType entity.TransactionType) (int64, error) {
	args := m.Called(ctx, userID, categoryID, transactionType)
	return args.Get(0).(int64), args.Error(1)
}
