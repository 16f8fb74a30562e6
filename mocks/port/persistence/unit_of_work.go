package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	port "github.com/fintrack-app/fintrack/internal/domain/port/persistence"
)

// MockUnitOfWork is a mock implementation of the UnitOfWork interface
type MockUnitOfWork struct {
	mock.Mock
}

// Begin provides a mock function
func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

// Commit provides a mock function
func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Rollback provides a mock function
func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// CategoryRepository provides a mock function
func (m *MockUnitOfWork) CategoryRepository(ctx context.Context) port.CategoryRepository {
	args := m.Called(ctx)
	return args.Get(0).(port.CategoryRepository)
}

// TransactionRepository provides a mock function
func (m *MockUnitOfWork) TransactionRepository(ctx context.Context) port.TransactionRepository {
	args := m.Called(ctx)
	return args.Get(0).(port.TransactionRepository)
}
