package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/logger"
	persistencemocks "github.com/fintrack-app/fintrack/mocks/port/persistence"
)

type reportFixture struct {
	categories   *persistencemocks.MockCategoryRepository
	transactions *persistencemocks.MockTransactionRepository
	service      *Service
}

func newReportFixture() *reportFixture {
	categories := new(persistencemocks.MockCategoryRepository)
	transactions := new(persistencemocks.MockTransactionRepository)

	return &reportFixture{
		categories:   categories,
		transactions: transactions,
		service:      NewService(categories, transactions, logger.NewNoopLogger()),
	}
}

func TestService_Balance(t *testing.T) {
	ctx := context.Background()

	t.Run("should subtract expenses from income", func(t *testing.T) {
		f := newReportFixture()
		f.transactions.On("SumByType", ctx, uint64(1), entity.TypeIncome).Return(int64(150000), nil)
		f.transactions.On("SumByType", ctx, uint64(1), entity.TypeExpense).Return(int64(42050), nil)

		balance, err := f.service.Balance(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 1079.50, balance)
	})

	t.Run("should report zero for an empty ledger", func(t *testing.T) {
		f := newReportFixture()
		f.transactions.On("SumByType", ctx, uint64(1), entity.TypeIncome).Return(int64(0), nil)
		f.transactions.On("SumByType", ctx, uint64(1), entity.TypeExpense).Return(int64(0), nil)

		balance, err := f.service.Balance(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, balance)
	})

	t.Run("should allow a negative balance", func(t *testing.T) {
		f := newReportFixture()
		f.transactions.On("SumByType", ctx, uint64(1), entity.TypeIncome).Return(int64(1000), nil)
		f.transactions.On("SumByType", ctx, uint64(1), entity.TypeExpense).Return(int64(2500), nil)

		balance, err := f.service.Balance(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, -15.0, balance)
	})
}

func TestService_Overview(t *testing.T) {
	ctx := context.Background()

	t.Run("should resolve category names and format dates", func(t *testing.T) {
		// Arrange
		f := newReportFixture()
		foodID := uint64(3)
		f.transactions.On("SumByType", ctx, uint64(1), entity.TypeIncome).Return(int64(10000), nil)
		f.transactions.On("SumByType", ctx, uint64(1), entity.TypeExpense).Return(int64(2500), nil)
		f.transactions.On("ListByUser", ctx, uint64(1)).Return([]*entity.Transaction{
			{
				ID:          2,
				UserID:      1,
				AmountCents: 2500,
				Type:        entity.TypeExpense,
				CategoryID:  &foodID,
				Description: "groceries",
				Date:        time.Date(2024, 3, 15, 18, 45, 0, 0, time.UTC),
			},
			{
				ID:          1,
				UserID:      1,
				AmountCents: 10000,
				Type:        entity.TypeIncome,
				Description: "salary",
				Date:        time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			},
		}, nil)
		f.categories.On("ListByUser", ctx, uint64(1)).Return([]*entity.Category{
			{ID: 3, UserID: 1, Name: "Food"},
		}, nil)

		// Act
		overview, err := f.service.Overview(ctx, 1)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 75.0, overview.Balance)
		assert.Len(t, overview.Transactions, 2)
		assert.Equal(t, "2024-03-15 18:45", overview.Transactions[0].Date)
		assert.Equal(t, 25.0, overview.Transactions[0].Amount)
		if assert.NotNil(t, overview.Transactions[0].Category) {
			assert.Equal(t, "Food", *overview.Transactions[0].Category)
		}
		assert.Nil(t, overview.Transactions[1].Category)
		assert.Equal(t, []CategoryView{{ID: 3, Name: "Food"}}, overview.Categories)
	})

	t.Run("should return empty slices for a fresh user", func(t *testing.T) {
		f := newReportFixture()
		f.transactions.On("SumByType", ctx, uint64(1), entity.TypeIncome).Return(int64(0), nil)
		f.transactions.On("SumByType", ctx, uint64(1), entity.TypeExpense).Return(int64(0), nil)
		f.transactions.On("ListByUser", ctx, uint64(1)).Return([]*entity.Transaction{}, nil)
		f.categories.On("ListByUser", ctx, uint64(1)).Return([]*entity.Category{}, nil)

		overview, err := f.service.Overview(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, overview.Balance)
		assert.NotNil(t, overview.Transactions)
		assert.Empty(t, overview.Transactions)
		assert.NotNil(t, overview.Categories)
		assert.Empty(t, overview.Categories)
	})
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("should report totals per category including empty ones", func(t *testing.T) {
		f := newReportFixture()
		f.categories.On("ListByUser", ctx, uint64(1)).Return([]*entity.Category{
			{ID: 3, UserID: 1, Name: "Food"},
			{ID: 4, UserID: 1, Name: "Travel"},
		}, nil)
		f.transactions.On("SumByCategoryAndType", ctx, uint64(1), uint64(3), entity.TypeIncome).Return(int64(0), nil)
		f.transactions.On("SumByCategoryAndType", ctx, uint64(1), uint64(3), entity.TypeExpense).Return(int64(7550), nil)
		f.transactions.On("SumByCategoryAndType", ctx, uint64(1), uint64(4), entity.TypeIncome).Return(int64(0), nil)
		f.transactions.On("SumByCategoryAndType", ctx, uint64(1), uint64(4), entity.TypeExpense).Return(int64(0), nil)

		stats, err := f.service.Stats(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Food", "Travel"}, stats.Labels)
		assert.Equal(t, []float64{0, 0}, stats.Income)
		assert.Equal(t, []float64{75.50, 0}, stats.Expense)
	})

	t.Run("should return empty parallel slices when there are no categories", func(t *testing.T) {
		f := newReportFixture()
		f.categories.On("ListByUser", ctx, uint64(1)).Return([]*entity.Category{}, nil)

		stats, err := f.service.Stats(ctx, 1)

		assert.NoError(t, err)
		assert.Empty(t, stats.Labels)
		assert.Empty(t, stats.Income)
		assert.Empty(t, stats.Expense)
	})
}
