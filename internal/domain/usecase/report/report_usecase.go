package report

import (
	"context"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/persistence"
)

// dateLayout is the display format for transaction dates.
const dateLayout = "2006-01-02 15:04"

// TransactionView is a transaction prepared for display: decimal amount,
// resolved category name, formatted date.
type TransactionView struct {
	ID          uint64  `json:"id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    *string `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// CategoryView is a category prepared for display.
type CategoryView struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Overview is the dashboard payload: the running balance plus the user's
// transactions (most recent first) and categories.
type Overview struct {
	Balance      float64           `json:"balance"`
	Transactions []TransactionView `json:"transactions"`
	Categories   []CategoryView    `json:"categories"`
}

// CategoryStats holds per-category totals as three parallel slices, one
// entry per category in creation order.
type CategoryStats struct {
	Labels  []string  `json:"labels"`
	Income  []float64 `json:"income"`
	Expense []float64 `json:"expense"`
}

// Service derives balances and per-category aggregates from the ledger.
// It only reads; all aggregation is computed per request.
type Service struct {
	categories   persistence.CategoryRepository
	transactions persistence.TransactionRepository
	logger       coreport.Logger
}

func NewService(
	categories persistence.CategoryRepository,
	transactions persistence.TransactionRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		categories:   categories,
		transactions: transactions,
		logger:       logger,
	}
}

// Balance returns total income minus total expense across the user's
// entire history. A user with no transactions has a balance of zero.
func (s *Service) Balance(ctx context.Context, userID uint64) (float64, error) {
	income, err := s.transactions.SumByType(ctx, userID, entity.TypeIncome)
	if err != nil {
		return 0, err
	}

	expense, err := s.transactions.SumByType(ctx, userID, entity.TypeExpense)
	if err != nil {
		return 0, err
	}

	return entity.CentsToAmount(income - expense), nil
}

// Overview assembles the dashboard: balance, transactions with resolved
// category names, and the category list.
func (s *Service) Overview(ctx context.Context, userID uint64) (*Overview, error) {
	balance, err := s.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	namesByID := make(map[uint64]string, len(categories))
	categoryViews := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		namesByID[category.ID] = category.Name
		categoryViews = append(categoryViews, CategoryView{ID: category.ID, Name: category.Name})
	}

	transactionViews := make([]TransactionView, 0, len(transactions))
	for _, transaction := range transactions {
		view := TransactionView{
			ID:          transaction.ID,
			Amount:      transaction.Amount(),
			Type:        string(transaction.Type),
			Description: transaction.Description,
			Date:        transaction.Date.Format(dateLayout),
		}
		if transaction.CategoryID != nil {
			if name, ok := namesByID[*transaction.CategoryID]; ok {
				view.Category = &name
			}
		}
		transactionViews = append(transactionViews, view)
	}

	return &Overview{
		Balance:      balance,
		Transactions: transactionViews,
		Categories:   categoryViews,
	}, nil
}

// Stats returns income and expense totals per category. Every category
// appears, including ones with no transactions; uncategorized transactions
// are not represented.
func (s *Service) Stats(ctx context.Context, userID uint64) (*CategoryStats, error) {
	categories, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &CategoryStats{
		Labels:  make([]string, 0, len(categories)),
		Income:  make([]float64, 0, len(categories)),
		Expense: make([]float64, 0, len(categories)),
	}

	for _, category := range categories {
		income, err := s.transactions.SumByCategoryAndType(ctx, userID, category.ID, entity.TypeIncome)
		if err != nil {
			return nil, err
		}

		expense, err := s.transactions.SumByCategoryAndType(ctx, userID, category.ID, entity.TypeExpense)
		if err != nil {
			return nil, err
		}

		stats.Labels = append(stats.Labels, category.Name)
		stats.Income = append(stats.Income, entity.CentsToAmount(income))
		stats.Expense = append(stats.Expense, entity.CentsToAmount(expense))
	}

	return stats, nil
}
