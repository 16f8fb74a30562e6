package ledger

import (
	"github.com/fintrack-app/fintrack/internal/domain/entity"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/persistence"
)

// Service implements category and transaction management for a single user's
// ledger. Every operation is scoped by the calling user's ID; records owned
// by another user behave as if they do not exist.
type Service struct {
	uow            persistence.UnitOfWork
	categories     persistence.CategoryRepository
	transactions   persistence.TransactionRepository
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	maxAmountCents int64
}

func NewService(
	uow persistence.UnitOfWork,
	categories persistence.CategoryRepository,
	transactions persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	maxAmount float64,
) *Service {
	var maxAmountCents int64
	if maxAmount > 0 {
		if cents, err := entity.AmountToCents(maxAmount); err == nil {
			maxAmountCents = cents
		}
	}

	return &Service{
		uow:            uow,
		categories:     categories,
		transactions:   transactions,
		timeProvider:   timeProvider,
		logger:         logger,
		maxAmountCents: maxAmountCents,
	}
}
