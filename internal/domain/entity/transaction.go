package entity

import (
	"time"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// TransactionType says whether a transaction adds to or subtracts from the balance
type TransactionType string

// Transaction types
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType validates a raw type string.
func ParseTransactionType(raw string) (TransactionType, error) {
	switch TransactionType(raw) {
	case TypeIncome, TypeExpense:
		return TransactionType(raw), nil
	default:
		return "", errs.ErrInvalidTransactionType
	}
}

// Transaction is one income or expense record in a user's ledger.
// The amount is always a positive magnitude; the sign is carried by Type.
type Transaction struct {
	ID          uint64          // Unique identifier
	UserID      uint64          // Owning user
	AmountCents int64           // Positive magnitude in cents
	Type        TransactionType // income or expense
	CategoryID  *uint64         // Optional category, same owner
	Description string          // Optional free text
	Date        time.Time       // Creation time, UTC, never updated
}

// NewTransaction creates a transaction with a validated amount and type.
// Category ownership is checked by the ledger use case against the store.
func NewTransaction(
	userID uint64,
	amount float64,
	transactionType string,
	categoryID *uint64,
	description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	cents, err := AmountToCents(amount)
	if err != nil {
		return nil, err
	}

	parsedType, err := ParseTransactionType(transactionType)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		UserID:      userID,
		AmountCents: cents,
		Type:        parsedType,
		CategoryID:  categoryID,
		Description: description,
		Date:        timeProvider.Now().UTC(),
	}, nil
}

// Amount returns the magnitude as a decimal number.
func (t *Transaction) Amount() float64 {
	return CentsToAmount(t.AmountCents)
}

// SignedCents returns the balance contribution: positive for income,
// negative for expense.
func (t *Transaction) SignedCents() int64 {
	if t.Type == TypeExpense {
		return -t.AmountCents
	}
	return t.AmountCents
}
