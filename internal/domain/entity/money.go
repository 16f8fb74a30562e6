package entity

import (
	"math"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
)

// Amounts are stored in cents to avoid floating point drift in aggregation.
// The API boundary carries plain JSON numbers; conversion happens here.

const centsPerUnit = 100

// maxSafeCents is the largest cents value that survives the float64 round trip.
const maxSafeCents = float64(math.MaxInt64 / 2)

// AmountToCents validates an amount and converts it to cents.
// The amount must be a finite, strictly positive number that does not
// overflow the cents representation. Sub-cent fractions are rounded to
// the nearest cent; an amount that rounds to zero is rejected.
func AmountToCents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errs.ErrInvalidAmount
	}
	if amount <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	cents := math.Round(amount * centsPerUnit)
	if cents > maxSafeCents {
		return 0, errs.ErrAmountOverflow
	}
	if int64(cents) <= 0 {
		return 0, errs.ErrInvalidAmount
	}

	return int64(cents), nil
}

// CentsToAmount converts a cents value back to a decimal amount.
func CentsToAmount(cents int64) float64 {
	return float64(cents) / centsPerUnit
}
