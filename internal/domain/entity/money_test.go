package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/fintrack-app/fintrack/internal/domain/error"
)

func TestAmountToCents(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		want    int64
		wantErr error
	}{
		{"whole amount", 100, 10000, nil},
		{"two decimal places", 10.15, 1015, nil},
		{"one decimal place", 10.1, 1010, nil},
		{"sub-cent rounds to nearest", 10.156, 1016, nil},
		{"smallest valid amount", 0.01, 1, nil},
		{"zero rejected", 0, 0, errs.ErrInvalidAmount},
		{"negative rejected", -50, 0, errs.ErrInvalidAmount},
		{"rounds to zero rejected", 0.001, 0, errs.ErrInvalidAmount},
		{"NaN rejected", math.NaN(), 0, errs.ErrInvalidAmount},
		{"positive infinity rejected", math.Inf(1), 0, errs.ErrInvalidAmount},
		{"extreme magnitude rejected", 1e20, 0, errs.ErrAmountOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AmountToCents(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCentsToAmount(t *testing.T) {
	assert.Equal(t, 10.15, CentsToAmount(1015))
	assert.Equal(t, 100.0, CentsToAmount(10000))
	assert.Equal(t, 0.0, CentsToAmount(0))
	assert.Equal(t, -10.5, CentsToAmount(-1050))
}
