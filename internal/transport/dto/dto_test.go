package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/tagihan/internal/billing"
	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_RoundTrip(t *testing.T) {
	paidOn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	line := domain.BillableLine{
		ID:         1,
		CustomerID: 2,
		Category:   domain.CategoryOrder,
		Quantity:   2,
		UnitPrice:  50000,
		Subtotal:   100000,
		Status:     domain.LineStatusActive,
		Payments: []domain.Payment{
			{ID: 1, LineID: 1, Amount: 30000, PaidOn: paidOn},
			{ID: 2, LineID: 1, Amount: 20000, PaidOn: paidOn},
		},
	}

	wire := FromLine(line)
	assert.Equal(t, int64(50000), wire.AmountPaid)
	assert.Equal(t, int64(50000), wire.Outstanding)
	assert.False(t, wire.IsSettled)
	assert.Equal(t, "2025-06-01", wire.Payments[0].PaidOn)

	back := wire.ToDomain()
	assert.Equal(t, line, back)
}

func TestNewRejection(t *testing.T) {
	r := NewRejection(errors.New("payment exceeds outstanding balance"), 50000)
	require.NotNil(t, r.Outstanding)
	assert.Equal(t, int64(50000), *r.Outstanding)
	assert.Equal(t, "Rp 50.000", r.OutstandingFormatted)
}

func TestFromSummary(t *testing.T) {
	s := FromSummary(billing.Summary{
		Customers:        3,
		OpenLines:        2,
		TotalOutstanding: 1500000,
		ByCategory:       map[domain.CategoryType]billing.Amount{domain.CategoryDaily: 1500000},
	})
	assert.Equal(t, "Rp 1.500.000", s.TotalOutstandingFormatted)
	assert.Equal(t, map[string]int64{"daily": 1500000}, s.ByCategory)
}
