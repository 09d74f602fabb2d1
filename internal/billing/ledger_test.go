package billing

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTotalPaid(t *testing.T) {
	assert.Equal(t, Amount(0), TotalPaid(nil))
	assert.Equal(t, Amount(0), TotalPaid([]domain.Payment{}))
	assert.Equal(t, Amount(50000), TotalPaid([]domain.Payment{{Amount: 30000}, {Amount: 20000}}))
}

func TestTotalPaid_OrderIndependent(t *testing.T) {
	f := gofakeit.New(42)

	for i := 0; i < 50; i++ {
		payments := make([]domain.Payment, f.IntRange(0, 20))
		for j := range payments {
			payments[j] = domain.Payment{ID: int64(j + 1), Amount: Amount(f.IntRange(1, 1_000_000))}
		}
		want := TotalPaid(payments)

		shuffled := make([]domain.Payment, len(payments))
		copy(shuffled, payments)
		f.ShuffleAnySlice(shuffled)

		assert.Equal(t, want, TotalPaid(shuffled))
	}
}

func TestTotalPaidRaw(t *testing.T) {
	payments := []map[string]any{
		{"amount": "30.000"},
		{"amount": float64(20000)},
		{"amount": nil},
		{"jumlah": 1000},
		{"amount": "abc"},
	}
	assert.Equal(t, Amount(50000), TotalPaidRaw(payments))
	assert.Equal(t, Amount(0), TotalPaidRaw(nil))
}
