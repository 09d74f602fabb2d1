package billing

import (
	"testing"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	t.Run("outstanding left", func(t *testing.T) {
		_, err := Complete(halfPaidLine())
		require.ErrorIs(t, err, domain.ErrInsufficientPayment)

		var insufficient *domain.InsufficientPaymentError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, Amount(50000), insufficient.Outstanding)
	})

	t.Run("fully paid becomes terminal", func(t *testing.T) {
		line := halfPaidLine()
		line.Payments = append(line.Payments, domain.Payment{Amount: 50000})

		done, err := Complete(line)
		require.NoError(t, err)
		assert.Equal(t, domain.LineStatusCompleted, done.Status)
		assert.Equal(t, domain.LineStatusActive, line.Status)

		_, err = Complete(done)
		require.ErrorIs(t, err, domain.ErrLineClosed)
		_, err = Cancel(done)
		require.ErrorIs(t, err, domain.ErrLineClosed)
		_, err = RecordPayment(done, 1, line.CreatedAt)
		require.ErrorIs(t, err, domain.ErrLineClosed)
	})

	t.Run("overpaid", func(t *testing.T) {
		line := domain.BillableLine{Subtotal: 10, Status: domain.LineStatusActive, Payments: []domain.Payment{{Amount: 20}}}
		done, err := Complete(line)
		require.NoError(t, err)
		assert.Equal(t, domain.LineStatusCompleted, done.Status)
	})
}

func TestCancel(t *testing.T) {
	cancelled, err := Cancel(halfPaidLine())
	require.NoError(t, err)
	assert.Equal(t, domain.LineStatusCancelled, cancelled.Status)

	_, err = Cancel(cancelled)
	require.ErrorIs(t, err, domain.ErrLineClosed)
	_, err = Complete(cancelled)
	require.ErrorIs(t, err, domain.ErrLineClosed)
}

func TestTransition(t *testing.T) {
	cases := []struct {
		name       string
		target     domain.LineStatusType
		wantStatus domain.LineStatusType
		wantErr    error
	}{
		{name: "cancel", target: domain.LineStatusCancelled, wantStatus: domain.LineStatusCancelled},
		{name: "complete unpaid", target: domain.LineStatusCompleted, wantErr: domain.ErrInsufficientPayment},
		{name: "back to active", target: domain.LineStatusActive, wantErr: domain.ErrInvalidTransition},
		{name: "unknown", target: "ARCHIVED", wantErr: domain.ErrInvalidTransition},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(halfPaidLine(), tt.target)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}
