package service

import (
	"fmt"
	"testing"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	require.Error(t, err)
}

func TestPaymentOutcome(t *testing.T) {
	cases := map[string]error{
		PaymentOutcomeAccepted:    nil,
		PaymentOutcomeNonPositive: fmt.Errorf("wrap: %w", domain.ErrNonPositiveAmount),
		PaymentOutcomeExceeds:     domain.NewExceedsOutstandingError(10),
		PaymentOutcomeLineClosed:  domain.ErrLineClosed,
		PaymentOutcomeError:       domain.ErrUnknown,
	}
	for want, err := range cases {
		assert.Equal(t, want, paymentOutcome(err))
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observePayment(100, nil)
		m.observeTransition(domain.LineStatusCompleted, nil)
	})
}
