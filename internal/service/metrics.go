package service

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "tagihan"

// Исходы попытки записать платеж, значения лейбла outcome.
const (
	PaymentOutcomeAccepted    = "accepted"
	PaymentOutcomeNonPositive = "non_positive"
	PaymentOutcomeExceeds     = "exceeds_outstanding"
	PaymentOutcomeLineClosed  = "line_closed"
	PaymentOutcomeError       = "error"
)

type Metrics struct {
	payments    *prometheus.CounterVec
	paidAmount  prometheus.Counter
	transitions *prometheus.CounterVec
}

// NewMetrics создает и регистрирует бизнес-метрики в reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "payments_total",
			Help:      "Payment attempts by outcome.",
		}, []string{"outcome"}),
		paidAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "paid_amount_rupiah_total",
			Help:      "Sum of accepted payments in rupiah.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "line_transitions_total",
			Help:      "Line status transitions by target status and result.",
		}, []string{"status", "result"}),
	}

	for _, c := range []prometheus.Collector{m.payments, m.paidAmount, m.transitions} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) observePayment(amount domain.Amount, err error) {
	if m == nil {
		return
	}
	outcome := paymentOutcome(err)
	m.payments.WithLabelValues(outcome).Inc()
	if outcome == PaymentOutcomeAccepted {
		m.paidAmount.Add(float64(amount))
	}
}

func (m *Metrics) observeTransition(status domain.LineStatusType, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	m.transitions.WithLabelValues(string(status), result).Inc()
}

func paymentOutcome(err error) string {
	switch {
	case err == nil:
		return PaymentOutcomeAccepted
	case errors.Is(err, domain.ErrNonPositiveAmount):
		return PaymentOutcomeNonPositive
	case errors.Is(err, domain.ErrExceedsOutstanding):
		return PaymentOutcomeExceeds
	case errors.Is(err, domain.ErrLineClosed):
		return PaymentOutcomeLineClosed
	default:
		return PaymentOutcomeError
	}
}
