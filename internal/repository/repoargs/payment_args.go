package repoargs

import (
	"time"

	"github.com/fsdevblog/tagihan/internal/domain"
)

type PaymentCreate struct {
	LineID     int64
	Amount     domain.Amount
	PaidOn     time.Time
	RecordedBy int64
}
