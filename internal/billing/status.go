package billing

import (
	"github.com/fsdevblog/tagihan/internal/domain"
)

// Complete переводит активную строку в COMPLETED. Строку с положительным остатком завершить нельзя.
func Complete(line domain.BillableLine) (domain.BillableLine, error) {
	if line.Status != domain.LineStatusActive {
		return line, domain.ErrLineClosed
	}
	if b := Calculate(line); b.Outstanding > 0 {
		return line, domain.NewInsufficientPaymentError(b.Outstanding)
	}
	line.Status = domain.LineStatusCompleted
	return line, nil
}

// Cancel переводит активную строку в CANCELLED без каких-либо условий по остатку.
func Cancel(line domain.BillableLine) (domain.BillableLine, error) {
	if line.Status != domain.LineStatusActive {
		return line, domain.ErrLineClosed
	}
	line.Status = domain.LineStatusCancelled
	return line, nil
}

func Transition(line domain.BillableLine, target domain.LineStatusType) (domain.BillableLine, error) {
	switch target {
	case domain.LineStatusCompleted:
		return Complete(line)
	case domain.LineStatusCancelled:
		return Cancel(line)
	default:
		return line, domain.ErrInvalidTransition
	}
}
