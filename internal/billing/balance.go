package billing

import (
	"time"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/shopspring/decimal"
)

// Balance производные суммы одной строки. Всегда выполняется Outstanding + AmountPaid == Subtotal.
type Balance struct {
	Subtotal    Amount
	AmountPaid  Amount
	Outstanding Amount
	IsSettled   bool
}

func Calculate(line domain.BillableLine) Balance {
	paid := TotalPaid(line.Payments)
	outstanding := line.Subtotal - paid
	return Balance{
		Subtotal:    line.Subtotal,
		AmountPaid:  paid,
		Outstanding: outstanding,
		IsSettled:   outstanding <= 0,
	}
}

// RecordPayment проверяет предлагаемый платеж против текущего состояния строки и возвращает
// несохраненный domain.Payment. Сама строка не меняется, сохранение остается за вызывающим.
//
// Ошибки:
//   - domain.ErrNonPositiveAmount если сумма <= 0
//   - domain.ErrLineClosed если строка уже завершена или отменена
//   - *domain.ExceedsOutstandingError если сумма больше остатка
func RecordPayment(line domain.BillableLine, proposed any, paidOn time.Time) (domain.Payment, error) {
	amount := ParseSigned(proposed)
	if amount <= 0 {
		return domain.Payment{}, domain.ErrNonPositiveAmount
	}
	if line.Status != domain.LineStatusActive {
		return domain.Payment{}, domain.ErrLineClosed
	}

	balance := Calculate(line)
	if amount > balance.Outstanding {
		return domain.Payment{}, domain.NewExceedsOutstandingError(balance.Outstanding)
	}

	return domain.Payment{
		LineID: line.ID,
		Amount: amount,
		PaidOn: paidOn,
	}, nil
}

// LineSubtotal qty * unitPrice - discount, не меньше нуля. Считается в decimal: если результат не
// помещается в Amount, возвращается domain.ErrAmountOutOfRange.
func LineSubtotal(qty int64, unitPrice, discount Amount) (Amount, error) {
	if qty <= 0 || unitPrice <= 0 {
		return 0, nil
	}
	subtotal := decimal.NewFromInt(qty).
		Mul(decimal.NewFromInt(int64(unitPrice))).
		Sub(decimal.NewFromInt(int64(discount)))
	if subtotal.GreaterThan(maxAmountDec) {
		return 0, domain.ErrAmountOutOfRange
	}
	if subtotal.IsNegative() {
		return 0, nil
	}
	return Amount(subtotal.IntPart()), nil
}
