package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
	ErrForbidden         = errors.New("forbidden")
)

// Отказы расчетного ядра. Ни один не фатален, вызывающий показывает их пользователю.
var (
	ErrNonPositiveAmount   = errors.New("payment amount must be positive")
	ErrExceedsOutstanding  = errors.New("payment exceeds outstanding balance")
	ErrInsufficientPayment = errors.New("line is not fully paid")
	ErrLineClosed          = errors.New("line is already completed or cancelled")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrAmountOutOfRange    = errors.New("amount is out of range")
)

// ExceedsOutstandingError несет остаток долга, с которым сравнивался отклоненный платеж.
type ExceedsOutstandingError struct {
	Outstanding Amount
}

func NewExceedsOutstandingError(outstanding Amount) error {
	return &ExceedsOutstandingError{Outstanding: outstanding}
}

func (e *ExceedsOutstandingError) Error() string {
	return fmt.Sprintf("%s: outstanding %d", ErrExceedsOutstanding.Error(), e.Outstanding)
}

func (e *ExceedsOutstandingError) Is(target error) bool {
	return target == ErrExceedsOutstanding
}

// InsufficientPaymentError возвращается при попытке завершить строку с непогашенным остатком.
type InsufficientPaymentError struct {
	Outstanding Amount
}

func NewInsufficientPaymentError(outstanding Amount) error {
	return &InsufficientPaymentError{Outstanding: outstanding}
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("%s: outstanding %d", ErrInsufficientPayment.Error(), e.Outstanding)
}

func (e *InsufficientPaymentError) Is(target error) bool {
	return target == ErrInsufficientPayment
}
