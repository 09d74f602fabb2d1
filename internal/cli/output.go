package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fsdevblog/tagihan/internal/billing"
	"github.com/fsdevblog/tagihan/internal/domain"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd
}

func rupiah(a int64) string {
	return billing.FormatRupiah(domain.Amount(a))
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// rejection дополняет отказ расчетного ядра остатком долга в рупиях.
func rejection(action string, err error) error {
	var exceeds *domain.ExceedsOutstandingError
	var insufficient *domain.InsufficientPaymentError
	switch {
	case errors.As(err, &exceeds):
		return fmt.Errorf("%s rejected: %w (outstanding %s)", action, domain.ErrExceedsOutstanding,
			billing.FormatRupiah(exceeds.Outstanding))
	case errors.As(err, &insufficient):
		return fmt.Errorf("%s rejected: %w (outstanding %s)", action, domain.ErrInsufficientPayment,
			billing.FormatRupiah(insufficient.Outstanding))
	default:
		return fmt.Errorf("%s rejected: %w", action, err)
	}
}
