package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/tagihan/internal/billing"
	"github.com/fsdevblog/tagihan/internal/transport/dto"
	"github.com/spf13/cobra"
)

func newPayCommand(opts *options) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "pay <line-id> <amount>",
		Short: "Record a payment against a line",
		Long: `Records a payment. The amount may use thousands separators ("50.000").
The payment is checked locally against the line's outstanding balance before it is sent;
the server repeats the check under a row lock.`,
		Example: `  tagihan pay 42 50.000
  tagihan pay 42 125000 --date 2025-06-01`,
		Args: cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			lineID, err := parseID(args[0])
			if err != nil {
				return err
			}
			amount := args[1]

			paidOn := time.Now().UTC().Truncate(24 * time.Hour)
			if date != "" {
				paidOn, err = time.Parse(dto.DateLayout, date)
				if err != nil {
					return fmt.Errorf("invalid date format. Use YYYY-MM-DD: %w", err)
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			c := opts.client()
			line, err := c.GetLine(ctx, lineID)
			if err != nil {
				return err //nolint:wrapcheck
			}

			if _, checkErr := billing.RecordPayment(line.ToDomain(), amount, paidOn); checkErr != nil {
				return rejection("payment", checkErr)
			}

			res, err := c.SubmitPayment(ctx, lineID, amount, paidOn)
			if err != nil {
				return err //nolint:wrapcheck
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for line %d on %s. Outstanding: %s\n",
				rupiah(res.Payment.Amount), lineID, res.Payment.PaidOn, rupiah(res.Line.Outstanding))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "payment date YYYY-MM-DD (default: today)")
	return cmd
}
