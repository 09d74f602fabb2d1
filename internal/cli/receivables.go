package cli

import (
	"fmt"

	"github.com/fsdevblog/tagihan/internal/billing"
	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/spf13/cobra"
)

func newReceivablesCommand(opts *options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "receivables",
		Short: "Customers split into those who still owe and those who don't",
		Long: `Fetches every customer's lines with payments and computes the outstanding balances
locally. Customers whose lines could not be fetched are reported on stderr and skipped.`,
		Example: `  tagihan receivables
  tagihan receivables --category order --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := domain.CategoryType(category)
			if cat != "" && !cat.IsValid() {
				return fmt.Errorf("unknown category %q", category)
			}

			collection, err := opts.collector(cmd).Collect(cmd.Context())
			if err != nil {
				return fmt.Errorf("receivables: %w", err)
			}
			for id, failErr := range collection.Failed {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: customer %d skipped: %v\n", id, failErr)
			}

			customers := collection.Customers
			if cat != "" {
				customers = withCategory(customers, cat)
			}
			printReceivables(cmd, customers)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only lines of this category (daily|order)")
	return cmd
}

// withCategory оставляет у клиентов только открытые строки категории.
func withCategory(customers []domain.Customer, category domain.CategoryType) []domain.Customer {
	res := make([]domain.Customer, len(customers))
	for i, c := range customers {
		c.Lines = billing.FilterByCategory(c.Lines, category)
		res[i] = c
	}
	return res
}

func printReceivables(cmd *cobra.Command, customers []domain.Customer) {
	with, without := billing.PartitionByHasReceivables(customers)
	outstanding := billing.OutstandingByCustomer(customers)
	summary := billing.Summarize(customers)

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "With receivables (%d):\n", len(with))
	tw := newTable(out)
	_, _ = fmt.Fprintln(tw, "ID\tCUSTOMER\tOUTSTANDING")
	for _, c := range with {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, billing.FormatRupiah(outstanding[c.ID]))
	}
	_ = tw.Flush()

	_, _ = fmt.Fprintf(out, "\nWithout receivables (%d):\n", len(without))
	tw = newTable(out)
	_, _ = fmt.Fprintln(tw, "ID\tCUSTOMER")
	for _, c := range without {
		_, _ = fmt.Fprintf(tw, "%d\t%s\n", c.ID, c.Name)
	}
	_ = tw.Flush()

	_, _ = fmt.Fprintf(out, "\nTotal outstanding: %s in %d open lines\n",
		billing.FormatRupiah(summary.TotalOutstanding), summary.OpenLines)
}
