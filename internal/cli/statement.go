package cli

import (
	"context"
	"fmt"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/spf13/cobra"
)

func newStatementCommand(opts *options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "statement <customer-id>",
		Short:   "Open lines of a customer with what is still owed",
		Example: "  tagihan statement 12 --category daily",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerID, err := parseID(args[0])
			if err != nil {
				return err
			}
			cat := domain.CategoryType(category)
			if cat != "" && !cat.IsValid() {
				return fmt.Errorf("unknown category %q", category)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			st, err := opts.client().Statement(ctx, customerID, cat)
			if err != nil {
				return err //nolint:wrapcheck
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s (#%d)\n", st.Customer.Name, st.Customer.ID)
			tw := newTable(out)
			_, _ = fmt.Fprintln(tw, "LINE\tDESCRIPTION\tCATEGORY\tSUBTOTAL\tPAID\tOUTSTANDING")
			for _, l := range st.Lines {
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
					l.ID, l.Description, l.Category, rupiah(l.Subtotal), rupiah(l.AmountPaid), rupiah(l.Outstanding))
			}
			_ = tw.Flush()
			_, _ = fmt.Fprintf(out, "Total outstanding: %s\n", st.TotalFormatted)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only lines of this category (daily|order)")
	return cmd
}
