package cli

import (
	"context"
	"fmt"

	"github.com/fsdevblog/tagihan/internal/transport/backend/client"
	"github.com/spf13/cobra"
)

func newLoginCommand(opts *options) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:     "login <username>",
		Short:   "Print a token for TAGIHAN_TOKEN",
		Example: "  export TAGIHAN_TOKEN=$(tagihan login kasir --password secret)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			token, err := client.New(opts.api, "").Login(ctx, args[0], password)
			if err != nil {
				return err //nolint:wrapcheck
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
