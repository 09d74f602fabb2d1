package cli

import (
	"context"
	"fmt"

	"github.com/fsdevblog/tagihan/internal/billing"
	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/spf13/cobra"
)

func newCompleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <line-id>",
		Short: "Mark a fully paid line as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transition(cmd, opts, args[0], domain.LineStatusCompleted)
		},
	}
}

func newCancelCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <line-id>",
		Short: "Cancel a line (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transition(cmd, opts, args[0], domain.LineStatusCancelled)
		},
	}
}

// transition проверяет переход локально по свежему состоянию строки и только потом отправляет его.
func transition(cmd *cobra.Command, opts *options, arg string, target domain.LineStatusType) error {
	lineID, err := parseID(arg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	c := opts.client()
	line, err := c.GetLine(ctx, lineID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if _, guardErr := billing.Transition(line.ToDomain(), target); guardErr != nil {
		return rejection("status change", guardErr)
	}

	updated, err := c.TransitionStatus(ctx, lineID, target)
	if err != nil {
		return err //nolint:wrapcheck
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Line %d is now %s\n", updated.ID, updated.Status)
	return nil
}
