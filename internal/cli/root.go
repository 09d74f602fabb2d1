// Package cli консольный клиент tagihan: сверка дебиторки и прием платежей через API сервера.
package cli

import (
	"fmt"
	"time"

	"github.com/fsdevblog/tagihan/internal/config"
	"github.com/fsdevblog/tagihan/internal/logger"
	"github.com/fsdevblog/tagihan/internal/transport/backend"
	"github.com/fsdevblog/tagihan/internal/transport/backend/client"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const requestTimeout = 15 * time.Second

type options struct {
	api     string
	token   string
	workers int
	verbose bool
}

// NewRootCommand собирает дерево команд. Значения флагов перекрывают TAGIHAN_* из окружения.
func NewRootCommand() *cobra.Command {
	opts := new(options)

	root := &cobra.Command{
		Use:           "tagihan",
		Short:         "Receivables and payments of a tailoring shop",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.api, "api", config.DefaultAPIAddress, "API base address (TAGIHAN_API)")
	root.PersistentFlags().StringVar(&opts.token, "token", "", "JWT token (TAGIHAN_TOKEN)")
	root.PersistentFlags().IntVar(&opts.workers, "workers", config.DefaultWorkers, "parallel requests (TAGIHAN_WORKERS)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		newLoginCommand(opts),
		newReceivablesCommand(opts),
		newStatementCommand(opts),
		newPayCommand(opts),
		newCompleteCommand(opts),
		newCancelCommand(opts),
	)
	return root
}

func (o *options) load(cmd *cobra.Command) error {
	conf, err := config.LoadClientConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cmd.Flags().Changed("api") {
		o.api = conf.APIAddress
	}
	if !cmd.Flags().Changed("token") {
		o.token = conf.Token
	}
	if !cmd.Flags().Changed("workers") {
		o.workers = conf.Workers
	}
	if o.workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", o.workers)
	}
	return nil
}

func (o *options) client() client.HTTPClient {
	return client.New(o.api, o.token)
}

func (o *options) collector(cmd *cobra.Command) *backend.Collector {
	l := logger.New(cmd.ErrOrStderr())
	if !o.verbose {
		l.SetLevel(logrus.WarnLevel)
	}
	return backend.NewCollector(o.client(), l).SetWorkers(uint(o.workers)) //nolint:gosec
}
