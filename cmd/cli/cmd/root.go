// Package cmd provides the CLI commands for cpq-quote.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpq-quote",
		Short: "Packaging quote calculator",
		Long: `cpq-quote prices corrugated packaging orders.

It computes the standard, urgent and strategic tariffs for a unit price,
quantity and delivery lead time, with optional per-variant overrides.

Examples:
  cpq-quote tariffs --unit-price 42.5 --qty 500 --delivery-days 10
  cpq-quote tariffs --unit-price 42.5 --qty 500 --delivery-days 10 --price urgent=30000 --days strategic=20
  cpq-quote tariffs --unit-price 42.5 --qty 500 --format json`,
		SilenceUsage: true,
	}

	root.AddCommand(newTariffsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cpq-quote version %s\n", version)
		},
	}
}
