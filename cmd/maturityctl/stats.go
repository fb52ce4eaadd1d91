package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/godilite/maturity-server/internal/service"
)

var statsTable bool

var statsCmd = &cobra.Command{
	Use:   "stats <company>",
	Short: "Print the aggregated metric list for a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		reports, closeFn, err := openReports(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		company := args[0]
		metrics, err := reports.ComputeStatsByCompany(ctx, company)
		if err != nil {
			return err
		}
		if len(metrics) == 0 {
			return fmt.Errorf("%w: %q", service.ErrNoSurveys, company)
		}

		if !statsTable {
			return printJSON(cmd.OutOrStdout(), metrics)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tVALUE")
		for _, m := range metrics {
			fmt.Fprintf(tw, "%s\t%g\n", m.Key, m.Value)
		}
		return tw.Flush()
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsTable, "table", false, "print an aligned key/value table instead of JSON")
	rootCmd.AddCommand(statsCmd)
}
