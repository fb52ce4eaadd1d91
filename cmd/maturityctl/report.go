package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <company>",
	Short: "Print metrics, maturity score and ROI projection for a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		reports, closeFn, err := openReports(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		report, err := reports.GetCompanyReport(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), report)
	},
}

func init() { rootCmd.AddCommand(reportCmd) }
