package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List companies with stored surveys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		reports, closeFn, err := openReports(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		companies, err := reports.ListCompanies(ctx)
		if err != nil {
			return err
		}
		for _, c := range companies {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func init() { rootCmd.AddCommand(companiesCmd) }
