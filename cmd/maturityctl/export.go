package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/godilite/maturity-server/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <company>",
	Short: "Write a company report to an .xlsx workbook",
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
		report, err := reports.GetCompanyReport(ctx, company)
		if err != nil {
			return err
		}

		path := exportOutput
		if path == "" {
			path = fmt.Sprintf("madurez-%s.xlsx", company)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := export.WriteXLSX(f, report); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}

		logger.Info("report exported", zap.String("company", company), zap.String("path", path))
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path (default madurez-<company>.xlsx)")
	rootCmd.AddCommand(exportCmd)
}
