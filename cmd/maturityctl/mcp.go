package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/godilite/maturity-server/internal/mcptools"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve report tools over MCP on stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reports, closeFn, err := openReports(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		logger.Info("serving MCP tools on stdio")
		return server.ServeStdio(mcptools.NewServer(reports))
	},
}

func init() { rootCmd.AddCommand(mcpCmd) }
