package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/cpslab/papersite/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing paper and overview lookup tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		api := newQueryAPI(cfg)

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "papersite MCP server started on stdio (base path %s)\n", cfg.BasePath())

		srv := mcpserver.NewServer(api)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
