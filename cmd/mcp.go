package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/docsite/internal/mcp"
	"github.com/ziadkadry99/docsite/internal/progress"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing documentation search and reading tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := setupLogger(cfg)

		s, err := loadSite(cfg, logger)
		if err != nil {
			return err
		}

		// Content search needs every document. No progress bar: stdout
		// belongs to the protocol.
		if _, err := s.Preload(cmd.Context(), cfg.PreloadConcurrency, progress.Nop{}); err != nil {
			return fmt.Errorf("preloading documents: %w", err)
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "docsite MCP server started on stdio (manifest=%s, documents=%d)\n", cfg.Manifest, s.Tree().Len())

		srv := mcpserver.NewServer(s, logger)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
