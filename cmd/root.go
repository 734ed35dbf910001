package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsite/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docsite",
	Short: "Static documentation site with sidebar navigation and instant search",
	Long: `docsite turns a manifest of markdown documents into a browsable
documentation site: a collapsible sidebar tree, tiered full-text search,
and a build step that packages everything for static hosting. The same
index is exposed to AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
