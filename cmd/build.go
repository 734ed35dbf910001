package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docsite/internal/builder"
	"github.com/ziadkadry99/docsite/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Package the site for static hosting",
	Long: `Copies the asset tree, the markdown documents and the page template into
the output directory so it can be served by any static file host.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output directory (overrides output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}

	b := builder.New(builder.Options{
		OutputDir:   cfg.OutputDir,
		AssetsDir:   cfg.AssetsDir,
		AssetsDest:  cfg.AssetsDest,
		DocsDir:     cfg.DocsDir,
		DocsDest:    cfg.DocsDest,
		DocPatterns: cfg.DocPatterns,
		Exclude:     cfg.Exclude,
		Template:    cfg.Template,
	}, progress.NewReporter("Building site"), logger)

	res, err := b.Build()
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Built %s: %d assets, %d documents\n", res.OutputDir, res.Assets, res.Docs)
	return nil
}
