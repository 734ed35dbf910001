package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ziadkadry99/docsite/internal/config"
	"github.com/ziadkadry99/docsite/internal/content"
	"github.com/ziadkadry99/docsite/internal/doctree"
	"github.com/ziadkadry99/docsite/internal/logging"
	"github.com/ziadkadry99/docsite/internal/render"
	"github.com/ziadkadry99/docsite/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// setupLogger installs the default logger. --verbose forces debug.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.Setup(logging.Config{Level: level})
}

// newFetcher picks the content source: a remote base URL when content_url
// is set, otherwise the local docs directory.
func newFetcher(cfg *config.Config) (content.Fetcher, error) {
	if cfg.ContentURL == "" {
		return content.NewDirFetcher(cfg.DocsDir), nil
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}
	return content.NewHTTPFetcher(cfg.ContentURL, content.WithTimeout(timeout))
}

// loadSite reads the manifest and wires the site with its fetcher and renderer.
func loadSite(cfg *config.Config, logger *slog.Logger) (*site.Site, error) {
	tree, err := doctree.Load(cfg.Manifest)
	if err != nil {
		return nil, err
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating content fetcher: %w", err)
	}

	renderer := render.New(
		render.WithDocLinks(tree.Contains),
		render.WithImagePrefix(cfg.ImagePrefixFrom, cfg.ImagePrefixTo),
	)

	s, err := site.New(site.Config{
		Title:           cfg.Title,
		Tree:            tree,
		Fetcher:         fetcher,
		Renderer:        renderer,
		RenderCacheSize: cfg.RenderCacheSize,
		Logger:          logger,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("site loaded", "manifest", cfg.Manifest, "documents", tree.Len())
	return s, nil
}
