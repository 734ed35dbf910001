// Package builder assembles the distributable site directory.
package builder

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/docsite/internal/progress"
	"github.com/ziadkadry99/docsite/internal/walker"
)

// Options describes what goes into the output directory.
type Options struct {
	OutputDir   string
	AssetsDir   string // copied recursively to OutputDir/AssetsDest
	AssetsDest  string
	DocsDir     string // markdown matching DocPatterns goes to OutputDir/DocsDest
	DocsDest    string
	DocPatterns []string
	Exclude     []string
	Template    string // copied verbatim to OutputDir/index.html
}

// Result summarises a build.
type Result struct {
	OutputDir string
	Assets    int
	Docs      int
}

// Builder copies site files into the output directory.
type Builder struct {
	opts     Options
	reporter progress.Reporter
	logger   *slog.Logger
}

// New creates a Builder. A nil reporter disables progress output and a nil
// logger uses slog.Default.
func New(opts Options, reporter progress.Reporter, logger *slog.Logger) *Builder {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{opts: opts, reporter: reporter, logger: logger}
}

// Build creates the output directory, then copies assets, the template and
// documents into it. The first filesystem error aborts the build.
func (b *Builder) Build() (*Result, error) {
	out := b.opts.OutputDir
	if out == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	res := &Result{OutputDir: out}

	var assets []walker.FileInfo
	if b.opts.AssetsDir != "" {
		var err error
		assets, err = walker.Walk(walker.WalkerConfig{
			RootDir:  b.opts.AssetsDir,
			Exclude:  b.opts.Exclude,
			SkipDirs: []string{out},
		})
		if err != nil {
			return nil, fmt.Errorf("listing assets: %w", err)
		}
	}

	docs, err := walker.Walk(walker.WalkerConfig{
		RootDir:  b.opts.DocsDir,
		Include:  b.opts.DocPatterns,
		Exclude:  b.opts.Exclude,
		SkipDirs: []string{out},
	})
	if err != nil {
		return nil, fmt.Errorf("listing docs: %w", err)
	}

	b.reporter.Start(len(assets) + len(docs) + 1)
	defer b.reporter.Finish()
	step := 0

	assetsDest := filepath.Join(out, filepath.FromSlash(b.opts.AssetsDest))
	for _, f := range assets {
		step++
		b.reporter.Update(step, f.RelPath)
		if err := copyFile(f.Path, filepath.Join(assetsDest, filepath.FromSlash(f.RelPath)), f.Mode); err != nil {
			return nil, fmt.Errorf("copying asset %s: %w", f.RelPath, err)
		}
		res.Assets++
	}
	b.logger.Debug("assets copied", "count", res.Assets, "dest", assetsDest)

	step++
	b.reporter.Update(step, "index.html")
	if err := copyFile(b.opts.Template, filepath.Join(out, "index.html"), 0o644); err != nil {
		return nil, fmt.Errorf("copying template: %w", err)
	}

	docsDest := filepath.Join(out, filepath.FromSlash(b.opts.DocsDest))
	if err := os.MkdirAll(docsDest, 0o755); err != nil {
		return nil, fmt.Errorf("creating docs dir: %w", err)
	}
	for _, f := range docs {
		step++
		b.reporter.Update(step, f.RelPath)
		if err := copyFile(f.Path, filepath.Join(docsDest, filepath.FromSlash(f.RelPath)), f.Mode); err != nil {
			return nil, fmt.Errorf("copying doc %s: %w", f.RelPath, err)
		}
		res.Docs++
	}
	b.logger.Debug("docs copied", "count", res.Docs, "dest", docsDest)

	return res, nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	if mode == 0 {
		mode = 0o644
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
