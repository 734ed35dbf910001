package site

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/docsite/internal/doctree"
	"github.com/ziadkadry99/docsite/internal/progress"
)

// DefaultPreloadConcurrency bounds parallel fetches during Preload.
const DefaultPreloadConcurrency = 8

// PreloadResult counts the outcome of a Preload.
type PreloadResult struct {
	Loaded int
	Failed int
}

// Preload fetches every document so content search covers the whole tree.
// Individual fetch failures are logged and counted, not returned; only
// context cancellation aborts the run.
func (s *Site) Preload(ctx context.Context, concurrency int, reporter progress.Reporter) (PreloadResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultPreloadConcurrency
	}
	if reporter == nil {
		reporter = progress.Nop{}
	}

	var nodes []*doctree.Node
	s.tree.Walk(func(_ doctree.Section, n *doctree.Node, _ int) bool {
		if !s.loaded(n.ID) {
			nodes = append(nodes, n)
		}
		return true
	})

	reporter.Start(len(nodes))
	defer reporter.Finish()

	var loaded, failed, done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, n := range nodes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if _, err := s.fetch(gctx, n); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				failed.Add(1)
			} else {
				loaded.Add(1)
			}
			reporter.Update(int(done.Add(1)), n.ID)
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	res := PreloadResult{Loaded: int(loaded.Load()), Failed: int(failed.Load())}
	s.logger.Info("preload finished", "loaded", res.Loaded, "failed", res.Failed)
	return res, err
}

func (s *Site) loaded(id string) bool {
	e, ok := s.index.Lookup(id)
	return ok && e.Content != ""
}
