// Package mock provides function-field implementations of interfaces used
// across the site packages.
package mock

import (
	"context"

	"github.com/ziadkadry99/docsite/internal/content"
)

var _ content.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of content.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, path string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	return f.FetchFn(ctx, path)
}

// MapFetcher returns a Fetcher serving docs from a path-to-markdown map.
// Missing paths fail with a 404 FetchError.
func MapFetcher(docs map[string]string) *Fetcher {
	return &Fetcher{
		FetchFn: func(_ context.Context, path string) (string, error) {
			md, ok := docs[path]
			if !ok {
				return "", &content.FetchError{Path: path, Status: 404, Err: content.ErrNotFound}
			}
			return md, nil
		},
	}
}
