// Package content retrieves raw markdown for documents named in the manifest.
package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Fetcher retrieves the raw markdown stored at a document path. The path is
// the opaque File value from the manifest.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// ErrNotFound is wrapped by FetchError when the document does not exist.
var ErrNotFound = errors.New("document not found")

// FetchError reports a failed fetch. Status is an HTTP-style status code
// (0 when the failure happened before any response, e.g. a timeout).
type FetchError struct {
	Path   string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("fetch %s: HTTP %d: %v", e.Path, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("fetch %s: HTTP %d", e.Path, e.Status)
	default:
		return fmt.Sprintf("fetch %s: %v", e.Path, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// NotFound reports whether the fetch failed because the document is missing.
func (e *FetchError) NotFound() bool {
	return e.Status == http.StatusNotFound || errors.Is(e.Err, ErrNotFound)
}
