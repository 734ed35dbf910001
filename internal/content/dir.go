package content

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

var _ Fetcher = (*DirFetcher)(nil)

// DirFetcher reads documents from a directory on disk. Paths are resolved
// relative to the root and may not escape it.
type DirFetcher struct {
	fsys fs.FS
}

// NewDirFetcher returns a DirFetcher rooted at dir.
func NewDirFetcher(dir string) *DirFetcher {
	return &DirFetcher{fsys: os.DirFS(dir)}
}

// NewFSFetcher returns a DirFetcher reading from fsys.
func NewFSFetcher(fsys fs.FS) *DirFetcher {
	return &DirFetcher{fsys: fsys}
}

// Fetch reads the document at p.
func (f *DirFetcher) Fetch(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &FetchError{Path: p, Err: err}
	}

	name := path.Clean(strings.TrimPrefix(strings.TrimPrefix(p, "./"), "/"))
	if !fs.ValidPath(name) || name == "." {
		return "", &FetchError{Path: p, Status: http.StatusBadRequest, Err: errors.New("path escapes content root")}
	}

	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &FetchError{Path: p, Status: http.StatusNotFound, Err: ErrNotFound}
		}
		return "", &FetchError{Path: p, Err: err}
	}
	return string(data), nil
}
