package doctree

import (
	"fmt"
	"strings"
)

// MalformedManifestError reports every structural problem found while
// building a tree. No tree can be built from a malformed manifest.
type MalformedManifestError struct {
	Problems []Problem
}

// Problem is a single manifest defect, located by its path in the manifest
// (e.g. "sections[0].items[2].items[1]").
type Problem struct {
	Location string
	Reason   string
}

func (e *MalformedManifestError) Error() string {
	if len(e.Problems) == 1 {
		p := e.Problems[0]
		return fmt.Sprintf("malformed manifest: %s: %s", p.Location, p.Reason)
	}
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.Location + ": " + p.Reason
	}
	return fmt.Sprintf("malformed manifest (%d problems): %s", len(e.Problems), strings.Join(parts, "; "))
}

// DocumentNotFoundError is returned when an operation names an id that is
// not present in the tree.
type DocumentNotFoundError struct {
	ID string
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document %q not found", e.ID)
}
