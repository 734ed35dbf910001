// Package navigation tracks which document is active and which branches of
// the document tree are expanded.
package navigation

import (
	"github.com/ziadkadry99/docsite/internal/doctree"
)

// State is the navigation state of one reader. It changes only through
// Activate and ToggleExpansion. State is not safe for concurrent use; callers
// that share one guard it themselves.
type State struct {
	tree     *doctree.Tree
	current  string
	expanded map[string]struct{}
}

// New returns a State with no current document and nothing expanded.
func New(tree *doctree.Tree) *State {
	return &State{
		tree:     tree,
		expanded: make(map[string]struct{}),
	}
}

// Activate makes id the current document and expands every ancestor of it.
// Already-expanded branches stay expanded. An unknown id leaves the state
// untouched and returns a *doctree.DocumentNotFoundError.
func (s *State) Activate(id string) error {
	if !s.tree.Contains(id) {
		return &doctree.DocumentNotFoundError{ID: id}
	}
	s.current = id
	for _, n := range s.tree.AncestorsOf(id) {
		s.expanded[n.ID] = struct{}{}
	}
	return nil
}

// ToggleExpansion flips whether id is expanded. The current document is
// not affected.
func (s *State) ToggleExpansion(id string) {
	if _, ok := s.expanded[id]; ok {
		delete(s.expanded, id)
		return
	}
	s.expanded[id] = struct{}{}
}

// Current returns the active document id, if any.
func (s *State) Current() (string, bool) {
	return s.current, s.current != ""
}

// IsExpanded reports whether id is in the expansion set.
func (s *State) IsExpanded(id string) bool {
	_, ok := s.expanded[id]
	return ok
}

// Snapshot is an immutable copy of a State.
type Snapshot struct {
	Current  string   `json:"current,omitempty"`
	Expanded []string `json:"expanded"`
}

// Snapshot copies the state. Expanded ids are listed in tree order.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{Current: s.current, Expanded: []string{}}
	s.tree.Walk(func(_ doctree.Section, n *doctree.Node, _ int) bool {
		if _, ok := s.expanded[n.ID]; ok {
			snap.Expanded = append(snap.Expanded, n.ID)
		}
		return true
	})
	return snap
}
