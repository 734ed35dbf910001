// Package search keeps a flattened, full-text index of every document in a
// doctree.Tree and answers substring queries against it.
package search

import (
	"sync"

	"github.com/ziadkadry99/docsite/internal/doctree"
)

// Entry is the search-ready form of one document. Content stays empty until
// the document has been loaded once.
type Entry struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	SectionTitle string `json:"section"`
	File         string `json:"file"`
	Content      string `json:"content,omitempty"`
}

// Index owns one Entry per document, in depth-first manifest order.
// It is safe for concurrent use.
type Index struct {
	mu      sync.RWMutex
	entries []Entry
	pos     map[string]int
}

// BuildIndex flattens every section and nested document of tree into an
// Index. Content is filled in later by RecordContent.
func BuildIndex(tree *doctree.Tree) *Index {
	idx := &Index{pos: make(map[string]int, tree.Len())}
	tree.Walk(func(sec doctree.Section, n *doctree.Node, _ int) bool {
		idx.pos[n.ID] = len(idx.entries)
		idx.entries = append(idx.entries, Entry{
			ID:           n.ID,
			Title:        n.Title,
			Description:  n.Description,
			SectionTitle: sec.Title,
			File:         n.File,
		})
		return true
	})
	return idx
}

// RecordContent stores the plain-text form of a document's markdown source.
// Cleaning happens here, once per load, so queries never pay for it.
// Unknown ids are ignored.
func (idx *Index) RecordContent(id, rawMarkdown string) {
	idx.mu.RLock()
	_, ok := idx.pos[id]
	idx.mu.RUnlock()
	if !ok {
		return
	}

	cleaned := CleanMarkdown(rawMarkdown)

	idx.mu.Lock()
	idx.entries[idx.pos[id]].Content = cleaned
	idx.mu.Unlock()
}

// Entries returns a snapshot of all entries in build order.
func (idx *Index) Entries() []Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]Entry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// Lookup returns the entry for id.
func (idx *Index) Lookup(id string) (Entry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	i, ok := idx.pos[id]
	if !ok {
		return Entry{}, false
	}
	return idx.entries[i], true
}

// Len returns the number of entries.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Loaded returns how many entries have content recorded.
func (idx *Index) Loaded() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	n := 0
	for _, e := range idx.entries {
		if e.Content != "" {
			n++
		}
	}
	return n
}
