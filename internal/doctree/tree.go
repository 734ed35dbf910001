package doctree

import (
	"fmt"
	"strings"
)

// Tree is the immutable document hierarchy built from a Manifest.
// Returned nodes and sections are shared and must be treated as read-only.
type Tree struct {
	sections []Section
	byID     map[string]*Node
	parent   map[string]*Node
	section  map[string]int
	count    int
}

// Build validates the manifest and constructs a Tree from a private copy of
// its nodes. Every node needs an id and a file, and ids must be unique
// across all sections; otherwise a *MalformedManifestError lists each defect.
func Build(m *Manifest) (*Tree, error) {
	if m == nil {
		return nil, &MalformedManifestError{Problems: []Problem{{Location: "manifest", Reason: "manifest is empty"}}}
	}

	b := &builder{
		tree: &Tree{
			byID:    make(map[string]*Node),
			parent:  make(map[string]*Node),
			section: make(map[string]int),
		},
		firstSeen: make(map[string]string),
	}

	for si, sec := range m.Sections {
		copied := Section{Title: sec.Title, Icon: sec.Icon}
		for ii, item := range sec.Items {
			loc := fmt.Sprintf("sections[%d].items[%d]", si, ii)
			if n := b.add(item, nil, si, loc); n != nil {
				copied.Items = append(copied.Items, n)
			}
		}
		b.tree.sections = append(b.tree.sections, copied)
	}

	if len(b.problems) > 0 {
		return nil, &MalformedManifestError{Problems: b.problems}
	}
	return b.tree, nil
}

type builder struct {
	tree      *Tree
	firstSeen map[string]string
	problems  []Problem
}

func (b *builder) fail(loc, format string, args ...any) {
	b.problems = append(b.problems, Problem{Location: loc, Reason: fmt.Sprintf(format, args...)})
}

func (b *builder) add(src *Node, parent *Node, sectionIdx int, loc string) *Node {
	if src == nil {
		b.fail(loc, "empty item")
		return nil
	}

	id := strings.TrimSpace(src.ID)
	switch {
	case id == "":
		b.fail(loc, "missing id")
	case b.firstSeen[id] != "":
		b.fail(loc, "duplicate id %q (first defined at %s)", id, b.firstSeen[id])
	default:
		b.firstSeen[id] = loc
	}
	if strings.TrimSpace(src.File) == "" {
		b.fail(loc, "missing file")
	}

	n := &Node{
		ID:          id,
		Title:       src.Title,
		Description: src.Description,
		File:        src.File,
	}
	if id != "" && b.tree.byID[id] == nil {
		b.tree.byID[id] = n
		b.tree.section[id] = sectionIdx
		if parent != nil {
			b.tree.parent[id] = parent
		}
	}
	b.tree.count++

	for ci, child := range src.Children {
		if c := b.add(child, n, sectionIdx, fmt.Sprintf("%s.items[%d]", loc, ci)); c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Sections returns the sections in manifest order.
func (t *Tree) Sections() []Section {
	out := make([]Section, len(t.sections))
	copy(out, t.sections)
	return out
}

// Len returns the number of documents across all sections.
func (t *Tree) Len() int { return t.count }

// FindByID returns the node with the given id.
func (t *Tree) FindByID(id string) (*Node, bool) {
	n, ok := t.byID[id]
	return n, ok
}

// Contains reports whether id names a document in the tree.
func (t *Tree) Contains(id string) bool {
	_, ok := t.byID[id]
	return ok
}

// FirstDocument returns the first item of the first section, the document
// shown when nothing else has been requested.
func (t *Tree) FirstDocument() (*Node, bool) {
	if len(t.sections) == 0 || len(t.sections[0].Items) == 0 {
		return nil, false
	}
	return t.sections[0].Items[0], true
}

// AncestorsOf returns the ancestors of id ordered root-first. Top-level
// documents and unknown ids have no ancestors.
func (t *Tree) AncestorsOf(id string) []*Node {
	var chain []*Node
	for p := t.parent[id]; p != nil; p = t.parent[p.ID] {
		chain = append(chain, p)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// SectionOf returns the section that owns id.
func (t *Tree) SectionOf(id string) (Section, bool) {
	idx, ok := t.section[id]
	if !ok {
		return Section{}, false
	}
	return t.sections[idx], true
}

// WalkFunc is called for every node in depth-first manifest order. Returning
// false stops the walk.
type WalkFunc func(sec Section, n *Node, depth int) bool

// Walk visits every node depth-first, sections in order, parents before
// their children.
func (t *Tree) Walk(fn WalkFunc) {
	for _, sec := range t.sections {
		for _, item := range sec.Items {
			if !walk(sec, item, 0, fn) {
				return
			}
		}
	}
}

func walk(sec Section, n *Node, depth int, fn WalkFunc) bool {
	if !fn(sec, n, depth) {
		return false
	}
	switch n.Kind() {
	case Leaf:
		return true
	case Branch:
		for _, c := range n.Children {
			if !walk(sec, c, depth+1, fn) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("doctree: unhandled node kind %v", n.Kind()))
	}
}
