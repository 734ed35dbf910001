// Package doctree models the hierarchical set of documents described by a
// site manifest: sections holding ordered, arbitrarily nested document nodes.
// A Tree is built once and never mutated afterwards.
package doctree

// Kind distinguishes leaf documents from documents that own children.
type Kind int

const (
	// Leaf is a document without children.
	Leaf Kind = iota
	// Branch is a document with at least one child.
	Branch
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Branch:
		return "branch"
	default:
		return "unknown"
	}
}

// Node is one addressable document.
type Node struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	File        string  `json:"file" yaml:"file"`
	Children    []*Node `json:"items,omitempty" yaml:"items,omitempty"`
}

// Kind reports whether the node is a Leaf or a Branch.
func (n *Node) Kind() Kind {
	if len(n.Children) > 0 {
		return Branch
	}
	return Leaf
}

// Section is a top-level grouping of documents. Sections never nest.
type Section struct {
	Title string  `json:"title" yaml:"title"`
	Icon  string  `json:"icon,omitempty" yaml:"icon,omitempty"`
	Items []*Node `json:"items" yaml:"items"`
}
