package render

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// linkTransformer tags document anchors and rewrites image paths.
type linkTransformer struct {
	known     func(id string) bool
	imageFrom string
	imageTo   string
}

var _ parser.ASTTransformer = (*linkTransformer)(nil)

func (t *linkTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			if id, ok := t.docAnchor(string(node.Destination)); ok {
				node.SetAttributeString("data-doc", []byte(id))
			}
		case *ast.Image:
			node.Destination = []byte(t.rewriteImage(string(node.Destination)))
		}
		return ast.WalkContinue, nil
	})
}

func (t *linkTransformer) docAnchor(dest string) (string, bool) {
	if t.known == nil || !strings.HasPrefix(dest, "#") {
		return "", false
	}
	id := strings.TrimPrefix(dest, "#")
	if id == "" || !t.known(id) {
		return "", false
	}
	return id, true
}

func (t *linkTransformer) rewriteImage(src string) string {
	if t.imageFrom == "" || !strings.HasPrefix(src, t.imageFrom) {
		return src
	}
	return t.imageTo + strings.TrimPrefix(src, t.imageFrom)
}
