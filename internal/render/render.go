// Package render turns document markdown into HTML fragments for the site.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Default image prefix rewrite. Docs reference images relative to their own
// directory while the built site serves them under ./src/.
const (
	DefaultImagePrefixFrom = "../../"
	DefaultImagePrefixTo   = "./src/"
)

// Heading is one table of contents entry.
type Heading struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Text  string `json:"text"`
}

// Page is a rendered document.
type Page struct {
	HTML  string    `json:"html"`
	Title string    `json:"title,omitempty"`
	TOC   []Heading `json:"toc"`
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDocLinks marks in-page anchors "#id" whose id satisfies known as links
// to other documents. They are rendered with a data-doc attribute.
func WithDocLinks(known func(id string) bool) Option {
	return func(r *Renderer) {
		r.links.known = known
	}
}

// WithImagePrefix rewrites image sources starting with from to start with to.
// An empty from disables the rewrite.
func WithImagePrefix(from, to string) Option {
	return func(r *Renderer) {
		r.links.imageFrom = from
		r.links.imageTo = to
	}
}

// WithHighlightStyle sets the chroma style used for fenced code.
func WithHighlightStyle(style string) Option {
	return func(r *Renderer) {
		r.style = style
	}
}

// Renderer converts markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	md    goldmark.Markdown
	links *linkTransformer
	style string
}

// New creates a Renderer with GFM, syntax highlighting and heading ids.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		links: &linkTransformer{
			imageFrom: DefaultImagePrefixFrom,
			imageTo:   DefaultImagePrefixTo,
		},
		style: "github",
	}
	for _, opt := range opts {
		opt(r)
	}

	r.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(r.style),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(util.Prioritized(r.links, 500)),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return r
}

// Render converts markdown into a Page.
func (r *Renderer) Render(markdown string) (*Page, error) {
	src := []byte(markdown)
	doc := r.md.Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	page := &Page{HTML: buf.String(), TOC: []Heading{}}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title := plainText(h, src)
		if page.Title == "" && h.Level == 1 {
			page.Title = title
		}
		if h.Level <= 3 {
			var id string
			if v, ok := h.AttributeString("id"); ok {
				if b, ok := v.([]byte); ok {
					id = string(b)
				}
			}
			page.TOC = append(page.TOC, Heading{Level: h.Level, ID: id, Text: title})
		}
		return ast.WalkSkipChildren, nil
	})
	return page, nil
}

// plainText concatenates the literal text below n.
func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.CodeSpan:
			for cc := t.FirstChild(); cc != nil; cc = cc.NextSibling() {
				if tx, ok := cc.(*ast.Text); ok {
					b.Write(tx.Segment.Value(src))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
