// Package site wires the document tree, search index, content fetcher and
// renderer together and exposes them to readers through sessions.
package site

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ziadkadry99/docsite/internal/content"
	"github.com/ziadkadry99/docsite/internal/doctree"
	"github.com/ziadkadry99/docsite/internal/navigation"
	"github.com/ziadkadry99/docsite/internal/render"
	"github.com/ziadkadry99/docsite/internal/search"
)

// Default cache sizes.
const (
	DefaultRenderCacheSize = 128
	DefaultMaxSessions     = 1024
)

// Config holds the dependencies of a Site.
type Config struct {
	Title    string
	Tree     *doctree.Tree
	Fetcher  content.Fetcher
	Renderer *render.Renderer // nil builds one that links known document ids
	Engine   *search.Engine   // nil uses the default engine

	RenderCacheSize int // 0 uses DefaultRenderCacheSize
	MaxSessions     int // 0 uses DefaultMaxSessions
	Logger          *slog.Logger
}

// Site is the shared state behind every reader session.
type Site struct {
	title    string
	tree     *doctree.Tree
	index    *search.Index
	fetcher  content.Fetcher
	renderer *render.Renderer
	engine   *search.Engine
	pages    *lru.Cache[string, *render.Page]
	sessions *lru.Cache[string, *Session]
	logger   *slog.Logger
}

// Document is a loaded, rendered document.
type Document struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description,omitempty"`
	SectionTitle string              `json:"section"`
	File         string              `json:"file"`
	HTML         string              `json:"html"`
	TOC          []render.Heading    `json:"toc"`
	State        navigation.Snapshot `json:"state"`
}

// New builds a Site and its search index.
func New(cfg Config) (*Site, error) {
	if cfg.Tree == nil {
		return nil, fmt.Errorf("site: document tree is required")
	}
	if cfg.Fetcher == nil {
		return nil, fmt.Errorf("site: content fetcher is required")
	}

	s := &Site{
		title:    cfg.Title,
		tree:     cfg.Tree,
		index:    search.BuildIndex(cfg.Tree),
		fetcher:  cfg.Fetcher,
		renderer: cfg.Renderer,
		engine:   cfg.Engine,
		logger:   cfg.Logger,
	}
	if s.renderer == nil {
		s.renderer = render.New(render.WithDocLinks(cfg.Tree.Contains))
	}
	if s.engine == nil {
		s.engine = &search.Engine{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	cacheSize := cfg.RenderCacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultRenderCacheSize
	}
	pages, err := lru.New[string, *render.Page](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("site: render cache: %w", err)
	}
	s.pages = pages

	maxSessions := cfg.MaxSessions
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	sessions, err := lru.New[string, *Session](maxSessions)
	if err != nil {
		return nil, fmt.Errorf("site: session cache: %w", err)
	}
	s.sessions = sessions

	return s, nil
}

// Title returns the configured site title.
func (s *Site) Title() string { return s.title }

// Tree returns the document tree.
func (s *Site) Tree() *doctree.Tree { return s.tree }

// Index returns the search index.
func (s *Site) Index() *search.Index { return s.index }

// Search runs query against the index. A nil result means no search is
// active.
func (s *Site) Search(query string) []search.Result {
	return s.engine.Search(s.index, query)
}

// Document fetches, indexes and renders id without touching any session.
// Rendered pages are cached; the fetched content is recorded in the index
// before the page is cached.
func (s *Site) Document(ctx context.Context, id string) (*Document, error) {
	node, ok := s.tree.FindByID(id)
	if !ok {
		return nil, &doctree.DocumentNotFoundError{ID: id}
	}

	page, err := s.page(ctx, node)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		ID:          node.ID,
		Title:       node.Title,
		Description: node.Description,
		File:        node.File,
		HTML:        page.HTML,
		TOC:         page.TOC,
	}
	if sec, ok := s.tree.SectionOf(id); ok {
		doc.SectionTitle = sec.Title
	}
	return doc, nil
}

// Markdown fetches the raw markdown of id and records it in the index.
func (s *Site) Markdown(ctx context.Context, id string) (string, error) {
	node, ok := s.tree.FindByID(id)
	if !ok {
		return "", &doctree.DocumentNotFoundError{ID: id}
	}
	return s.fetch(ctx, node)
}

func (s *Site) page(ctx context.Context, node *doctree.Node) (*render.Page, error) {
	if page, ok := s.pages.Get(node.ID); ok {
		return page, nil
	}

	md, err := s.fetch(ctx, node)
	if err != nil {
		return nil, err
	}

	page, err := s.renderer.Render(md)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", node.ID, err)
	}
	s.pages.Add(node.ID, page)
	return page, nil
}

func (s *Site) fetch(ctx context.Context, node *doctree.Node) (string, error) {
	md, err := s.fetcher.Fetch(ctx, node.File)
	if err != nil {
		s.logger.Warn("fetch failed", "doc", node.ID, "file", node.File, "error", err)
		return "", fmt.Errorf("loading %s: %w", node.ID, err)
	}
	s.index.RecordContent(node.ID, md)
	s.logger.Debug("document fetched", "doc", node.ID, "bytes", len(md))
	return md, nil
}
