package mcp

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/docsite/internal/doctree"
	"github.com/ziadkadry99/docsite/internal/search"
	"github.com/ziadkadry99/docsite/internal/site"
)

// handleSearchDocs runs a tiered search over the documentation index.
func (s *Server) handleSearchDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	results := s.site.Search(query)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No documents match %q.", query)), nil
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return mcp.NewToolResultText(formatSearchResults(results)), nil
}

// handleReadDocument fetches a document and returns its markdown.
func (s *Server) handleReadDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	md, err := s.site.Markdown(ctx, id)
	if err != nil {
		s.logger.Warn("read_document failed", "doc", id, "error", err)
		msg := site.Describe(err)
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s", msg.Title, msg.Message)), nil
	}

	return mcp.NewToolResultText(md), nil
}

// handleListDocuments returns the document tree as an indented outline.
func (s *Server) handleListDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.site.Tree().Len() == 0 {
		return mcp.NewToolResultText("The manifest lists no documents."), nil
	}

	var sb strings.Builder
	for i, sec := range s.site.Tree().Sections() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("## %s\n", sec.Title))
		writeOutline(&sb, sec.Items, 0)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func writeOutline(sb *strings.Builder, nodes []*doctree.Node, depth int) {
	for _, n := range nodes {
		sb.WriteString(fmt.Sprintf("%s- %s (id: %s)", strings.Repeat("  ", depth), n.Title, n.ID))
		if n.Description != "" {
			sb.WriteString(": " + n.Description)
		}
		sb.WriteString("\n")
		if n.Kind() == doctree.Branch {
			writeOutline(sb, n.Children, depth+1)
		}
	}
}

var markTag = regexp.MustCompile(`</?mark>`)

// plain turns a highlighted fragment back into text, keeping matches
// visible as **bold** for the agent.
func plain(fragment string) string {
	return html.UnescapeString(markTag.ReplaceAllStringFunc(fragment, func(string) string { return "**" }))
}

// formatSearchResults converts search results into a text format optimized
// for AI agent consumption.
func formatSearchResults(results []search.Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d result(s):\n", len(results)))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("\n--- Result %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("Title: %s\n", plain(r.HighlightedTitle)))
		sb.WriteString(fmt.Sprintf("ID: %s\n", r.ID))
		if r.SectionTitle != "" {
			sb.WriteString(fmt.Sprintf("Section: %s\n", r.SectionTitle))
		}
		sb.WriteString(fmt.Sprintf("Matched: %s\n", r.Tier))
		sb.WriteString("\n")
		sb.WriteString(plain(r.Excerpt))
		sb.WriteString("\n")
	}

	return sb.String()
}
