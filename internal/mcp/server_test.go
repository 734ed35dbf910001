package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/docsite/internal/doctree"
	"github.com/ziadkadry99/docsite/internal/logging"
	"github.com/ziadkadry99/docsite/internal/mock"
	"github.com/ziadkadry99/docsite/internal/site"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	tree, err := doctree.Build(&doctree.Manifest{Sections: []doctree.Section{
		{Title: "Guide", Items: []*doctree.Node{
			{ID: "intro", Title: "Introduction", Description: "Start here", File: "intro.md"},
			{ID: "setup", Title: "Setup", File: "setup.md", Children: []*doctree.Node{
				{ID: "setup-linux", Title: "Linux", File: "setup/linux.md"},
			}},
		}},
		{Title: "Reference", Items: []*doctree.Node{
			{ID: "config", Title: "Configuration", Description: "All <settings>", File: "config.md"},
			{ID: "gone", Title: "Gone", File: "gone.md"},
		}},
	}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	s, err := site.New(site.Config{
		Tree: tree,
		Fetcher: mock.MapFetcher(map[string]string{
			"intro.md":       "# Introduction\n\nWelcome.",
			"setup.md":       "# Setup\n\nInstall the binary.",
			"setup/linux.md": "# Linux\n\nUse the tarball release.",
			"config.md":      "# Configuration\n\nSet the port.",
		}),
		Logger: logging.Discard(),
	})
	if err != nil {
		t.Fatalf("site.New: %v", err)
	}
	return NewServer(s, logging.Discard())
}

func callReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestToolDefinitions(t *testing.T) {
	// Verify tool names and required properties.
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"search_docs", searchDocsTool, "search_docs"},
		{"read_document", readDocumentTool, "read_document"},
		{"list_documents", listDocumentsTool, "list_documents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.site == nil {
		t.Fatal("site not set")
	}
}

func TestHandleSearchDocs(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	t.Run("title match", func(t *testing.T) {
		result, err := srv.handleSearchDocs(ctx, callReq(map[string]any{"query": "setup"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := extractText(result)
		if !strings.Contains(text, "Title: **Setup**") {
			t.Errorf("expected highlighted title, got:\n%s", text)
		}
		if !strings.Contains(text, "Matched: title") {
			t.Errorf("expected tier, got:\n%s", text)
		}
	})

	t.Run("content match after read", func(t *testing.T) {
		if _, err := srv.handleReadDocument(ctx, callReq(map[string]any{"id": "setup-linux"})); err != nil {
			t.Fatalf("read: %v", err)
		}
		result, err := srv.handleSearchDocs(ctx, callReq(map[string]any{"query": "tarball"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := extractText(result)
		if !strings.Contains(text, "ID: setup-linux") || !strings.Contains(text, "**tarball**") {
			t.Errorf("expected content hit, got:\n%s", text)
		}
	})

	t.Run("description is unescaped", func(t *testing.T) {
		result, _ := srv.handleSearchDocs(ctx, callReq(map[string]any{"query": "settings"}))
		text := extractText(result)
		if !strings.Contains(text, "All <**settings**>") {
			t.Errorf("expected plain description, got:\n%s", text)
		}
	})

	t.Run("limit", func(t *testing.T) {
		result, _ := srv.handleSearchDocs(ctx, callReq(map[string]any{"query": "i", "limit": 1}))
		text := extractText(result)
		if !strings.HasPrefix(text, "Found 1 result(s)") {
			t.Errorf("expected one result, got:\n%s", text)
		}
	})

	t.Run("no match", func(t *testing.T) {
		result, err := srv.handleSearchDocs(ctx, callReq(map[string]any{"query": "zzz"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Error("no match should not be a tool error")
		}
		if !strings.Contains(extractText(result), "No documents match") {
			t.Errorf("unexpected text: %s", extractText(result))
		}
	})

	t.Run("missing query", func(t *testing.T) {
		for _, args := range []map[string]any{{}, {"query": "   "}} {
			result, err := srv.handleSearchDocs(ctx, callReq(args))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.IsError {
				t.Errorf("expected error for args %v", args)
			}
		}
	})
}

func TestHandleReadDocument(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	result, err := srv.handleReadDocument(ctx, callReq(map[string]any{"id": "intro"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := extractText(result); got != "# Introduction\n\nWelcome." {
		t.Errorf("unexpected markdown: %q", got)
	}

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing id", map[string]any{}, "missing required parameter"},
		{"unknown id", map[string]any{"id": "nope"}, "Failed to load"},
		{"missing file", map[string]any{"id": "gone"}, "does not exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := srv.handleReadDocument(ctx, callReq(tt.args))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.IsError {
				t.Fatal("expected tool error")
			}
			if !strings.Contains(extractText(result), tt.want) {
				t.Errorf("error %q does not mention %q", extractText(result), tt.want)
			}
		})
	}
}

func TestHandleListDocuments(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.handleListDocuments(context.Background(), callReq(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "## Guide\n" +
		"- Introduction (id: intro): Start here\n" +
		"- Setup (id: setup)\n" +
		"  - Linux (id: setup-linux)\n" +
		"\n## Reference\n" +
		"- Configuration (id: config): All <settings>\n" +
		"- Gone (id: gone)\n"
	if got := extractText(result); got != want {
		t.Errorf("outline mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
