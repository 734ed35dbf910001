package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchDocsTool defines the search_docs MCP tool.
var searchDocsTool = mcp.NewTool("search_docs",
	mcp.WithDescription("Search the documentation by title, description and content. Matches are case-insensitive substrings; title matches rank first."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Text to search for"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
)

// readDocumentTool defines the read_document MCP tool.
var readDocumentTool = mcp.NewTool("read_document",
	mcp.WithDescription("Get the markdown of a documentation page by its id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Document id as listed by list_documents or search_docs"),
	),
)

// listDocumentsTool defines the list_documents MCP tool.
var listDocumentsTool = mcp.NewTool("list_documents",
	mcp.WithDescription("List every documentation page grouped by section, with ids and descriptions."),
)
