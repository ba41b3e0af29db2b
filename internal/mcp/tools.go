package mcp

import "github.com/mark3labs/mcp-go/mcp"

// askKnowledgeTool defines the ask_knowledge MCP tool.
var askKnowledgeTool = mcp.NewTool("ask_knowledge",
	mcp.WithDescription("Ask a free-text question about the documented business processes. Questions and answers are in Slovak."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language question, e.g. \"ako funguje fakturácia?\""),
	),
)

// searchProcessesTool defines the search_processes MCP tool.
var searchProcessesTool = mcp.NewTool("search_processes",
	mcp.WithDescription("Keyword search over documented processes by name, category, owner and tags. Diacritics are ignored."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Search keywords"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 5)"),
	),
)

// processStatisticsTool defines the process_statistics MCP tool.
var processStatisticsTool = mcp.NewTool("process_statistics",
	mcp.WithDescription("Get aggregate counts over the knowledge base: total processes, categories and owners."),
)

// getProcessTool defines the get_process MCP tool.
var getProcessTool = mcp.NewTool("get_process",
	mcp.WithDescription("Get the full record of one documented process by its ID."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Process record ID"),
	),
)
