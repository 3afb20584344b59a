package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listPapersTool defines the list_papers MCP tool.
var listPapersTool = mcp.NewTool("list_papers",
	mcp.WithDescription("List research papers, optionally restricted to one category. Returns a JSON object whose data field holds the papers."),
	mcp.WithString("category",
		mcp.Description("Category to list; all papers when omitted"),
		mcp.Enum("measurement", "analysis", "intervention"),
	),
)

// getPaperTool defines the get_paper MCP tool.
var getPaperTool = mcp.NewTool("get_paper",
	mcp.WithDescription("Get one paper by its numeric id. data is null when no paper has that id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Paper id, e.g. \"3\""),
	),
)

// listCategoriesTool defines the list_categories MCP tool.
var listCategoriesTool = mcp.NewTool("list_categories",
	mcp.WithDescription("List the paper categories with their display labels."),
)

// getOverviewTool defines the get_overview MCP tool.
var getOverviewTool = mcp.NewTool("get_overview",
	mcp.WithDescription("Get the project overview sections, optionally only those with a given section key such as analysis_intro."),
	mcp.WithString("section",
		mcp.Description("Section key to filter by"),
	),
)
