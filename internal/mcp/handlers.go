package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cpslab/papersite/internal/papers"
)

// handleListPapers returns all papers or the papers of one category.
func (s *Server) handleListPapers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := request.GetString("category", "")
	if category == "" {
		return jsonResult(s.api.AllPapers(ctx))
	}
	if !papers.Category(category).Valid() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown category %q", category)), nil
	}
	return jsonResult(s.api.PapersByCategory(ctx, papers.Category(category)))
}

// handleGetPaper looks a paper up by id.
func (s *Server) handleGetPaper(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	return jsonResult(s.api.PaperByID(ctx, id))
}

func (s *Server) handleListCategories(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.api.Categories())
}

// handleGetOverview returns every overview section or those with one key.
func (s *Server) handleGetOverview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if section := request.GetString("section", ""); section != "" {
		return jsonResult(s.api.OverviewBySection(ctx, section))
	}
	return jsonResult(s.api.OverviewAll(ctx))
}

// jsonResult encodes v as indented JSON text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
