// Package mcp exposes the paper and overview queries as MCP tools over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/cpslab/papersite/internal/query"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the site's query tools.
type Server struct {
	api *query.API
	mcp *server.MCPServer
}

// NewServer creates a new MCP server answering from api.
func NewServer(api *query.API) *Server {
	s := &Server{api: api}

	s.mcp = server.NewMCPServer(
		"papersite",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listPapersTool, s.handleListPapers)
	s.mcp.AddTool(getPaperTool, s.handleGetPaper)
	s.mcp.AddTool(listCategoriesTool, s.handleListCategories)
	s.mcp.AddTool(getOverviewTool, s.handleGetOverview)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
