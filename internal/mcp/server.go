// Package mcp exposes the process knowledge base as MCP tools over
// stdio, so coding agents and chat clients can query it directly.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/adsun-ai/adsun/internal/assistant"
	"github.com/adsun-ai/adsun/internal/process"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes process knowledge tools.
type Server struct {
	store  *process.Store
	engine *assistant.Engine
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(store *process.Store, engine *assistant.Engine) *Server {
	s := &Server{
		store:  store,
		engine: engine,
	}

	s.mcp = server.NewMCPServer(
		"adsun",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(askKnowledgeTool, s.handleAskKnowledge)
	s.mcp.AddTool(searchProcessesTool, s.handleSearchProcesses)
	s.mcp.AddTool(processStatisticsTool, s.handleProcessStatistics)
	s.mcp.AddTool(getProcessTool, s.handleGetProcess)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
