// Package server wires the pronghorn MCP surface.
//
// This is the composition root: it builds the analyzer and optimizer from
// the injected catalog and registers the tools. No scoring or rewriting
// logic lives here.
package server

import (
	"github.com/HartBrook/pronghorn/internal/analyze"
	"github.com/HartBrook/pronghorn/internal/models"
	"github.com/HartBrook/pronghorn/internal/rewrite"
	"github.com/HartBrook/pronghorn/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with the analyze and optimize tools
// registered. The catalog is injected so hosts (and tests) can substitute
// alternate pricing or model sets.
func New(catalog models.Catalog) *server.MCPServer {
	analyzer := analyze.New(catalog)
	optimizer := rewrite.New(analyzer)

	s := server.NewMCPServer(
		"pronghorn",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	analyzeTool := tools.NewAnalyzeTool(analyzer)
	s.AddTool(analyzeTool.Definition(), analyzeTool.Handle)

	optimizeTool := tools.NewOptimizeTool(analyzer, optimizer)
	s.AddTool(optimizeTool.Definition(), optimizeTool.Handle)

	return s
}

func serverInstructions() string {
	return `Pronghorn scores and rewrites prompts with fixed heuristics; it never calls a model itself.

Call prompt_analyze whenever you want a structural assessment of a prompt.
Call prompt_optimize once per explicit rewrite request; it re-analyzes
internally, so there is no need to call prompt_analyze first. Scores are
heuristic estimates, not ground truth: treat them as direction, not gospel.`
}
