// Package tools implements the pronghorn MCP tools.
//
// Each tool receives its dependencies via its struct and exposes a
// Definition for registration plus a Handle compatible with mcp-go's
// CallToolRequest signature. Results are the canonical JSON encodings of
// the core's report structs.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HartBrook/pronghorn/internal/analyze"
	"github.com/HartBrook/pronghorn/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// AnalyzeTool handles the prompt_analyze MCP tool.
type AnalyzeTool struct {
	analyzer *analyze.Analyzer
}

// NewAnalyzeTool creates an AnalyzeTool around the given analyzer.
func NewAnalyzeTool(analyzer *analyze.Analyzer) *AnalyzeTool {
	return &AnalyzeTool{analyzer: analyzer}
}

// Definition returns the MCP tool definition for registration.
func (t *AnalyzeTool) Definition() mcp.Tool {
	return mcp.NewTool("prompt_analyze",
		mcp.WithDescription(
			"Score a prompt against the component framework (role, task, output "+
				"format, constraints, ...), context-engineering metrics (token "+
				"efficiency, signal density, altitude, redundancy), and model-fit "+
				"heuristics. Returns the full analysis report as JSON. Purely "+
				"heuristic and deterministic; no model is called.",
		),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The prompt text to analyze."),
		),
		mcp.WithString("model",
			mcp.Description("Target model to score fit against. Defaults to the catalog default."),
			mcp.Enum(modelEnum(t.analyzer.Catalog())...),
		),
	)
}

// Handle processes the prompt_analyze tool call.
func (t *AnalyzeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt := req.GetString("prompt", "")
	model := models.ID(req.GetString("model", ""))

	report := t.analyzer.Analyze(prompt, model)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// modelEnum returns the catalog's model IDs as enum values.
func modelEnum(catalog models.Catalog) []string {
	ids := catalog.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
