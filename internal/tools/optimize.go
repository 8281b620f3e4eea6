package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HartBrook/pronghorn/internal/analyze"
	"github.com/HartBrook/pronghorn/internal/models"
	"github.com/HartBrook/pronghorn/internal/rewrite"
	"github.com/mark3labs/mcp-go/mcp"
)

// OptimizeTool handles the prompt_optimize MCP tool. It analyzes the prompt
// itself before rewriting, so the analyze-then-optimize precondition (same
// text, same model) holds by construction.
type OptimizeTool struct {
	analyzer  *analyze.Analyzer
	optimizer *rewrite.Optimizer
}

// NewOptimizeTool creates an OptimizeTool with its dependencies.
func NewOptimizeTool(analyzer *analyze.Analyzer, optimizer *rewrite.Optimizer) *OptimizeTool {
	return &OptimizeTool{analyzer: analyzer, optimizer: optimizer}
}

// Definition returns the MCP tool definition for registration.
func (t *OptimizeTool) Definition() mcp.Tool {
	return mcp.NewTool("prompt_optimize",
		mcp.WithDescription(
			"Rewrite a prompt: remove redundancy, insert missing framework "+
				"sections, correct altitude, and apply model-specific rules. "+
				"Returns the rewritten prompt, the list of applied techniques, "+
				"before/after deltas, and a fresh analysis of the result as JSON.",
		),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The prompt text to optimize."),
		),
		mcp.WithString("model",
			mcp.Description("Target model for model-specific rules. Defaults to the catalog default."),
			mcp.Enum(modelEnum(t.analyzer.Catalog())...),
		),
		mcp.WithString("level",
			mcp.Description("Optimization level. Defaults to standard."),
			mcp.Enum("quick", "standard", "advanced"),
		),
		mcp.WithString("format",
			mcp.Description("Output-format description to insert when the prompt has none."),
			mcp.Enum("standard", "structured", "article", "bullets", "data"),
		),
		mcp.WithBoolean("concise",
			mcp.Description("Add a conciseness constraint."),
		),
		mcp.WithBoolean("no_preamble",
			mcp.Description("Add a no-preamble constraint."),
		),
	)
}

// Handle processes the prompt_optimize tool call.
func (t *OptimizeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt := req.GetString("prompt", "")
	model := models.ID(req.GetString("model", ""))
	level := rewrite.ParseLevel(req.GetString("level", ""))

	opts := rewrite.Options{
		Format:     rewrite.ParseFormat(req.GetString("format", "")),
		Concise:    req.GetBool("concise", false),
		NoPreamble: req.GetBool("no_preamble", false),
	}

	report := t.analyzer.Analyze(prompt, model)
	result := t.optimizer.Optimize(prompt, report, model, level, opts)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
