package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/HartBrook/pronghorn/internal/analyze"
	"github.com/HartBrook/pronghorn/internal/models"
	"github.com/HartBrook/pronghorn/internal/rewrite"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOptimizeTool() *OptimizeTool {
	analyzer := analyze.New(models.DefaultCatalog())
	return NewOptimizeTool(analyzer, rewrite.New(analyzer))
}

func TestOptimizeTool_Definition(t *testing.T) {
	def := newOptimizeTool().Definition()

	assert.Equal(t, "prompt_optimize", def.Name)
	assert.Contains(t, def.InputSchema.Required, "prompt")
}

func TestOptimizeTool_Handle(t *testing.T) {
	tool := newOptimizeTool()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"prompt": "Write me a professional email to my boss asking for a raise",
		"model":  "opus",
		"level":  "standard",
	}

	result, err := tool.Handle(context.Background(), req)
	require.NoError(t, err)

	var res rewrite.Result
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &res))

	assert.True(t, strings.HasPrefix(res.Optimized, "[ROLE]:"))
	assert.True(t, res.Improvements.IsBetter)
	assert.NotEmpty(t, res.Techniques)
	require.NotNil(t, res.NewAnalysis)
	assert.Greater(t, res.NewAnalysis.Overall.Score, 0.0)
}

func TestOptimizeTool_Handle_UnknownLevelFallsBack(t *testing.T) {
	tool := newOptimizeTool()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"prompt": "the quarterly numbers, please",
		"level":  "extreme",
	}

	result, err := tool.Handle(context.Background(), req)
	require.NoError(t, err)

	var res rewrite.Result
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &res))

	// unknown levels run the standard pipeline, which inserts sections
	assert.Contains(t, res.Optimized, "[CONSTRAINTS]:")
}

func TestOptimizeTool_Handle_ConciseOption(t *testing.T) {
	tool := newOptimizeTool()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"prompt":  "the quarterly numbers, please",
		"concise": true,
	}

	result, err := tool.Handle(context.Background(), req)
	require.NoError(t, err)

	var res rewrite.Result
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &res))
	assert.Contains(t, res.Optimized, "- Keep the response concise.")
}
