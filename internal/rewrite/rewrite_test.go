package rewrite

import (
	"strings"
	"testing"

	"github.com/HartBrook/pronghorn/internal/analyze"
	"github.com/HartBrook/pronghorn/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOptimizer() (*analyze.Analyzer, *Optimizer) {
	analyzer := analyze.New(models.DefaultCatalog())
	return analyzer, New(analyzer)
}

func optimizeText(t *testing.T, text string, model models.ID, level Level, opts Options) *Result {
	t.Helper()
	analyzer, optimizer := newTestOptimizer()
	report := analyzer.Analyze(text, model)
	return optimizer.Optimize(text, report, model, level, opts)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelQuick, ParseLevel("quick"))
	assert.Equal(t, LevelAdvanced, ParseLevel("advanced"))
	assert.Equal(t, LevelStandard, ParseLevel(""))
	assert.Equal(t, LevelStandard, ParseLevel("extreme"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatBullets, ParseFormat("bullets"))
	assert.Equal(t, FormatStandard, ParseFormat(""))
	assert.Equal(t, FormatStandard, ParseFormat("sonnet-form"))
}

func TestOptimize_QuickNeverInsertsSections(t *testing.T) {
	text := "Be helpful. Be creative. Do your best."
	result := optimizeText(t, text, models.Opus, LevelQuick, Options{Format: FormatStandard})

	assert.Equal(t, text, result.Optimized)
	assert.Empty(t, result.Techniques)
	for _, marker := range []string{"[ROLE]", "[TASK]", "[OUTPUT FORMAT]", "[CONSTRAINTS]", "[NEVER]"} {
		assert.NotContains(t, result.Optimized, marker)
	}
}

func TestOptimize_QuickStillCleansText(t *testing.T) {
	text := "Keep it very short. Keep it very short."
	result := optimizeText(t, text, models.Opus, LevelQuick, Options{})

	assert.Equal(t, "Keep it short.", result.Optimized)
	require.Len(t, result.Techniques, 2)
	assert.True(t, result.Improvements.TokenDelta < 0)
}

func TestOptimize_EmptyInput(t *testing.T) {
	for _, level := range []Level{LevelQuick, LevelStandard, LevelAdvanced} {
		result := optimizeText(t, "", models.Opus, level, Options{})

		assert.Equal(t, "", result.Optimized, "level %s", level)
		assert.Empty(t, result.Techniques, "level %s", level)
		assert.Equal(t, 0.0, result.NewAnalysis.Overall.Score, "level %s", level)
	}
}

func TestOptimize_WhitespaceInputSkipsStructuralStages(t *testing.T) {
	result := optimizeText(t, "   ", models.Opus, LevelAdvanced, Options{})
	assert.NotContains(t, result.Optimized, "[")
	assert.NotContains(t, result.Optimized, "<")
}

func TestOptimize_StandardEmail(t *testing.T) {
	text := "Write me a professional email to my boss asking for a raise"
	result := optimizeText(t, text, models.Opus, LevelStandard, Options{Format: FormatStandard})

	assert.Equal(t, text, result.Original)
	assert.True(t, strings.HasPrefix(result.Optimized, "[ROLE]:"))
	assert.Contains(t, result.Optimized, text)
	assert.Contains(t, result.Optimized, "[OUTPUT FORMAT]:")
	assert.Contains(t, result.Optimized, "[CONSTRAINTS]:")
	// the original already states a task, so no task section is inserted
	assert.NotContains(t, result.Optimized, "[TASK]")

	assert.Greater(t, result.NewAnalysis.Overall.Score, result.Improvements.ScoreDelta)
	assert.Greater(t, result.NewAnalysis.Overall.Score, 0.0)
	assert.True(t, result.Improvements.IsBetter)
	assert.Greater(t, result.Improvements.ScoreDelta, 0.0)

	// the inserted writer persona carries an explicit tone
	assert.True(t, result.NewAnalysis.Components.Flags.Role)
	assert.True(t, result.NewAnalysis.Components.Flags.Tone)
	assert.True(t, result.NewAnalysis.Components.Flags.OutputFormat)
	assert.True(t, result.NewAnalysis.Components.Flags.Constraints)
}

func TestOptimize_AdvancedEmailTagsSections(t *testing.T) {
	text := "Write me a professional email to my boss asking for a raise"
	result := optimizeText(t, text, models.Opus, LevelAdvanced, Options{Format: FormatStandard})

	assert.Contains(t, result.Optimized, "<role>")
	assert.Contains(t, result.Optimized, "</role>")
	assert.Contains(t, result.Optimized, "<output_format>")
	assert.True(t, strings.HasSuffix(result.Optimized, "</constraints>"), "got %q", result.Optimized)
	assert.NotContains(t, result.Optimized, "[ROLE]:")
	assert.True(t, result.NewAnalysis.Components.Flags.XMLStructure)
}

func TestOptimize_NoChangeIsNotBetter(t *testing.T) {
	text := "Focus on clarity. Prioritize the user's intent."
	result := optimizeText(t, text, models.Opus, LevelQuick, Options{})

	assert.Equal(t, text, result.Optimized)
	assert.Equal(t, 0.0, result.Improvements.ScoreDelta)
	assert.False(t, result.Improvements.IsBetter)
	assert.Equal(t, "0.000000", result.Improvements.CostPerCall)
}

func TestOptimize_UnknownModelUsesDefaultRules(t *testing.T) {
	// default model rules ask creative tasks to go beyond the obvious
	text := "Write a story about a dragon"
	result := optimizeText(t, text, models.ID("mystery"), LevelStandard, Options{Format: FormatStandard})
	assert.Contains(t, result.Optimized, "Go beyond the basics")
}
