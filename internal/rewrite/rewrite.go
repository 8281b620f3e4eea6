// Package rewrite transforms prompts based on an analysis report.
//
// Optimization is a strictly ordered pipeline of text-to-text stages. All
// structural decisions key off the report captured before the pipeline ran,
// never off intermediate text, so later stages don't react to earlier
// stages' insertions. Each call carries its own accumulator; the Optimizer
// holds no per-call state and is safe for concurrent use.
package rewrite

import (
	"strings"

	"github.com/HartBrook/pronghorn/internal/analyze"
	"github.com/HartBrook/pronghorn/internal/models"
)

// Level selects how aggressively the prompt is rewritten.
type Level string

const (
	LevelQuick    Level = "quick"
	LevelStandard Level = "standard"
	LevelAdvanced Level = "advanced"
)

// ParseLevel maps a string to a Level, falling back to standard for
// anything unrecognized.
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelQuick, LevelStandard, LevelAdvanced:
		return Level(s)
	default:
		return LevelStandard
	}
}

// Format selects the inserted output-format description.
type Format string

const (
	FormatStandard   Format = "standard"
	FormatStructured Format = "structured"
	FormatArticle    Format = "article"
	FormatBullets    Format = "bullets"
	FormatData       Format = "data"
)

// ParseFormat maps a string to a Format, falling back to standard for
// anything unrecognized.
func ParseFormat(s string) Format {
	switch Format(s) {
	case FormatStandard, FormatStructured, FormatArticle, FormatBullets, FormatData:
		return Format(s)
	default:
		return FormatStandard
	}
}

// Options tunes the rewrite. Unrecognized host options simply never reach
// this struct.
type Options struct {
	Format     Format
	Concise    bool
	NoPreamble bool

	// ShowThinking is accepted for forward compatibility; no stage
	// currently consumes it.
	ShowThinking bool
}

// Technique records one transformation the optimizer applied, surfaced to
// the caller for explanation.
type Technique struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// Result is the outcome of one optimize call.
type Result struct {
	Original     string          `json:"original"`
	Optimized    string          `json:"optimized"`
	Techniques   []Technique     `json:"techniques"`
	Improvements Improvements    `json:"improvements"`
	NewAnalysis  *analyze.Report `json:"newAnalysis"`
}

// Optimizer rewrites prompts and re-scores the result.
type Optimizer struct {
	analyzer *analyze.Analyzer
}

// New creates an Optimizer around the given analyzer. The analyzer is also
// used to re-score the rewritten text for before/after deltas.
func New(analyzer *analyze.Analyzer) *Optimizer {
	return &Optimizer{analyzer: analyzer}
}

// state is the per-call accumulator threaded through the pipeline stages.
type state struct {
	text       string          // working text, mutated by stages
	source     string          // original input, used by sniffing rules
	original   *analyze.Report // report for the original input
	model      models.Model
	opts       Options
	techniques []Technique
}

func (s *state) record(name, description, impact string) {
	s.techniques = append(s.techniques, Technique{Name: name, Description: description, Impact: impact})
}

// Optimize rewrites text according to level and options. The report must
// have been produced by analyzing the same text with the same model; the
// MCP and CLI surfaces guarantee this by construction. Violating it yields
// a meaningless delta report, not an error.
func (o *Optimizer) Optimize(text string, report *analyze.Report, model models.ID, level Level, opts Options) *Result {
	s := &state{
		text:     text,
		source:   text,
		original: report,
		model:    o.analyzer.Catalog().Get(model),
		opts:     opts,
	}

	// Stages 1-2 run at every level.
	removeRedundancy(s)
	improveClarity(s)

	// Structural stages never fire on empty input: there is nothing to
	// frame, and inserting sections around nothing helps nobody.
	structural := strings.TrimSpace(s.source) != ""

	if structural && (level == LevelStandard || level == LevelAdvanced) {
		addFrameworkStructure(s)
		correctAltitude(s)
		applyModelRules(s)
	}

	if structural && level == LevelAdvanced {
		addExamples(s)
		addChainOfThought(s)
		enhanceStructure(s)
	}

	newAnalysis := o.analyzer.Analyze(s.text, model)

	return &Result{
		Original:     text,
		Optimized:    s.text,
		Techniques:   s.techniques,
		Improvements: computeImprovements(report, newAnalysis),
		NewAnalysis:  newAnalysis,
	}
}
