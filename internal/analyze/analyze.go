// Package analyze scores prompts against a fixed heuristic rubric.
//
// Everything here is a pure, deterministic computation over the input
// string: no I/O, no shared state between calls. The only inputs besides
// the text are the injected model catalog and question table.
package analyze

import (
	"strings"

	"github.com/HartBrook/pronghorn/internal/models"
)

// Analyzer scores prompt text against the component framework, the
// context-engineering metrics, and per-model fit heuristics.
type Analyzer struct {
	catalog   models.Catalog
	questions QuestionTable
}

// New creates an Analyzer with the given model catalog and the default
// follow-up question table.
func New(catalog models.Catalog) *Analyzer {
	return &Analyzer{catalog: catalog, questions: DefaultQuestionTable()}
}

// NewWithQuestions creates an Analyzer with a custom question table.
func NewWithQuestions(catalog models.Catalog, questions QuestionTable) *Analyzer {
	return &Analyzer{catalog: catalog, questions: questions}
}

// Catalog returns the analyzer's model catalog.
func (a *Analyzer) Catalog() models.Catalog {
	return a.catalog
}

// Analyze produces a full report for text against the given model. Any
// string is accepted; empty or whitespace-only input yields the canonical
// empty report. Unknown model IDs resolve to the catalog default.
func (a *Analyzer) Analyze(text string, model models.ID) *Report {
	m := a.catalog.Get(model)

	if strings.TrimSpace(text) == "" {
		return emptyReport(m)
	}

	components := detectComponents(text)
	tokens := estimateTokens(text)

	ce := ContextEngineering{
		TokenEfficiency: tokenEfficiency(text, tokens),
		SignalDensity:   signalDensity(text),
		Altitude:        classifyAltitude(text),
		Redundancy:      measureRedundancy(text),
	}

	fit := modelFit(text, components.Flags, m)

	return &Report{
		TokenCount:         tokens,
		Components:         components,
		ContextEngineering: ce,
		ModelFit:           fit,
		Overall:            overallScore(components, ce, fit),
	}
}

// emptyReport is the fixed report for empty/whitespace input: all zeros,
// altitude unknown, rating Waiting. The component invariant still holds:
// nothing is present, all ten are missing.
func emptyReport(m models.Model) *Report {
	return &Report{
		TokenCount: 0,
		Components: Components{
			Flags:        ComponentFlags{},
			PresentCount: 0,
			MissingCount: len(ComponentRules),
			Score:        0,
			Missing:      allComponentLabels(),
		},
		ContextEngineering: ContextEngineering{
			TokenEfficiency: TokenEfficiency{Total: 0, Useful: 0, Efficiency: 0, Rating: "poor"},
			SignalDensity:   SignalDensity{Density: 0, HighValueCount: 0, FillerCount: 0, Rating: "low"},
			Altitude:        AltitudeUnknown,
			Redundancy:      Redundancy{Score: 0, Level: "low"},
		},
		ModelFit: ModelFit{
			Compatibility: 0,
			Strengths:     nil,
			Issues:        nil,
			Model:         m.DisplayName,
		},
		Overall: Overall{
			Score:     0,
			MaxScore:  10,
			Rating:    Rating{Label: "Waiting", Color: "gray"},
			Breakdown: Breakdown{},
		},
	}
}
