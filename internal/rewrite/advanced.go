package rewrite

import (
	"strings"

	"github.com/HartBrook/pronghorn/internal/analyze"
)

// addExamples appends a generic structural example when the original prompt
// cares about format but shows none.
func addExamples(s *state) {
	if s.original.Components.Flags.Examples {
		return
	}
	lower := strings.ToLower(s.source)
	if !strings.Contains(lower, "format") || strings.Contains(lower, "example") {
		return
	}

	s.text += "\n\n[EXAMPLE]:\nInput: a short, representative request.\nOutput: the response, in exactly the requested format."
	s.record(
		"Example block",
		"Added a structural input/output example",
		"One example beats a paragraph of format description",
	)
}

// chainOfThoughtTemplate is the four-step systematic-reasoning scaffold.
const chainOfThoughtTemplate = `Approach this systematically:
1. Restate the goal in your own words.
2. List the key requirements and constraints.
3. Work through the problem before writing the answer.
4. Check the answer against the requirements.`

// addChainOfThought appends the reasoning scaffold for analytical or long
// prompts that never asked for reasoning.
func addChainOfThought(s *state) {
	if s.original.Components.Flags.ChainOfThought {
		return
	}
	if !analyze.IsAnalyticalTask(s.source) && len(s.source) <= 300 {
		return
	}

	s.text += "\n\n" + chainOfThoughtTemplate
	s.record(
		"Chain of thought",
		"Added a systematic reasoning scaffold",
		"Forces the hard thinking to happen before the answer",
	)
}
