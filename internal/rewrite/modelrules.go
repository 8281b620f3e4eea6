package rewrite

import (
	"strings"

	"github.com/HartBrook/pronghorn/internal/analyze"
	"github.com/HartBrook/pronghorn/internal/models"
)

// applyModelRules dispatches to the per-model append/insert rules. Like the
// analyzer's fit rules, the switch is closed over the three catalog models,
// with the default branch doubling as the unknown-ID fallback.
func applyModelRules(s *state) {
	switch s.model.ID {
	case models.Sonnet:
		sonnetRules(s)
	case models.Haiku:
		haikuRules(s)
	default:
		opusRules(s)
	}
}

// opusRules push for depth: elaboration on creative work, explicit
// reasoning on analytical work, and motivation on long prompts.
func opusRules(s *state) {
	src := s.source

	if analyze.IsCreativeTask(src) && !analyze.HasElaborationLanguage(src) {
		s.text += "\n\nGo beyond the basics: include unexpected angles or details that make the result distinctive."
		s.record(
			"Elaboration request",
			"Asked for work beyond the obvious on a creative task",
			"Counters the model's tendency to play it safe",
		)
	}

	if analyze.IsAnalyticalTask(src) && !s.original.Components.Flags.ChainOfThought {
		s.text += "\n\nLay out your reasoning in a clearly marked section before giving the final answer."
		s.record(
			"Reasoning structure",
			"Requested a visible reasoning section for an analytical task",
			"Surfaced reasoning is easier to verify and correct",
		)
	}

	if len(src) > 200 && !analyze.HasCausalLanguage(src) {
		insertAfterConstraints(s, "This matters because the output will be used as-is, so precision pays off.")
		s.record(
			"Motivation",
			"Explained why the task matters",
			"Models weight instructions more heavily when the stakes are stated",
		)
	}
}

// sonnetRules add an explicit step-by-step request when none exists.
func sonnetRules(s *state) {
	if s.original.Components.Flags.ChainOfThought {
		return
	}
	s.text += "\n\nThink step by step through the problem before answering."
	s.record(
		"Step-by-step reasoning",
		"Added an explicit step-by-step request",
		"Sequential reasoning is this model's strongest mode",
	)
}

// haikuRules ground short prompts that carry no context of their own.
func haikuRules(s *state) {
	src := s.source
	if len(src) >= 100 || strings.Contains(strings.ToLower(src), "context") {
		return
	}
	s.text = "[CONTEXT]: State the relevant background in one or two sentences before the request below.\n\n" + s.text
	s.record(
		"Context grounding",
		"Prepended a context section for a short prompt",
		"A fast model can't infer background it was never given",
	)
}

// insertAfterConstraints places sentence on its own line directly after the
// [CONSTRAINTS] marker, or appends it when no such section exists.
func insertAfterConstraints(s *state, sentence string) {
	const marker = "[CONSTRAINTS]:"
	idx := strings.Index(s.text, marker)
	if idx < 0 {
		s.text += "\n\n" + sentence
		return
	}
	at := idx + len(marker)
	s.text = s.text[:at] + "\n" + sentence + s.text[at:]
}
