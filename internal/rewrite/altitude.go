package rewrite

import (
	"regexp"

	"github.com/HartBrook/pronghorn/internal/analyze"
)

var (
	stepMarkerRe = regexp.MustCompile(`(?i)\bstep \d+:\s*`)
	sequenceRe   = regexp.MustCompile(`(?i)\bfirst,?\s+(.+?)[,.]?\s+then,?\s+(.+?)[,.]?\s+(?:and\s+)?finally,?\s+(.+?)([.!?]|$)`)
)

// vagueSubstitutions are the canned replacements for too-high prompts.
// Order is fixed; each applies globally.
var vagueSubstitutions = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)\bbe professional\b`), "use formal language and industry-standard terminology"},
	{regexp.MustCompile(`(?i)\bbe helpful\b`), "give actionable guidance with concrete next steps"},
	{regexp.MustCompile(`(?i)\bbe creative\b`), "offer several distinct options or angles"},
	{regexp.MustCompile(`(?i)\bdo your best\b`), "prioritize accuracy and flag any uncertainty"},
}

// correctAltitude nudges the prompt toward principle-level language. The
// direction comes from the original report's classification; a just-right
// prompt passes through untouched with no record.
func correctAltitude(s *state) {
	switch s.original.ContextEngineering.Altitude {
	case analyze.AltitudeTooLow:
		text := stepMarkerRe.ReplaceAllString(s.text, "- ")
		text = sequenceRe.ReplaceAllString(text, "Work through it in order: $1, $2, and $3$4")
		s.text = text
		s.record(
			"Altitude correction",
			"Raised rigid step-by-step phrasing into guiding principles",
			"Leaves the model room to handle cases the steps didn't anticipate",
		)

	case analyze.AltitudeTooHigh:
		for _, sub := range vagueSubstitutions {
			s.text = sub.re.ReplaceAllString(s.text, sub.repl)
		}
		s.record(
			"Altitude correction",
			"Grounded vague exhortations in concrete instructions",
			"Concrete instructions produce measurably more consistent output",
		)
	}
}
