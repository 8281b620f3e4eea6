package rewrite

import (
	"regexp"
	"strings"

	"github.com/HartBrook/pronghorn/internal/analyze"
)

// formatDescriptions maps each Format to the text inserted into the
// [OUTPUT FORMAT] section.
var formatDescriptions = map[Format]string{
	FormatStandard:   "Clear paragraphs with headings where they help.",
	FormatStructured: "Numbered sections with descriptive headings.",
	FormatArticle:    "A title, a short introduction, body sections, and a conclusion.",
	FormatBullets:    "Concise bullet points grouped by topic.",
	FormatData:       "A table or JSON object with clearly labeled fields.",
}

// formatDescription resolves opts.Format, defaulting to standard for
// unrecognized values.
func formatDescription(f Format) string {
	if d, ok := formatDescriptions[f]; ok {
		return d
	}
	return formatDescriptions[FormatStandard]
}

// addFrameworkStructure inserts the framework sections the original
// analysis found missing. All checks read the original report: sections
// inserted here never influence each other.
func addFrameworkStructure(s *state) {
	flags := s.original.Components.Flags
	var added []string
	body := s.text

	if !flags.Task {
		body = "[TASK]: " + body
	}
	if !flags.Role {
		body = inferRole(s.source) + "\n\n" + body
		added = append(added, "[ROLE]")
	}
	if !flags.Task {
		added = append(added, "[TASK]")
	}

	if !flags.OutputFormat {
		body += "\n\n[OUTPUT FORMAT]: " + formatDescription(s.opts.Format)
		added = append(added, "[OUTPUT FORMAT]")
	}

	if !flags.Constraints {
		lines := []string{"- Be accurate; say so when unsure rather than guessing."}
		if s.opts.Concise {
			lines = append(lines, "- Keep the response concise.")
		}
		if s.opts.NoPreamble {
			lines = append(lines, "- No preamble; lead with the answer.")
		}
		body += "\n\n[CONSTRAINTS]:\n" + strings.Join(lines, "\n")
		added = append(added, "[CONSTRAINTS]")
	}

	if s.original.ContextEngineering.Altitude == analyze.AltitudeTooHigh {
		body += "\n\n[NEVER]:\n- Pad the response with vague generalities.\n- Restate the request instead of answering it."
		added = append(added, "[NEVER]")
	}

	if len(added) == 0 {
		return
	}

	s.text = body
	s.record(
		"Framework structure",
		"Added missing sections: "+strings.Join(added, ", "),
		"Gives the model an explicit scaffold to follow",
	)
}

// inferRole picks a persona line by keyword-sniffing the original text.
func inferRole(text string) string {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, "code", "script", "program", "function"):
		return "[ROLE]: You are a senior software engineer who writes clear, well-tested code."
	case containsAny(lower, "write", "article", "blog", "essay"):
		return "[ROLE]: You are a professional writer who adapts tone and voice to the audience."
	case containsAny(lower, "analyze", "data", "report", "metrics"):
		return "[ROLE]: You are a meticulous analyst who grounds every claim in evidence."
	case containsAny(lower, "design"):
		return "[ROLE]: You are an experienced designer who balances aesthetics and usability."
	default:
		return "[ROLE]: You are a knowledgeable assistant who gives direct, accurate answers."
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

var xmlTagRe = regexp.MustCompile(`<[a-zA-Z][^>]*>`)

// sectionTags lists the bracketed markers enhanceStructure converts, in
// document order.
var sectionTags = []struct {
	marker string
	tag    string
}{
	{"[ROLE]:", "role"},
	{"[TASK]:", "task"},
	{"[OUTPUT FORMAT]:", "output_format"},
	{"[CONSTRAINTS]:", "constraints"},
}

// enhanceStructure converts bracketed section markers into XML-style tags.
// Skipped entirely when the text already contains any tag. Each section is
// closed before the next bracketed section, or at the end of the text — so
// a trailing constraints section gets its closing tag appended last.
func enhanceStructure(s *state) {
	if xmlTagRe.MatchString(s.text) {
		return
	}

	converted := false
	for _, sec := range sectionTags {
		if tagged, ok := tagSection(s.text, sec.marker, sec.tag); ok {
			s.text = tagged
			converted = true
		}
	}

	if converted {
		s.record(
			"XML structure",
			"Converted bracketed sections into XML-style tags",
			"Tagged sections parse more reliably than prose headers",
		)
	}
}

// tagSection replaces one bracketed marker with an opening tag and inserts
// the matching closing tag at the end of the marker's paragraph — or at the
// end of the text, which is how a trailing constraints section gets closed
// last.
func tagSection(text, marker, tag string) (string, bool) {
	idx := strings.Index(text, marker)
	if idx < 0 {
		return text, false
	}

	open := "<" + tag + ">"
	closing := "</" + tag + ">"
	head := text[:idx]
	rest := text[idx+len(marker):]

	end := strings.Index(rest, "\n\n")
	if end < 0 {
		return head + open + strings.TrimRight(rest, "\n") + closing, true
	}
	return head + open + rest[:end] + closing + rest[end:], true
}
