package analyze

import "regexp"

// ComponentRule is one entry of the 10-component framework checklist. A
// component is present when any of its patterns matches the text. Rules are
// deliberately independent so each can be tested on its own.
type ComponentRule struct {
	ID       string
	Label    string
	patterns []*regexp.Regexp
}

// Match reports whether the component is present in text.
func (r ComponentRule) Match(text string) bool {
	for _, p := range r.patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// toneWords are the adjectives that, near "tone"/"style"/"voice", mark an
// explicit tone instruction.
const toneWords = `professional|casual|formal|friendly|technical|conversational|academic|creative`

// taskVerbs are the verbs that open a task description.
const taskVerbs = `write|create|analyze|generate|explain|summarize|evaluate|design|build|help`

// ComponentRules is the ordered component framework. Order matters: flag
// structs, missing-label lists, and rendering all follow it.
var ComponentRules = []ComponentRule{
	{
		ID:    "role",
		Label: "Role definition",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\[ROLE\]`),
			regexp.MustCompile(`(?i)you are an? [\w ]{0,30}(expert|specialist|assistant|professional)`),
			regexp.MustCompile(`(?i)\bact as an? `),
			regexp.MustCompile(`(?i)your role is`),
		},
	},
	{
		ID:    "tone",
		Label: "Tone & style",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(tone|style|voice).{0,20}(` + toneWords + `)`),
			regexp.MustCompile(`(?i)(` + toneWords + `).{0,20}(tone|style|voice)`),
		},
	},
	{
		ID:    "background",
		Label: "Background context",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\[BACKGROUND\]`),
			regexp.MustCompile(`\[CONTEXT\]`),
			regexp.MustCompile(`(?i)background:`),
			regexp.MustCompile(`(?i)context:`),
			regexp.MustCompile(`(?i)given that`),
		},
	},
	{
		ID:    "task",
		Label: "Task description",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(` + taskVerbs + `)\b.{5,}`),
		},
	},
	{
		ID:    "examples",
		Label: "Examples",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\[EXAMPLE`),
			regexp.MustCompile(`(?i)for example`),
			regexp.MustCompile(`(?i)\be\.g\.`),
			regexp.MustCompile(`(?i)such as:`),
			regexp.MustCompile(`(?i)example:`),
		},
	},
	{
		ID:    "chainOfThought",
		Label: "Chain of thought",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)think step.{0,20}step`),
			regexp.MustCompile(`(?i)\bthinking\b`),
			regexp.MustCompile(`(?i)reason through`),
			regexp.MustCompile(`(?i)analyze.{1,60}before`),
			regexp.MustCompile(`(?i)\bfirst\b.{1,80}\bthen\b`),
		},
	},
	{
		ID:    "outputFormat",
		Label: "Output format",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\[OUTPUT`),
			regexp.MustCompile(`\[FORMAT\]`),
			regexp.MustCompile(`(?i)\boutput\b.{0,30}(format|should be|must be)`),
			regexp.MustCompile(`(?i)\bformat\b.{0,20}:`),
			regexp.MustCompile(`(?i)\b(json|markdown|html|csv)\b`),
		},
	},
	{
		ID:    "constraints",
		Label: "Constraints",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\[CONSTRAINTS\]`),
			regexp.MustCompile(`\[REQUIREMENTS\]`),
			regexp.MustCompile(`(?i)must (not|never|always)`),
			regexp.MustCompile(`(?i)should (not|never|always)`),
			regexp.MustCompile(`(?i)\bdo not\b`),
		},
	},
	{
		// Prefill is nearly unreachable from raw user text: only the two
		// literal markers below count. Known limitation, kept on purpose.
		ID:    "prefill",
		Label: "Prefill",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\[OUTPUT\]:`),
			regexp.MustCompile(`Begin with:`),
		},
	},
	{
		ID:    "xmlStructure",
		Label: "XML structure",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`<[a-zA-Z][^>]*>`),
		},
	},
}

// detectComponents runs every component rule against text and aggregates
// the checklist.
func detectComponents(text string) Components {
	var c Components
	flags := make([]bool, len(ComponentRules))

	for i, rule := range ComponentRules {
		if rule.Match(text) {
			flags[i] = true
			c.PresentCount++
		} else {
			c.Missing = append(c.Missing, rule.Label)
		}
	}

	c.Flags = ComponentFlags{
		Role:           flags[0],
		Tone:           flags[1],
		Background:     flags[2],
		Task:           flags[3],
		Examples:       flags[4],
		ChainOfThought: flags[5],
		OutputFormat:   flags[6],
		Constraints:    flags[7],
		Prefill:        flags[8],
		XMLStructure:   flags[9],
	}
	c.MissingCount = len(ComponentRules) - c.PresentCount
	c.Score = c.PresentCount * 10
	return c
}

// allComponentLabels returns every component label in framework order.
func allComponentLabels() []string {
	labels := make([]string, len(ComponentRules))
	for i, rule := range ComponentRules {
		labels[i] = rule.Label
	}
	return labels
}
