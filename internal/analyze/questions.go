package analyze

import "strings"

// Question is a follow-up question descriptor surfaced to the caller when a
// prompt leaves an important dimension unspecified.
type Question struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Question    string `json:"question"`
	Placeholder string `json:"placeholder"`
}

// maxFollowUpQuestions caps how many questions are surfaced per prompt.
const maxFollowUpQuestions = 3

// QuestionGroup pairs task-type keywords with the questions they trigger.
type QuestionGroup struct {
	Keywords  []string
	Questions []Question
}

// QuestionTable is the static follow-up question configuration. Groups are
// checked in order and only the first matching group fires.
type QuestionTable struct {
	Groups []QuestionGroup
	Goal   Question // appended when the task component is missing
	Avoid  Question // always generated, but may be truncated away
}

// DefaultQuestionTable returns the built-in question table.
func DefaultQuestionTable() QuestionTable {
	return QuestionTable{
		Groups: []QuestionGroup{
			{
				Keywords: []string{"code", "script", "program"},
				Questions: []Question{
					{
						ID:          "language",
						Label:       "Language & version",
						Question:    "Which programming language and version should be used?",
						Placeholder: "e.g. Python 3.12, Go 1.25",
					},
					{
						ID:          "constraints",
						Label:       "Technical constraints",
						Question:    "Are there libraries, performance limits, or style rules to respect?",
						Placeholder: "e.g. stdlib only, must run under 100ms",
					},
				},
			},
			{
				Keywords: []string{"email", "letter", "message"},
				Questions: []Question{
					{
						ID:          "tone",
						Label:       "Tone",
						Question:    "What tone should the message strike?",
						Placeholder: "e.g. formal, warm, direct",
					},
					{
						ID:          "recipient",
						Label:       "Recipient",
						Question:    "Who is the recipient and what is your relationship to them?",
						Placeholder: "e.g. my manager of three years",
					},
				},
			},
			{
				Keywords: []string{"write", "article", "blog"},
				Questions: []Question{
					{
						ID:          "length",
						Label:       "Length",
						Question:    "Roughly how long should the piece be?",
						Placeholder: "e.g. 800 words, two paragraphs",
					},
					{
						ID:          "style",
						Label:       "Style",
						Question:    "What style or voice should the writing use?",
						Placeholder: "e.g. conversational, journalistic",
					},
				},
			},
		},
		Goal: Question{
			ID:          "goal",
			Label:       "Primary goal",
			Question:    "What is the primary goal of this prompt?",
			Placeholder: "e.g. convince my boss a raise is deserved",
		},
		Avoid: Question{
			ID:          "avoid",
			Label:       "What to avoid",
			Question:    "Is there anything the response must avoid?",
			Placeholder: "e.g. jargon, apologies, mentioning competitors",
		},
	}
}

// FollowUpQuestions returns up to three follow-up questions for text, given
// its report. Generation order is task-specific questions, then the goal
// question (only when the task component is missing), then the avoid
// question; truncation to three happens last, so the avoid question can be
// silently dropped when earlier questions fill the quota.
func (a *Analyzer) FollowUpQuestions(text string, report *Report) []Question {
	lower := strings.ToLower(text)

	var out []Question
	for _, group := range a.questions.Groups {
		if containsAny(lower, group.Keywords) {
			out = append(out, group.Questions...)
			break
		}
	}

	if !report.Components.Flags.Task {
		out = append(out, a.questions.Goal)
	}
	out = append(out, a.questions.Avoid)

	if len(out) > maxFollowUpQuestions {
		out = out[:maxFollowUpQuestions]
	}
	return out
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
