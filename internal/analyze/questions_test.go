package analyze

import (
	"testing"

	"github.com/HartBrook/pronghorn/internal/models"
	"github.com/stretchr/testify/assert"
)

func questionIDs(questions []Question) []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}

func TestFollowUpQuestions(t *testing.T) {
	a := testAnalyzer()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			// code group plus avoid; the task verb suppresses the goal question
			"code prompt",
			"Help me with a python script",
			[]string{"language", "constraints", "avoid"},
		},
		{
			// no task verb: the goal question fills the third slot and
			// the avoid question is truncated away
			"writing prompt without task verb",
			"a blog post about turtles",
			[]string{"length", "style", "goal"},
		},
		{
			"email prompt without task verb",
			"an email to the whole team",
			[]string{"tone", "recipient", "goal"},
		},
		{
			"vague prompt",
			"make it nicer",
			[]string{"goal", "avoid"},
		},
		{
			"clear task outside any group",
			"Summarize the meeting transcript",
			[]string{"avoid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := a.Analyze(tt.text, models.Opus)
			got := a.FollowUpQuestions(tt.text, report)

			assert.LessOrEqual(t, len(got), maxFollowUpQuestions)
			assert.Equal(t, tt.want, questionIDs(got))
		})
	}
}

func TestFollowUpQuestions_FirstGroupWins(t *testing.T) {
	a := testAnalyzer()
	// both the code and email groups match; only the first fires
	text := "Help me with a script for an email campaign"
	report := a.Analyze(text, models.Opus)

	got := questionIDs(a.FollowUpQuestions(text, report))
	assert.Contains(t, got, "language")
	assert.NotContains(t, got, "tone")
}

func TestFollowUpQuestions_CustomTable(t *testing.T) {
	table := QuestionTable{
		Goal:  Question{ID: "goal"},
		Avoid: Question{ID: "avoid"},
	}
	a := NewWithQuestions(models.DefaultCatalog(), table)

	report := a.Analyze("anything at all", models.Opus)
	got := questionIDs(a.FollowUpQuestions("anything at all", report))
	assert.Equal(t, []string{"goal", "avoid"}, got)
}
