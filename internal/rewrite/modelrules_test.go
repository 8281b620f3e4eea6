package rewrite

import (
	"strings"
	"testing"

	"github.com/HartBrook/pronghorn/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSonnetRules(t *testing.T) {
	t.Run("adds a step-by-step request", func(t *testing.T) {
		s := newTestState("Summarize the findings", models.Sonnet, Options{})
		applyModelRules(s)

		assert.Contains(t, s.text, "Think step by step")
		require.Len(t, s.techniques, 1)
		assert.Equal(t, "Step-by-step reasoning", s.techniques[0].Name)
	})

	t.Run("skips when reasoning is already requested", func(t *testing.T) {
		text := "Summarize the findings. Think step by step."
		s := newTestState(text, models.Sonnet, Options{})
		applyModelRules(s)

		assert.Equal(t, text, s.text)
		assert.Empty(t, s.techniques)
	})
}

func TestHaikuRules(t *testing.T) {
	t.Run("grounds a short prompt", func(t *testing.T) {
		s := newTestState("Say hi", models.Haiku, Options{})
		applyModelRules(s)

		assert.True(t, strings.HasPrefix(s.text, "[CONTEXT]:"))
		assert.True(t, strings.HasSuffix(s.text, "Say hi"))
	})

	t.Run("skips when context is already given", func(t *testing.T) {
		text := "Say hi. Context: greeting a friend."
		s := newTestState(text, models.Haiku, Options{})
		applyModelRules(s)
		assert.Equal(t, text, s.text)
	})

	t.Run("skips long prompts", func(t *testing.T) {
		text := strings.Repeat("describe the onboarding flow in detail ", 4)
		require.GreaterOrEqual(t, len(text), 100)

		s := newTestState(text, models.Haiku, Options{})
		applyModelRules(s)
		assert.Equal(t, text, s.text)
	})
}

func TestOpusRules(t *testing.T) {
	t.Run("creative task gets an elaboration request", func(t *testing.T) {
		s := newTestState("Write a story about a dragon", models.Opus, Options{})
		applyModelRules(s)
		assert.Contains(t, s.text, "Go beyond the basics")
	})

	t.Run("analytical task gets a reasoning section", func(t *testing.T) {
		s := newTestState("Evaluate the proposal", models.Opus, Options{})
		applyModelRules(s)
		assert.Contains(t, s.text, "Lay out your reasoning")
	})

	t.Run("long prompt without causal framing gets motivation", func(t *testing.T) {
		text := "Draft the launch announcement for the new billing dashboard and cover " +
			"the rollout schedule, the pricing changes, the migration steps for " +
			"existing customers, and the support channels available during the " +
			"transition.\n\n[CONSTRAINTS]:\n- keep it factual"
		require.Greater(t, len(text), 200)

		s := newTestState(text, models.Opus, Options{})
		applyModelRules(s)

		// inserted directly under the constraints marker, not appended
		assert.Contains(t, s.text, "[CONSTRAINTS]:\nThis matters because")
	})

	t.Run("short prompt with causal framing passes through", func(t *testing.T) {
		text := "Fix the typo because the page is live"
		s := newTestState(text, models.Opus, Options{})
		applyModelRules(s)
		assert.Equal(t, text, s.text)
	})
}

func TestInsertAfterConstraints(t *testing.T) {
	s := &state{text: "no sections here"}
	insertAfterConstraints(s, "Appended.")
	assert.Equal(t, "no sections here\n\nAppended.", s.text)

	s = &state{text: "intro\n\n[CONSTRAINTS]:\n- a"}
	insertAfterConstraints(s, "Inserted.")
	assert.Equal(t, "intro\n\n[CONSTRAINTS]:\nInserted.\n- a", s.text)
}
