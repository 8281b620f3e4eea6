package rewrite

import (
	"testing"

	"github.com/HartBrook/pronghorn/internal/analyze"
	"github.com/HartBrook/pronghorn/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestState builds a pipeline state the way Optimize does, with the
// original report produced from the same text.
func newTestState(text string, model models.ID, opts Options) *state {
	analyzer := analyze.New(models.DefaultCatalog())
	return &state{
		text:     text,
		source:   text,
		original: analyzer.Analyze(text, model),
		model:    models.DefaultCatalog().Get(model),
		opts:     opts,
	}
}

func TestDedupeSentences(t *testing.T) {
	t.Run("removes duplicates", func(t *testing.T) {
		out, removed := dedupeSentences("Do the thing. do the thing. Next step here.")
		assert.Equal(t, 1, removed)
		assert.Equal(t, "Do the thing. Next step here.", out)
	})

	t.Run("clean text passes through unchanged", func(t *testing.T) {
		text := "First point.\n\nSecond point."
		out, removed := dedupeSentences(text)
		assert.Equal(t, 0, removed)
		assert.Equal(t, text, out)
	})

	t.Run("idempotent", func(t *testing.T) {
		once, removed := dedupeSentences("Same line. Same line. Other line.")
		require.Equal(t, 1, removed)

		twice, removed := dedupeSentences(once)
		assert.Equal(t, 0, removed)
		assert.Equal(t, once, twice)
	})

	t.Run("empty", func(t *testing.T) {
		out, removed := dedupeSentences("")
		assert.Equal(t, "", out)
		assert.Equal(t, 0, removed)
	})
}

func TestStripFillerWords(t *testing.T) {
	out, count := stripFillerWords("This is very simple and really quite good.")
	assert.Equal(t, 3, count)
	assert.Equal(t, "This is simple and good.", out)

	out, count = stripFillerWords("No filler here.")
	assert.Equal(t, 0, count)
	assert.Equal(t, "No filler here.", out)
}

func TestRemoveRedundancy_RecordsTechniques(t *testing.T) {
	s := newTestState("Keep it very short. Keep it very short.", models.Opus, Options{})
	removeRedundancy(s)

	require.Len(t, s.techniques, 2)
	assert.Equal(t, "Redundancy removal", s.techniques[0].Name)
	assert.Equal(t, "Removed 1 duplicate sentence", s.techniques[0].Description)
	assert.Equal(t, "Filler removal", s.techniques[1].Name)
	assert.NotContains(t, s.text, "very")
}

func TestImproveClarity(t *testing.T) {
	s := newTestState("bread  and   butter", models.Opus, Options{})
	improveClarity(s)
	assert.Equal(t, "bread and butter", s.text)
}
