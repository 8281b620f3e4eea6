package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HartBrook/pronghorn/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPrompt_FromArgs(t *testing.T) {
	text, err := readPrompt([]string{"write", "a", "haiku"}, "")
	require.NoError(t, err)
	assert.Equal(t, "write a haiku", text)
}

func TestReadPrompt_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("prompt from file"), 0644))

	text, err := readPrompt(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "prompt from file", text)
}

func TestReadPrompt_FileWinsOverArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0644))

	text, err := readPrompt([]string{"from", "args"}, path)
	require.NoError(t, err)
	assert.Equal(t, "from file", text)
}

func TestReadPrompt_MissingFile(t *testing.T) {
	_, err := readPrompt(nil, filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	var pe *errors.PronghornError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, errors.ErrPromptRead, pe.Code)
}
