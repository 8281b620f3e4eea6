package cli

import (
	"io"
	"os"
	"strings"

	"github.com/HartBrook/pronghorn/internal/errors"
)

// readPrompt resolves the prompt text from, in order: an explicit file
// (where "-" means stdin), positional arguments joined by spaces, or piped
// stdin. An interactive terminal with no arguments is an error.
func readPrompt(args []string, file string) (string, error) {
	if file != "" {
		if file == "-" {
			return readStdin()
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return "", errors.PromptRead(file, err)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if stdinPiped() {
		return readStdin()
	}

	return "", errors.PromptEmpty()
}

func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.PromptRead("stdin", err)
	}
	return string(data), nil
}

func stdinPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}
