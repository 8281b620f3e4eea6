package cli

import (
	"github.com/HartBrook/pronghorn/internal/analyze"
	"github.com/HartBrook/pronghorn/internal/config"
	"github.com/HartBrook/pronghorn/internal/models"
	"github.com/spf13/cobra"
)

// NewQuestionsCmd creates the questions command.
func NewQuestionsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "questions [prompt]",
		Short: "Show follow-up questions for a prompt",
		Long: `Prints up to three follow-up questions whose answers would most improve
the prompt: task-specific questions first (language for code, tone and
recipient for email, length and style for writing), then the primary goal
when no clear task was found, then what to avoid.`,
		Example: `  pronghorn questions "Help me with a python script"
  pronghorn questions --file prompt.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			text, err := readPrompt(args, file)
			if err != nil {
				return err
			}

			analyzer := analyze.New(cfg.Catalog())
			report := analyzer.Analyze(text, models.ID(cfg.Model))
			displayQuestions(analyzer.FollowUpQuestions(text, report))

			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the prompt from a file (- for stdin)")

	return cmd
}
