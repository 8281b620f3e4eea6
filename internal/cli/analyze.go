package cli

import (
	"encoding/json"
	"fmt"

	"github.com/HartBrook/pronghorn/internal/analyze"
	"github.com/HartBrook/pronghorn/internal/config"
	"github.com/HartBrook/pronghorn/internal/models"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type analyzeOptions struct {
	model     string
	file      string
	jsonOut   bool
	questions bool
}

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [prompt]",
		Short: "Score a prompt against the component framework",
		Long: `Scores a prompt against the 10-component framework, the context
metrics (token efficiency, signal density, altitude, redundancy), and
model-fit heuristics, then prints the combined 0-10 score.

The prompt can be passed as an argument, read from a file with --file, or
piped on stdin.`,
		Example: `  pronghorn analyze "Write me an email to my boss"
  pronghorn analyze --file prompt.txt --model haiku
  cat prompt.txt | pronghorn analyze --json
  pronghorn analyze --questions "Help me with a python script"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Target model: opus, sonnet, or haiku")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the prompt from a file (- for stdin)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVarP(&opts.questions, "questions", "q", false, "Also print follow-up questions")

	return cmd
}

func runAnalyze(args []string, opts *analyzeOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	text, err := readPrompt(args, opts.file)
	if err != nil {
		return err
	}

	model := opts.model
	if model == "" {
		model = cfg.Model
	}

	analyzer := analyze.New(cfg.Catalog())
	report := analyzer.Analyze(text, models.ID(model))

	if opts.jsonOut {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	displayReport(report)

	if opts.questions {
		fmt.Println()
		displayQuestions(analyzer.FollowUpQuestions(text, report))
	}

	return nil
}

var titleCaser = cases.Title(language.English)

// displayReport renders the analysis report.
func displayReport(report *analyze.Report) {
	fmt.Println()
	fmt.Printf("  %s %s  %s\n",
		scoreColored(report.Overall),
		dim(fmt.Sprintf("/ %d", report.Overall.MaxScore)),
		ratingColored(report.Overall.Rating),
	)
	fmt.Println()

	// Component checklist
	fmt.Printf("  %s (%d/10 present)\n", dim("Components"), report.Components.PresentCount)
	flagValues := componentChecklist(report.Components.Flags)
	for i, rule := range analyze.ComponentRules {
		icon := errorIcon
		if flagValues[i] {
			icon = successIcon
		}
		fmt.Printf("    %s %s\n", icon, rule.Label)
	}
	fmt.Println()

	// Context metrics
	ce := report.ContextEngineering
	printInfo("Tokens", fmt.Sprintf("%d (approx.)", report.TokenCount))
	printInfo("Token efficiency", fmt.Sprintf("%d%% — %s", ce.TokenEfficiency.Efficiency, titleCaser.String(ce.TokenEfficiency.Rating)))
	printInfo("Signal density", fmt.Sprintf("%d — %s", ce.SignalDensity.Density, titleCaser.String(ce.SignalDensity.Rating)))
	printInfo("Altitude", string(ce.Altitude))
	printInfo("Redundancy", fmt.Sprintf("%d repeats — %s", ce.Redundancy.Score, titleCaser.String(ce.Redundancy.Level)))
	fmt.Println()

	// Model fit
	fmt.Printf("  %s: %d%% with %s\n", dim("Model fit"), report.ModelFit.Compatibility, report.ModelFit.Model)
	for _, s := range report.ModelFit.Strengths {
		fmt.Printf("    %s %s\n", successIcon, s)
	}
	for _, issue := range report.ModelFit.Issues {
		fmt.Printf("    %s %s\n", warningIcon, issue)
	}
}

// componentChecklist returns the flags in framework order.
func componentChecklist(f analyze.ComponentFlags) []bool {
	return []bool{
		f.Role, f.Tone, f.Background, f.Task, f.Examples,
		f.ChainOfThought, f.OutputFormat, f.Constraints, f.Prefill, f.XMLStructure,
	}
}

// displayQuestions renders follow-up questions.
func displayQuestions(questions []analyze.Question) {
	if len(questions) == 0 {
		printSuccess("No follow-up questions — the prompt covers the essentials")
		return
	}
	fmt.Printf("  %s\n", dim("Follow-up questions"))
	for _, q := range questions {
		fmt.Printf("    %s %s\n", info("?"), q.Question)
		fmt.Printf("      %s\n", dim(q.Placeholder))
	}
}

func scoreColored(overall analyze.Overall) string {
	return ratingSprint(overall.Rating.Color)(fmt.Sprintf("%.1f", overall.Score))
}

func ratingColored(r analyze.Rating) string {
	return ratingSprint(r.Color)(r.Label)
}

// ratingSprint maps a report color name to a color helper.
func ratingSprint(name string) func(a ...interface{}) string {
	switch name {
	case "green":
		return success
	case "teal", "blue":
		return info
	case "yellow":
		return warning
	case "red":
		return danger
	default:
		return dim
	}
}
