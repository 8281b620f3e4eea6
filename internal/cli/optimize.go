package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/HartBrook/pronghorn/internal/analyze"
	"github.com/HartBrook/pronghorn/internal/config"
	"github.com/HartBrook/pronghorn/internal/models"
	"github.com/HartBrook/pronghorn/internal/rewrite"
	"github.com/spf13/cobra"
)

type optimizeOptions struct {
	model        string
	level        string
	format       string
	concise      bool
	noPreamble   bool
	showThinking bool
	file         string
	output       string
	showDiff     bool
	jsonOut      bool
}

// NewOptimizeCmd creates the optimize command.
func NewOptimizeCmd() *cobra.Command {
	opts := &optimizeOptions{}

	cmd := &cobra.Command{
		Use:   "optimize [prompt]",
		Short: "Rewrite a prompt to score higher",
		Long: `Analyzes a prompt, then rewrites it: duplicate sentences and filler are
removed at every level; at standard and above, missing framework sections
are inserted, altitude is corrected, and model-specific rules apply; at
advanced, example blocks, a reasoning scaffold, and XML-style section tags
are added where they help.

The rewrite is driven entirely by the analysis of the original prompt, so
running optimize twice is not the same as running it once at a higher
level.`,
		Example: `  pronghorn optimize "Write me an email to my boss"
  pronghorn optimize --level advanced --format bullets "Summarize this report"
  pronghorn optimize --file prompt.txt --diff
  pronghorn optimize --concise --no-preamble -o optimized.txt "Explain DNS"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Target model: opus, sonnet, or haiku")
	cmd.Flags().StringVarP(&opts.level, "level", "l", "", "Optimization level: quick, standard, or advanced")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format to request: standard, structured, article, bullets, or data")
	cmd.Flags().BoolVar(&opts.concise, "concise", false, "Add a conciseness constraint")
	cmd.Flags().BoolVar(&opts.noPreamble, "no-preamble", false, "Add a no-preamble constraint")
	cmd.Flags().BoolVar(&opts.showThinking, "show-thinking", false, "Reserved; accepted for forward compatibility")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the prompt from a file (- for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the optimized prompt to a file")
	cmd.Flags().BoolVar(&opts.showDiff, "diff", false, "Show a before/after diff")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Print the full result as JSON")

	return cmd
}

func runOptimize(args []string, opts *optimizeOptions) error {
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
	level := opts.level
	if level == "" {
		level = cfg.Level
	}
	format := opts.format
	if format == "" {
		format = cfg.Format
	}

	analyzer := analyze.New(cfg.Catalog())
	optimizer := rewrite.New(analyzer)

	report := analyzer.Analyze(text, models.ID(model))
	result := optimizer.Optimize(text, report, models.ID(model), rewrite.ParseLevel(level), rewrite.Options{
		Format:       rewrite.ParseFormat(format),
		Concise:      opts.concise,
		NoPreamble:   opts.noPreamble,
		ShowThinking: opts.showThinking,
	})

	if opts.jsonOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	displayOptimizationResult(result)

	if opts.showDiff {
		displayDiff(result.Original, result.Optimized)
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(result.Optimized), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		printSuccess("Wrote optimized prompt to %s", opts.output)
		return nil
	}

	fmt.Println()
	fmt.Println(dim("Optimized prompt:"))
	fmt.Println()
	fmt.Println(result.Optimized)

	return nil
}

// displayOptimizationResult shows applied techniques and deltas.
func displayOptimizationResult(result *rewrite.Result) {
	fmt.Println()

	if len(result.Techniques) == 0 {
		printSuccess("Nothing to change — the prompt already scores well at this level")
	} else {
		fmt.Printf("  %s\n", dim("Applied techniques"))
		for _, t := range result.Techniques {
			fmt.Printf("    %s %s %s\n", successIcon, t.Name, dim("— "+t.Description))
		}
	}
	fmt.Println()

	imp := result.Improvements
	scoreLine := fmt.Sprintf("%+.1f (to %.1f/10)", imp.ScoreDelta, result.NewAnalysis.Overall.Score)
	if imp.IsBetter {
		printInfo("Score", success(scoreLine))
	} else {
		printInfo("Score", scoreLine)
	}
	printInfo("Token efficiency", fmt.Sprintf("%+d points", imp.EfficiencyDelta))
	printInfo("Tokens", fmt.Sprintf("%+d (%.1f%%)", imp.TokenDelta, imp.TokenPercent))
	printInfo("Cost impact", fmt.Sprintf("$%s/call, $%s/1000 calls, $%s/year", imp.CostPerCall, imp.CostPer1000, imp.CostPerYear))

	if !imp.IsBetter && imp.ScoreDelta < 0 {
		printWarning("The rewrite scored lower than the original; review before using it")
	}
}

// displayDiff shows a simple diff between original and optimized text.
func displayDiff(original, optimized string) {
	fmt.Println()
	fmt.Println(dim("--- original"))
	fmt.Println(dim("+++ optimized"))
	fmt.Println()

	origLines := strings.Split(original, "\n")
	optLines := strings.Split(optimized, "\n")

	// Show first differences (limited output for readability)
	shown := 0
	maxDiff := 20

	maxLen := max(len(origLines), len(optLines))

	for i := 0; i < maxLen && shown < maxDiff; i++ {
		origLine := ""
		optLine := ""
		if i < len(origLines) {
			origLine = origLines[i]
		}
		if i < len(optLines) {
			optLine = optLines[i]
		}

		if origLine != optLine {
			if i < len(origLines) {
				fmt.Printf("%s %s\n", danger("-"), origLine)
			}
			if i < len(optLines) {
				fmt.Printf("%s %s\n", success("+"), optLine)
			}
			shown++
		}
	}

	if shown >= maxDiff {
		fmt.Printf("\n%s\n", dim("(diff truncated, showing first 20 changes)"))
	}
}
