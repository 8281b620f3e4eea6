package analyze

import (
	"fmt"
	"regexp"

	"github.com/HartBrook/pronghorn/internal/models"
)

var (
	creativeTaskRe = regexp.MustCompile(`(?i)\b(story|poem|creative|imagine|fiction|brainstorm)\b`)
	analyticalRe   = regexp.MustCompile(`(?i)\b(analyze|evaluate|assess|compare|review)\b`)
	elaborationRe  = regexp.MustCompile(`(?i)(go beyond|unexpected|unique|original)`)
	causalRe       = regexp.MustCompile(`(?i)\b(because|so that|in order to)\b`)
)

// IsCreativeTask reports whether the text reads like a creative request.
func IsCreativeTask(text string) bool { return creativeTaskRe.MatchString(text) }

// IsAnalyticalTask reports whether the text reads like an analytical request.
func IsAnalyticalTask(text string) bool { return analyticalRe.MatchString(text) }

// HasElaborationLanguage reports whether the text already asks the model to
// go beyond the obvious.
func HasElaborationLanguage(text string) bool { return elaborationRe.MatchString(text) }

// HasCausalLanguage reports whether the text explains why the task matters.
func HasCausalLanguage(text string) bool { return causalRe.MatchString(text) }

// modelFit dispatches to the per-model rule set. The switch is closed over
// the three catalog models; Catalog.Get has already resolved unknown IDs to
// the default, whose rules therefore also cover the fallback.
func modelFit(text string, flags ComponentFlags, m models.Model) ModelFit {
	var strengths, issues []string

	switch m.ID {
	case models.Sonnet:
		strengths, issues = sonnetFit(text, flags)
	case models.Haiku:
		strengths, issues = haikuFit(text, flags)
	default:
		strengths, issues = opusFit(text, flags)
	}

	if len(strengths) == 0 {
		strengths = append(strengths, fmt.Sprintf("General-purpose instructions work well with %s", m.DisplayName))
	}

	compatibility := 100 - len(issues)*15
	if compatibility < 0 {
		compatibility = 0
	}

	return ModelFit{
		Compatibility: compatibility,
		Strengths:     strengths,
		Issues:        issues,
		Model:         m.DisplayName,
	}
}

// opusFit favors creative and deeply analytical prompts that explain their
// motivation.
func opusFit(text string, flags ComponentFlags) (strengths, issues []string) {
	if IsCreativeTask(text) {
		if HasElaborationLanguage(text) {
			strengths = append(strengths, "Creative task with explicit encouragement to go beyond the obvious")
		} else {
			issues = append(issues, "Creative task without explicit encouragement to go beyond the obvious")
		}
	}

	if IsAnalyticalTask(text) {
		if flags.ChainOfThought {
			strengths = append(strengths, "Analytical task with a structured reasoning request")
		} else {
			issues = append(issues, "Analytical task without a structured reasoning request")
		}
	}

	if len(text) > 200 && !HasCausalLanguage(text) {
		issues = append(issues, "Long prompt without motivation or causal framing")
	}

	return strengths, issues
}

// sonnetFit favors explicit step-by-step structure.
func sonnetFit(text string, flags ComponentFlags) (strengths, issues []string) {
	if flags.ChainOfThought {
		strengths = append(strengths, "Step-by-step reasoning plays to the model's strengths")
	} else {
		issues = append(issues, "No step-by-step reasoning request")
	}

	if flags.Constraints {
		strengths = append(strengths, "Explicit constraints keep responses on track")
	}

	if len(text) > 200 && !flags.OutputFormat {
		issues = append(issues, "Long prompt without an explicit output format")
	}

	return strengths, issues
}

// haikuFit favors short, grounded, direct prompts.
func haikuFit(text string, flags ComponentFlags) (strengths, issues []string) {
	if flags.Task {
		strengths = append(strengths, "Direct task phrasing suits a fast model")
	}

	if len(text) < 100 && !containsWordContext(text) {
		issues = append(issues, "Short prompt with no grounding context")
	}

	if len(text) > 600 {
		issues = append(issues, "Long prompt may dilute a lightweight model's focus")
	}

	return strengths, issues
}

var contextWordRe = regexp.MustCompile(`(?i)\bcontext\b`)

func containsWordContext(text string) bool { return contextWordRe.MatchString(text) }
