package analyze

import (
	"regexp"
	"strings"
)

// lowAltitudePatterns detect rigid, conditional, step-wise phrasing.
var lowAltitudePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bif\b.{1,40}\bthen\b`),
	regexp.MustCompile(`(?i)\bwhen\b.{1,40}\bdo\b`),
	regexp.MustCompile(`(?i)\bstep \d+:`),
	regexp.MustCompile(`(?i)\bfirst\b.{1,60}\bsecond\b.{1,60}\bthird\b`),
}

// highAltitudePatterns detect vague exhortations. A match only counts when
// the phrase is not elaborated (see elaborated below).
var highAltitudePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bbe (helpful|creative|good|professional)\b`),
	regexp.MustCompile(`(?i)\bdo your best\b`),
}

// goodAltitudePatterns detect principle-level language.
var goodAltitudePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bfocus on\b`),
	regexp.MustCompile(`(?i)\bprioritize\b`),
	regexp.MustCompile(`(?i)\bensure that\b`),
	regexp.MustCompile(`(?i)\bwhen (analyzing|writing|creating|reviewing)\b`),
	regexp.MustCompile(`(?i)\bmust (include|contain|have|follow)\b`),
}

// classifyAltitude applies the three marker counts in a fixed order:
// too-low wins when low markers exceed 2, then too-high when high markers
// exceed 2 without at least 2 good markers, otherwise just-right. The
// ordering and thresholds are load-bearing; changing either changes
// classification outcomes.
func classifyAltitude(text string) Altitude {
	low := countMatches(text, lowAltitudePatterns)
	high := countUnelaborated(text, highAltitudePatterns)
	good := countMatches(text, goodAltitudePatterns)

	if low > 2 {
		return AltitudeTooLow
	}
	if high > 2 && good < 2 {
		return AltitudeTooHigh
	}
	return AltitudeJustRight
}

func countMatches(text string, patterns []*regexp.Regexp) int {
	n := 0
	for _, p := range patterns {
		n += len(p.FindAllStringIndex(text, -1))
	}
	return n
}

// countUnelaborated counts matches that are not immediately followed by
// further detail.
func countUnelaborated(text string, patterns []*regexp.Regexp) int {
	n := 0
	for _, p := range patterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			if !elaborated(text, loc[1]) {
				n++
			}
		}
	}
	return n
}

// elaborated reports whether the text continues past position end with a
// connective that introduces detail ("and", "by", "with", or a colon). A
// bare "be professional." counts as vague; "be professional by citing
// sources" does not.
func elaborated(text string, end int) bool {
	rest := strings.TrimLeft(text[end:], " \t")
	if strings.HasPrefix(rest, ":") {
		return true
	}
	for _, connective := range []string{"and ", "by ", "with "} {
		if strings.HasPrefix(strings.ToLower(rest), connective) {
			return true
		}
	}
	return false
}
