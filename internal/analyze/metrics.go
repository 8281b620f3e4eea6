package analyze

import (
	"math"
	"regexp"
	"strings"
)

// usefulPatterns are the five high-signal families whose matches count as
// "useful" content: emphasis words, format labels, example markers, XML
// tags, and bracketed section headers. Match lengths are summed without
// deduplication.
var usefulPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(must|never|always|required|specifically|exactly)\b`),
	regexp.MustCompile(`(?i)\b(format|output|structure|style)\b\s*:`),
	regexp.MustCompile(`(?i)(for example|e\.g\.|example:|such as:)`),
	regexp.MustCompile(`</?[a-zA-Z][^>]*>`),
	regexp.MustCompile(`\[[^\]]+\]`),
}

// tokenEfficiency estimates how much of the prompt's token budget carries
// signal. Useful tokens are the summed character length of all high-signal
// matches divided by 3.5, ceiled.
func tokenEfficiency(text string, total int) TokenEfficiency {
	matched := 0
	for _, p := range usefulPatterns {
		for _, m := range p.FindAllString(text, -1) {
			matched += len(m)
		}
	}
	useful := int(math.Ceil(float64(matched) / 3.5))

	efficiency := 0
	if total > 0 {
		efficiency = int(math.Round(float64(useful) / float64(total) * 100))
		efficiency = clamp(efficiency, 0, 100)
	}

	return TokenEfficiency{
		Total:      total,
		Useful:     useful,
		Efficiency: efficiency,
		Rating:     efficiencyRating(efficiency),
	}
}

func efficiencyRating(efficiency int) string {
	switch {
	case efficiency >= 85:
		return "excellent"
	case efficiency >= 70:
		return "good"
	case efficiency >= 50:
		return "fair"
	default:
		return "poor"
	}
}

// highValuePrefixes mark directive wording; fillerPrefixes mark hedging and
// padding. Prefix matching deliberately catches inflections ("specific" also
// hits "specifically", "constraint" hits "constraints").
var (
	highValuePrefixes = []string{"must", "never", "always", "required", "specific", "exact", "only", "format", "output", "constraint"}
	fillerPrefixes    = []string{"very", "really", "quite", "basically", "actually", "literally", "perhaps", "maybe", "possibly"}
)

// signalDensity scores directive versus filler wording, centered at 50.
func signalDensity(text string) SignalDensity {
	words := strings.Fields(strings.ToLower(text))

	highValue, filler := 0, 0
	for _, w := range words {
		if hasAnyPrefix(w, highValuePrefixes) {
			highValue++
		}
		if hasAnyPrefix(w, fillerPrefixes) {
			filler++
		}
	}

	density := 0
	if len(words) > 0 {
		raw := float64(highValue-filler)/float64(len(words))*100 + 50
		density = clamp(int(math.Round(raw)), 0, 100)
	}

	return SignalDensity{
		Density:        density,
		HighValueCount: highValue,
		FillerCount:    filler,
		Rating:         densityRating(density),
	}
}

func densityRating(density int) string {
	switch {
	case density >= 80:
		return "high"
	case density >= 60:
		return "medium"
	default:
		return "low"
	}
}

func hasAnyPrefix(word string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(word, p) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
