package analyze

import (
	"regexp"
	"strings"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// measureRedundancy counts repeated 3-word phrases. Sentences are split on
// terminal punctuation, then a 3-word window slides over each sentence's
// lower-cased words. The seen set is global across the whole text, not per
// sentence, so repeated wording anywhere counts — this matches the original
// heuristic's (loose) behavior and is preserved on purpose.
func measureRedundancy(text string) Redundancy {
	seen := make(map[string]bool)
	repeats := 0

	for _, sentence := range sentenceSplit.Split(text, -1) {
		words := strings.Fields(strings.ToLower(sentence))
		for i := 0; i+3 <= len(words); i++ {
			phrase := strings.Join(words[i:i+3], " ")
			if seen[phrase] {
				repeats++
			} else {
				seen[phrase] = true
			}
		}
	}

	return Redundancy{
		Score: repeats,
		Level: redundancyLevel(repeats),
	}
}

func redundancyLevel(repeats int) string {
	switch {
	case repeats > 3:
		return "high"
	case repeats > 1:
		return "medium"
	default:
		return "low"
	}
}
