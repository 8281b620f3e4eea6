package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]*`)

// fillerWordRe strips hedging words that add no signal. The trailing
// optional space keeps the surrounding sentence intact.
var fillerWordRe = regexp.MustCompile(`(?i)\b(very|really|quite|basically|actually|literally|just|simply)\b ?`)

// removeRedundancy drops exact duplicate sentences (case-insensitive after
// trimming) and strips filler words. Each cleanup that changed anything
// records its own technique.
func removeRedundancy(s *state) {
	if deduped, removed := dedupeSentences(s.text); removed > 0 {
		s.text = deduped
		s.record(
			"Redundancy removal",
			sentenceCountNote(removed),
			"Cuts token count without losing meaning",
		)
	}

	if stripped, count := stripFillerWords(s.text); count > 0 {
		s.text = stripped
		s.record(
			"Filler removal",
			fillerCountNote(count),
			"Raises signal density",
		)
	}
}

// improveClarity normalizes whitespace runs around " and ". Minimal by
// design; no technique record.
var andRunRe = regexp.MustCompile(`[ \t]+and[ \t]+`)

func improveClarity(s *state) {
	s.text = andRunRe.ReplaceAllString(s.text, " and ")
}

// dedupeSentences removes sentences whose trimmed, lower-cased form was
// already seen. The text is only rebuilt when a duplicate was found, so a
// clean text passes through byte-identical.
func dedupeSentences(text string) (string, int) {
	parts := sentenceRe.FindAllString(text, -1)
	seen := make(map[string]bool)
	var kept []string
	removed := 0

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			removed++
			continue
		}
		seen[key] = true
		kept = append(kept, trimmed)
	}

	if removed == 0 {
		return text, 0
	}
	return strings.Join(kept, " "), removed
}

// stripFillerWords removes every filler-word occurrence globally.
func stripFillerWords(text string) (string, int) {
	count := len(fillerWordRe.FindAllString(text, -1))
	if count == 0 {
		return text, 0
	}
	return fillerWordRe.ReplaceAllString(text, ""), count
}

func sentenceCountNote(n int) string {
	if n == 1 {
		return "Removed 1 duplicate sentence"
	}
	return fmt.Sprintf("Removed %d duplicate sentences", n)
}

func fillerCountNote(n int) string {
	if n == 1 {
		return "Stripped 1 filler word"
	}
	return fmt.Sprintf("Stripped %d filler words", n)
}
