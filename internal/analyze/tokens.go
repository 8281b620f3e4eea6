package analyze

import (
	"math"
	"strings"
	"unicode/utf8"
)

// estimateTokens approximates the token count without a real tokenizer.
// Two heuristics are averaged: runes/3.5 (Claude averages ~3.5 chars per
// token) and words/0.75 (a word is ~1.33 tokens). Both are ceiled before
// averaging so short inputs don't round to zero.
func estimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	byChars := math.Ceil(float64(utf8.RuneCountInString(text)) / 3.5)
	byWords := math.Ceil(float64(wordCount(text)) / 0.75)
	return int(math.Round((byChars + byWords) / 2))
}

// wordCount counts runs of non-whitespace.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
