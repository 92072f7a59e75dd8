// Package tokenize normalizes raw input text and splits it into ordered,
// lowercase word tokens. Duplicates are preserved — repeated words must
// count multiple times downstream.
package tokenize

import (
	"regexp"
	"strings"
)

// Locale selects the spelling convention of the input text.
// Lexicon weights are keyed on American spellings, so GB input is
// translated word-wise before matching.
type Locale string

const (
	LocaleUS Locale = "US"
	LocaleGB Locale = "GB"
)

// wordRE extracts word tokens from normalized text.
// Rules:
//   - Runs of [a-z0-9], with one optional internal apostrophe group
//     ("can't", "won't" stay single tokens)
//   - Punctuation and all other characters are separators
var wordRE = regexp.MustCompile(`[a-z0-9]+(?:'[a-z]+)?`)

// Normalize trims surrounding whitespace and lowercases the input.
// An all-whitespace input normalizes to the empty string.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Words splits normalized text into ordered word tokens.
// Returns nil when no word characters are present (punctuation-only input).
func Words(normalized string) []string {
	return wordRE.FindAllString(normalized, -1)
}

// Translate rewrites tokens from the given locale to the American spellings
// the lexicon is keyed on. LocaleUS (and any unknown locale) is the identity.
// The input slice is never mutated.
func Translate(tokens []string, loc Locale) []string {
	if loc != LocaleGB || len(tokens) == 0 {
		return tokens
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if us, ok := britishToAmerican[tok]; ok {
			out[i] = us
			continue
		}
		out[i] = tok
	}
	return out
}
