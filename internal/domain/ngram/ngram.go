// Package ngram generates contiguous n-word phrases from a token sequence.
// Phrases are produced lazily with a sliding window of stride 1, joined by
// single spaces, preserving left-to-right order.
package ngram

import (
	"iter"
	"strings"
)

// Phrases returns a lazy, finite, restartable sequence of the n-word
// phrases in tokens. Fewer than n tokens yields an empty sequence — a
// legitimate edge case, never an error. Arities below 2 also yield an
// empty sequence; unigrams are the base token stream, not phrases.
func Phrases(tokens []string, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if n < 2 || len(tokens) < n {
			return
		}
		for i := 0; i+n <= len(tokens); i++ {
			if !yield(strings.Join(tokens[i:i+n], " ")) {
				return
			}
		}
	}
}

// Count returns the number of phrases Phrases would yield for the given
// token count and arity.
func Count(tokenCount, n int) int {
	if n < 2 || tokenCount < n {
		return 0
	}
	return tokenCount - n + 1
}

// Expand appends the phrases for each requested arity, in the order the
// arities are given, onto a copy of the base token sequence. Duplicate
// arities contribute duplicate phrases; callers own deduplication of the
// arity set. The input slice is never mutated.
func Expand(tokens []string, arities []int) []string {
	total := len(tokens)
	for _, n := range arities {
		total += Count(len(tokens), n)
	}
	out := make([]string, 0, total)
	out = append(out, tokens...)
	for _, n := range arities {
		for phrase := range Phrases(tokens, n) {
			out = append(out, phrase)
		}
	}
	return out
}
