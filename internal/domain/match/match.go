// Package match finds lexicon surface forms in a token sequence.
//
// Matching is a two-level reduction: the token sequence is collapsed once
// into a hash token→count index (O(tokens)), then each category's lexicon
// entries are tested for presence against it (O(categories × entries)).
// Matching is exact string equality on the surface form — case is
// normalized upstream, and there is no fuzzy or stemmed matching.
package match

import (
	"sort"

	"github.com/phugh/prospectimo/internal/domain/lexicon"
)

// Entry records one lexicon surface form found in the token sequence.
// Count is the number of occurrences in the sequence (always ≥ 1); a form
// appears at most once per category's match list.
type Entry struct {
	Term   string
	Count  int
	Weight float64
}

// Set holds the per-category match lists. Every category is present; a
// category with no matches has an empty list, so downstream scoring treats
// "no matches" uniformly as zero contribution before intercept.
type Set [lexicon.CategoryCount][]Entry

// Filter bounds the lexicon weights considered during matching. Both bounds
// are inclusive: an entry survives iff Min ≤ weight ≤ Max. Unbounded
// filters use ±Inf.
type Filter struct {
	Min float64
	Max float64
}

// Keep reports whether a weight passes the filter.
func (f Filter) Keep(w float64) bool {
	return w >= f.Min && w <= f.Max
}

// Index collapses a token sequence into a token→count map.
// Duplicates are meaningful: repeated tokens accumulate.
func Index(tokens []string) map[string]int {
	idx := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		idx[tok]++
	}
	return idx
}

// Find returns, per category, the lexicon entries present in the indexed
// token sequence, filtered by weight range. Entries are sorted by term for
// deterministic output; display ordering is applied at the output boundary.
func Find(idx map[string]int, lex *lexicon.Lexicon, f Filter) Set {
	var set Set
	for _, c := range lexicon.Categories {
		weights := lex.Weights(c)
		entries := make([]Entry, 0)
		for term, w := range weights {
			if !f.Keep(w) {
				continue
			}
			count, ok := idx[term]
			if !ok {
				continue
			}
			entries = append(entries, Entry{Term: term, Count: count, Weight: w})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Term < entries[j].Term
		})
		set[c] = entries
	}
	return set
}
