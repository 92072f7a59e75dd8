// Package ahocorasick provides multi-pattern scanning of raw text against
// the lexicon's surface forms. It wraps the petar-dambovaliev/aho-corasick
// library for O(n + m + z) matching and reports byte offsets, so callers
// can show where each temporal marker sits in the original text.
package ahocorasick

import (
	"sort"
	"unicode"
	"unicode/utf8"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/phugh/prospectimo/internal/domain/lexicon"
)

// TermHit is one lexicon surface form found in the scanned text.
type TermHit struct {
	Category lexicon.Category
	Term     string
	Weight   float64
	Start    int // byte offset, inclusive
	End      int // byte offset, exclusive
}

// termRef maps an automaton pattern index back to its owning category.
type termRef struct {
	category lexicon.Category
	term     string
	weight   float64
}

// Scanner finds lexicon terms in raw text. Build once, scan many times;
// the automaton is immutable after construction.
type Scanner struct {
	automaton aho.AhoCorasick
	refs      []termRef
}

// NewScanner compiles a DFA automaton over every surface form in the
// lexicon. Forms shared across categories get one pattern per category.
func NewScanner(lex *lexicon.Lexicon) *Scanner {
	var refs []termRef
	var patterns []string
	for _, c := range lexicon.Categories {
		weights := lex.Weights(c)
		terms := make([]string, 0, len(weights))
		for term := range weights {
			terms = append(terms, term)
		}
		// Sorted for a deterministic automaton
		sort.Strings(terms)
		for _, term := range terms {
			refs = append(refs, termRef{category: c, term: term, weight: weights[term]})
			patterns = append(patterns, term)
		}
	}

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	return &Scanner{
		automaton: builder.Build(patterns),
		refs:      refs,
	}
}

// Scan returns every lexicon term occurrence in text, including overlaps,
// sorted by start offset. Hits must fall on word boundaries — "now" inside
// "known" does not count.
func (s *Scanner) Scan(text string) []TermHit {
	if len(s.refs) == 0 {
		return nil
	}

	iter := s.automaton.IterOverlappingByte([]byte(text))
	var hits []TermHit
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		if !wordBounded(text, m.Start(), m.End()) {
			continue
		}
		ref := s.refs[m.Pattern()]
		hits = append(hits, TermHit{
			Category: ref.category,
			Term:     ref.term,
			Weight:   ref.weight,
			Start:    m.Start(),
			End:      m.End(),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Start != hits[j].Start {
			return hits[i].Start < hits[j].Start
		}
		return hits[i].End > hits[j].End // longer phrase first at equal start
	})
	return hits
}

// TermCount returns the number of patterns in the automaton.
func (s *Scanner) TermCount() int {
	return len(s.refs)
}

// wordBounded reports whether text[start:end] is delimited by non-letter,
// non-digit runes (or the text edges) on both sides. The neighbors are
// decoded as full runes; a multibyte letter like 'è' is one boundary
// character, not two bytes.
func wordBounded(text string, start, end int) bool {
	if before, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(before) {
		return false
	}
	if after, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(after) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
