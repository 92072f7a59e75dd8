// Package prospectimo scores a text's temporal orientation — whether its
// language leans toward past, present, or future framing — by matching
// tokens and multi-word n-grams against a weighted lexicon and aggregating
// weights per category.
//
// The engine is deterministic and stateless per call: the lexicon is loaded
// once, read-only, and safe for unsynchronized concurrent Analyze calls.
package prospectimo

import (
	"errors"
	"sort"

	data "github.com/phugh/prospectimo/lexicon"

	"github.com/phugh/prospectimo/internal/domain/lexicon"
	"github.com/phugh/prospectimo/internal/domain/match"
	"github.com/phugh/prospectimo/internal/domain/ngram"
	"github.com/phugh/prospectimo/internal/domain/orient"
	"github.com/phugh/prospectimo/internal/domain/score"
	"github.com/phugh/prospectimo/internal/domain/tokenize"
)

// ErrNoInput is returned when the input is empty or all whitespace.
// "Nothing to analyze" is distinct from "analyzed but found nothing" —
// callers that want a zero-score result must pass actual text.
var ErrNoInput = errors.New("no input text to analyze")

// Analyzer scores texts against an injected, read-only lexicon.
type Analyzer struct {
	lex *lexicon.Lexicon
}

// New creates an Analyzer over the given lexicon. Tests inject small
// fixture lexicons here.
func New(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// Default creates an Analyzer over the embedded v1 lexicon.
func Default() (*Analyzer, error) {
	lex, err := lexicon.Load(data.FS, "v1")
	if err != nil {
		return nil, err
	}
	return New(lex), nil
}

// Lexicon exposes the analyzer's lexicon for inspection (stats, scanning).
func (a *Analyzer) Lexicon() *lexicon.Lexicon {
	return a.lex
}

// Analyze scores the input text under the given options and returns the
// requested output shape. Empty or all-whitespace input returns ErrNoInput.
// Invalid option values never fail the call; they degrade to defaults and
// are reported in Result.Diagnostics.
func (a *Analyzer) Analyze(input string, opts Options) (*Result, error) {
	opts, diags := opts.normalize()

	normalized := tokenize.Normalize(input)
	if normalized == "" {
		return nil, ErrNoInput
	}

	words := tokenize.Translate(tokenize.Words(normalized), opts.Locale)
	tokens := ngram.Expand(words, opts.NGrams)

	// Frequency denominator: unigrams only unless WCGrams opts n-grams in.
	wordcount := len(words)
	if opts.WCGrams {
		wordcount = len(tokens)
	}

	set := match.Find(match.Index(tokens), a.lex, match.Filter{Min: opts.Min, Max: opts.Max})

	var scores [lexicon.CategoryCount]float64
	for _, c := range lexicon.Categories {
		raw := score.Category(set[c], c.Intercept(), opts.Encoding, wordcount)
		scores[c] = score.Round(raw, opts.Places)
	}

	res := &Result{Wordcount: wordcount, Diagnostics: diags}
	switch opts.Output {
	case ShapeOrientation:
		res.Orientation = orientation(scores, len(words), opts.Verbose)
	case ShapeMatches:
		res.Matches = matchTable(set, opts, wordcount)
	case ShapeFull:
		res.Scores = scoreTable(scores)
		res.Matches = matchTable(set, opts, wordcount)
	default: // ShapeLex
		res.Scores = scoreTable(scores)
	}
	return res, nil
}

// orientation labels the scores, with the no-token special case: when the
// tokenizer produced nothing (punctuation-only input), the scores are bare
// intercepts and no orientation can be trusted.
func orientation(scores [lexicon.CategoryCount]float64, unigrams int, verbose bool) string {
	if unigrams == 0 {
		return orient.Unknown
	}
	return orient.Label(scores, verbose)
}

func scoreTable(scores [lexicon.CategoryCount]float64) map[string]float64 {
	out := make(map[string]float64, lexicon.CategoryCount)
	for _, c := range lexicon.Categories {
		out[c.String()] = scores[c]
	}
	return out
}

// matchTable renders the match set with per-entry contributions, ordered
// per SortBy (descending, ties broken by term for determinism).
func matchTable(set match.Set, opts Options, wordcount int) map[string][]MatchEntry {
	out := make(map[string][]MatchEntry, lexicon.CategoryCount)
	for _, c := range lexicon.Categories {
		entries := make([]MatchEntry, 0, len(set[c]))
		for _, e := range set[c] {
			entries = append(entries, MatchEntry{
				Term:         e.Term,
				Count:        e.Count,
				Weight:       score.Round(e.Weight, opts.Places),
				Contribution: score.Round(score.Contribution(e, opts.Encoding, wordcount), opts.Places),
			})
		}
		sort.SliceStable(entries, func(i, j int) bool {
			x, y := entries[i], entries[j]
			switch opts.SortBy {
			case SortWeight:
				if x.Weight != y.Weight {
					return x.Weight > y.Weight
				}
			case SortLex:
				if x.Contribution != y.Contribution {
					return x.Contribution > y.Contribution
				}
			default: // SortFreq
				if x.Count != y.Count {
					return x.Count > y.Count
				}
			}
			return x.Term < y.Term
		})
		out[c.String()] = entries
	}
	return out
}
