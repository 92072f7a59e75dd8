package prospectimo

import (
	"fmt"
	"math"

	"github.com/phugh/prospectimo/internal/domain/score"
	"github.com/phugh/prospectimo/internal/domain/tokenize"
)

// Shape selects which output the analyzer produces. The four shapes are
// mutually exclusive; an unrecognized shape falls back to ShapeLex with a
// recoverable diagnostic.
type Shape string

const (
	ShapeLex         Shape = "lex"         // per-category numeric scores
	ShapeOrientation Shape = "orientation" // the winning category label
	ShapeMatches     Shape = "matches"     // per-category match lists
	ShapeFull        Shape = "full"        // scores + match lists
)

// SortOrder selects the ordering of match lists in the matches shape.
type SortOrder string

const (
	SortFreq   SortOrder = "freq"   // by occurrence count, descending
	SortWeight SortOrder = "weight" // by lexicon weight, descending
	SortLex    SortOrder = "lex"    // by per-word lexical contribution, descending
)

// Options enumerates every recognized analyzer option. Build from
// DefaultOptions and override fields; validation happens once at the
// Analyze boundary and degrades invalid values to their defaults with
// diagnostics rather than failing.
type Options struct {
	// Encoding selects the scoring formula. Default Frequency.
	Encoding score.Encoding

	// Output selects the result shape. Default ShapeLex.
	Output Shape

	// Min and Max bound the lexicon weights considered, inclusive on both
	// ends. Default unbounded (-Inf, +Inf). The zero pair (0, 0) is read
	// as unset and treated as unbounded; NaN falls back to unbounded.
	Min float64
	Max float64

	// NGrams lists the phrase arities appended to the unigram token
	// sequence before matching. nil means the default {2, 3}; an empty
	// non-nil slice disables n-grams entirely. Arities below 2 are
	// dropped with a diagnostic.
	NGrams []int

	// WCGrams controls the wordcount denominator used by frequency
	// encoding: false (default) fixes it at the pre-n-gram unigram count,
	// true counts n-gram entries too. This materially changes
	// frequency-encoded scores.
	WCGrams bool

	// Locale names the input spelling convention. LocaleGB rewrites
	// British spellings to the American forms the lexicon is keyed on.
	// Default LocaleUS.
	Locale tokenize.Locale

	// Places rounds numeric output to this many decimal places, applied
	// only at the output boundary. Default 9; out-of-range values (0–15)
	// fall back with a diagnostic.
	Places int

	// SortBy orders the match lists in the matches shape. Default SortFreq.
	SortBy SortOrder

	// Verbose appends the winning category and score to orientation labels.
	Verbose bool
}

// DefaultOptions returns the documented defaults for every option.
func DefaultOptions() Options {
	return Options{
		Encoding: score.Frequency,
		Output:   ShapeLex,
		Min:      math.Inf(-1),
		Max:      math.Inf(1),
		NGrams:   nil, // resolved to {2, 3}
		WCGrams:  false,
		Locale:   tokenize.LocaleUS,
		Places:   9,
		SortBy:   SortFreq,
	}
}

// normalize validates the options once at the boundary, replacing invalid
// values with defaults and collecting a diagnostic for each fallback.
// Nothing here aborts the computation.
func (o Options) normalize() (Options, []string) {
	var diags []string

	if !o.Encoding.Valid() {
		if o.Encoding != "" {
			diags = append(diags, fmt.Sprintf("unknown encoding %q, using %q", o.Encoding, score.Frequency))
		}
		o.Encoding = score.Frequency
	}

	switch o.Output {
	case ShapeLex, ShapeOrientation, ShapeMatches, ShapeFull:
	case "":
		o.Output = ShapeLex
	default:
		diags = append(diags, fmt.Sprintf("unknown output shape %q, using %q", o.Output, ShapeLex))
		o.Output = ShapeLex
	}

	switch o.SortBy {
	case SortFreq, SortWeight, SortLex:
	case "":
		o.SortBy = SortFreq
	default:
		diags = append(diags, fmt.Sprintf("unknown sort order %q, using %q", o.SortBy, SortFreq))
		o.SortBy = SortFreq
	}

	switch o.Locale {
	case tokenize.LocaleUS, tokenize.LocaleGB:
	case "":
		o.Locale = tokenize.LocaleUS
	default:
		diags = append(diags, fmt.Sprintf("unknown locale %q, using %q", o.Locale, tokenize.LocaleUS))
		o.Locale = tokenize.LocaleUS
	}

	if o.Places < 0 || o.Places > 15 {
		diags = append(diags, fmt.Sprintf("places %d out of range 0-15, using 9", o.Places))
		o.Places = 9
	}

	// The zero pair means the caller never set a filter.
	if o.Min == 0 && o.Max == 0 {
		o.Min, o.Max = math.Inf(-1), math.Inf(1)
	}
	if math.IsNaN(o.Min) {
		diags = append(diags, "non-numeric min, using -Inf")
		o.Min = math.Inf(-1)
	}
	if math.IsNaN(o.Max) {
		diags = append(diags, "non-numeric max, using +Inf")
		o.Max = math.Inf(1)
	}
	if o.Min > o.Max {
		diags = append(diags, fmt.Sprintf("empty weight range [%g, %g], using unbounded", o.Min, o.Max))
		o.Min, o.Max = math.Inf(-1), math.Inf(1)
	}

	if o.NGrams == nil {
		o.NGrams = []int{2, 3}
	} else {
		kept := make([]int, 0, len(o.NGrams))
		seen := make(map[int]bool, len(o.NGrams))
		for _, n := range o.NGrams {
			if n < 2 {
				diags = append(diags, fmt.Sprintf("n-gram arity %d below 2, dropped", n))
				continue
			}
			if seen[n] {
				continue
			}
			seen[n] = true
			kept = append(kept, n)
		}
		o.NGrams = kept
	}

	return o, diags
}
