// Package score turns per-category match lists into numeric lexical values.
//
// Two encodings exist. Binary sums each distinct matched form's weight
// exactly once — repetition count is deliberately ignored, so a word
// matched k times contributes its weight once, never k times. Frequency
// scales each weight by the form's relative frequency in the input
// (count/wordcount). Both add the category intercept.
package score

import (
	"math"

	"github.com/phugh/prospectimo/internal/domain/match"
)

// Encoding selects the numeric encoding formula.
type Encoding string

const (
	Binary    Encoding = "binary"
	Frequency Encoding = "frequency"
)

// Valid reports whether e names a known encoding.
func (e Encoding) Valid() bool {
	return e == Binary || e == Frequency
}

// Category computes one category's lexical value from its match list.
// A zero wordcount under frequency encoding returns the bare intercept —
// there is nothing to normalize by and division by zero is never allowed
// to happen. The result is unrounded; rounding belongs to the output
// boundary, never to intermediate sums.
func Category(entries []match.Entry, intercept float64, enc Encoding, wordcount int) float64 {
	sum := 0.0
	switch enc {
	case Binary:
		for _, e := range entries {
			sum += e.Weight
		}
	case Frequency:
		if wordcount == 0 {
			return intercept
		}
		for _, e := range entries {
			sum += (float64(e.Count) / float64(wordcount)) * e.Weight
		}
	}
	return intercept + sum
}

// Contribution returns one entry's share of the category sum under the
// given encoding: the bare weight for binary, the frequency-scaled weight
// for frequency. Zero wordcount contributes nothing.
func Contribution(e match.Entry, enc Encoding, wordcount int) float64 {
	if enc == Binary {
		return e.Weight
	}
	if wordcount == 0 {
		return 0
	}
	return (float64(e.Count) / float64(wordcount)) * e.Weight
}

// Round rounds v to the given number of decimal places using
// round-half-away-from-zero semantics. Places outside 0–15 return v
// unchanged; float64 carries no meaningful digits beyond that.
func Round(v float64, places int) float64 {
	if places < 0 || places > 15 {
		return v
	}
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
