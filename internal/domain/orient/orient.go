// Package orient selects the temporal orientation label from the three
// category scores.
package orient

import (
	"fmt"

	"github.com/phugh/prospectimo/internal/domain/lexicon"
)

// Unknown is the sentinel label reported when no category's score is
// non-negative — the text resembles none of the three categories strongly
// enough to trust a label.
const Unknown = "No clear temporal orientation detected"

// Select returns the arg-max category over the scores, scanning in the
// fixed priority order PAST, PRESENT, FUTURE with a strict > comparison —
// ties resolve to the earlier category. The second return is false when
// the winning score is negative and the Unknown sentinel applies.
func Select(scores [lexicon.CategoryCount]float64) (lexicon.Category, bool) {
	best := lexicon.Past
	for _, c := range lexicon.Categories[1:] {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return best, scores[best] >= 0
}

// Label renders the orientation as a human-readable string. Verbose output
// appends the winning category and its numeric score; for the Unknown
// sentinel the appended pair names the closest category.
func Label(scores [lexicon.CategoryCount]float64, verbose bool) string {
	best, ok := Select(scores)
	if !ok {
		if verbose {
			return fmt.Sprintf("%s (closest: %s, score: %g)", Unknown, best.Label(), scores[best])
		}
		return Unknown
	}
	if verbose {
		return fmt.Sprintf("%s (score: %g)", best.Label(), scores[best])
	}
	return best.Label()
}
