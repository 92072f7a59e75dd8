package prospectimo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phugh/prospectimo/internal/domain/lexicon"
	"github.com/phugh/prospectimo/internal/domain/orient"
	"github.com/phugh/prospectimo/internal/domain/score"
)

// fixtureAnalyzer builds an analyzer over a small injected lexicon so
// expected scores can be computed by hand.
func fixtureAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	lex, err := lexicon.New(map[string]map[string]float64{
		"PAST":    {"yesterday": 0.9, "years ago": 1.1, "when i was": 1.2},
		"PRESENT": {"now": 0.7, "right now": 0.95, "ago": -0.4},
		"FUTURE":  {"tomorrow": 1.0, "will": 0.8, "ago": -0.6},
	})
	require.NoError(t, err)
	return New(lex)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	a := fixtureAnalyzer(t)

	_, err := a.Analyze("", DefaultOptions())
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = a.Analyze("   \n\t ", DefaultOptions())
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestAnalyze_PunctuationOnlyIsInterceptsNotError(t *testing.T) {
	// No-token input: scores are bare intercepts, orientation is unknown —
	// "analyzed but found nothing" is not an error
	a := fixtureAnalyzer(t)

	res, err := a.Analyze("?!... —", DefaultOptions())
	require.NoError(t, err)
	assert.Zero(t, res.Wordcount)
	assert.InDelta(t, lexicon.InterceptPast, res.Scores["PAST"], 1e-9)
	assert.InDelta(t, lexicon.InterceptPresent, res.Scores["PRESENT"], 1e-9)
	assert.InDelta(t, lexicon.InterceptFuture, res.Scores["FUTURE"], 1e-9)

	opts := DefaultOptions()
	opts.Output = ShapeOrientation
	res, err = a.Analyze("?!...", opts)
	require.NoError(t, err)
	assert.Equal(t, orient.Unknown, res.Orientation)
}

func TestAnalyze_FrequencySingleTokenSingleMatch(t *testing.T) {
	// score(FUTURE) = intercept + (1/1)×w; other categories bare intercepts
	a := fixtureAnalyzer(t)

	res, err := a.Analyze("tomorrow", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Wordcount)
	assert.InDelta(t, lexicon.InterceptFuture+1.0, res.Scores["FUTURE"], 1e-9)
	assert.InDelta(t, lexicon.InterceptPast, res.Scores["PAST"], 1e-9)
	assert.InDelta(t, lexicon.InterceptPresent, res.Scores["PRESENT"], 1e-9)
}

func TestAnalyze_FrequencyCountsRepetition(t *testing.T) {
	a := fixtureAnalyzer(t)

	res, err := a.Analyze("tomorrow tomorrow tomorrow maybe", DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, lexicon.InterceptFuture+(3.0/4.0)*1.0, res.Scores["FUTURE"], 1e-9)
}

func TestAnalyze_BinaryIgnoresRepetition(t *testing.T) {
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.Encoding = score.Binary

	once, err := a.Analyze("tomorrow maybe", opts)
	require.NoError(t, err)
	thrice, err := a.Analyze("tomorrow tomorrow tomorrow maybe", opts)
	require.NoError(t, err)

	assert.Equal(t, once.Scores["FUTURE"], thrice.Scores["FUTURE"])
	assert.InDelta(t, lexicon.InterceptFuture+1.0, once.Scores["FUTURE"], 1e-9)
}

func TestAnalyze_BinaryOrderInvariant(t *testing.T) {
	// Permutations with an identical token multiset score identically
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.Encoding = score.Binary
	opts.NGrams = []int{} // phrases are order-sensitive by nature

	x, err := a.Analyze("yesterday now tomorrow will", opts)
	require.NoError(t, err)
	y, err := a.Analyze("will tomorrow now yesterday", opts)
	require.NoError(t, err)

	assert.Equal(t, x.Scores, y.Scores)
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.Output = ShapeFull

	first, err := a.Analyze("when I was young, years ago, now I will go tomorrow", opts)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := a.Analyze("when I was young, years ago, now I will go tomorrow", opts)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAnalyze_NGramPhrasesMatch(t *testing.T) {
	a := fixtureAnalyzer(t)

	// "years ago" (bigram) and "when i was" (trigram) only exist via n-grams
	res, err := a.Analyze("when I was young years ago", DefaultOptions())
	require.NoError(t, err)

	// Unigram denominator: 6 words. "ago" matches FUTURE as a unigram.
	past := lexicon.InterceptPast + (1.0/6.0)*1.1 + (1.0/6.0)*1.2
	assert.InDelta(t, past, res.Scores["PAST"], 1e-9)
	assert.InDelta(t, lexicon.InterceptFuture+(1.0/6.0)*(-0.6), res.Scores["FUTURE"], 1e-9)
}

func TestAnalyze_NGramsDisabled(t *testing.T) {
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.NGrams = []int{} // non-nil empty disables

	res, err := a.Analyze("when I was young years ago", opts)
	require.NoError(t, err)
	// Only the unigram "ago" can match now
	assert.InDelta(t, lexicon.InterceptPast, res.Scores["PAST"], 1e-9)
	assert.InDelta(t, lexicon.InterceptFuture+(1.0/6.0)*(-0.6), res.Scores["FUTURE"], 1e-9)
}

func TestAnalyze_NGramShorterInputUnaffected(t *testing.T) {
	// N-gram gating: a one-word input is identical with and without n-grams
	a := fixtureAnalyzer(t)

	with, err := a.Analyze("tomorrow", DefaultOptions())
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.NGrams = []int{}
	without, err := a.Analyze("tomorrow", opts)
	require.NoError(t, err)

	assert.Equal(t, without.Scores, with.Scores)
}

func TestAnalyze_WCGramsChangesDenominator(t *testing.T) {
	a := fixtureAnalyzer(t)

	// 3 unigrams + 2 bigrams + 1 trigram = 6 tokens with wcGrams
	base := DefaultOptions()
	res, err := a.Analyze("going home tomorrow", base)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Wordcount)
	assert.InDelta(t, lexicon.InterceptFuture+(1.0/3.0)*1.0, res.Scores["FUTURE"], 1e-9)

	wc := DefaultOptions()
	wc.WCGrams = true
	res, err = a.Analyze("going home tomorrow", wc)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Wordcount)
	assert.InDelta(t, lexicon.InterceptFuture+(1.0/6.0)*1.0, res.Scores["FUTURE"], 1e-9)
}

func TestAnalyze_WeightRangeExcludesEverything(t *testing.T) {
	a := fixtureAnalyzer(t)

	// Max below the lexicon minimum: every non-intercept contribution is 0
	opts := DefaultOptions()
	opts.Min = math.Inf(-1)
	opts.Max = -2
	res, err := a.Analyze("yesterday now tomorrow", opts)
	require.NoError(t, err)
	assert.InDelta(t, lexicon.InterceptPast, res.Scores["PAST"], 1e-9)
	assert.InDelta(t, lexicon.InterceptPresent, res.Scores["PRESENT"], 1e-9)
	assert.InDelta(t, lexicon.InterceptFuture, res.Scores["FUTURE"], 1e-9)

	// Min above the lexicon maximum: likewise
	opts = DefaultOptions()
	opts.Min = 2
	opts.Max = math.Inf(1)
	res, err = a.Analyze("yesterday now tomorrow", opts)
	require.NoError(t, err)
	assert.InDelta(t, lexicon.InterceptFuture, res.Scores["FUTURE"], 1e-9)
}

func TestAnalyze_OrientationShape(t *testing.T) {
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.Output = ShapeOrientation

	res, err := a.Analyze("now is happening right now", opts)
	require.NoError(t, err)
	assert.Equal(t, "Present", res.Orientation)
	assert.Nil(t, res.Scores)
	assert.Nil(t, res.Matches)
}

func TestAnalyze_OrientationNegativeMaxIsSentinel(t *testing.T) {
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.Output = ShapeOrientation

	// Matches nothing: PRESENT intercept (0.2367) is the positive maximum
	res, err := a.Analyze("completely unrelated words", opts)
	require.NoError(t, err)
	assert.Equal(t, "Present", res.Orientation)

	// "ago" is negative in PRESENT and FUTURE and absent from PAST, so
	// every category lands below zero — no label can be trusted
	res, err = a.Analyze("ago ago ago ago", opts)
	require.NoError(t, err)
	assert.Equal(t, orient.Unknown, res.Orientation)
}

func TestAnalyze_OrientationVerbose(t *testing.T) {
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.Output = ShapeOrientation
	opts.Verbose = true

	res, err := a.Analyze("right now", opts)
	require.NoError(t, err)
	assert.Contains(t, res.Orientation, "Present")
	assert.Contains(t, res.Orientation, "score:")
}

func TestAnalyze_MatchesShape(t *testing.T) {
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.Output = ShapeMatches

	res, err := a.Analyze("now now tomorrow", opts)
	require.NoError(t, err)
	require.NotNil(t, res.Matches)
	assert.Nil(t, res.Scores)

	present := res.Matches["PRESENT"]
	require.Len(t, present, 1)
	assert.Equal(t, "now", present[0].Term)
	assert.Equal(t, 2, present[0].Count)
	assert.InDelta(t, 0.7, present[0].Weight, 1e-9)
	assert.InDelta(t, (2.0/3.0)*0.7, present[0].Contribution, 1e-9)

	// Empty categories still present in the table
	assert.NotNil(t, res.Matches["PAST"])
	assert.Empty(t, res.Matches["PAST"])
}

func TestAnalyze_MatchesSortedByWeight(t *testing.T) {
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.Output = ShapeMatches
	opts.SortBy = SortWeight

	res, err := a.Analyze("will will will go tomorrow", opts)
	require.NoError(t, err)
	future := res.Matches["FUTURE"]
	require.Len(t, future, 2)
	assert.Equal(t, "tomorrow", future[0].Term) // 1.0 > 0.8 despite lower count
	assert.Equal(t, "will", future[1].Term)
}

func TestAnalyze_MatchesSortedByFreq(t *testing.T) {
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.Output = ShapeMatches

	res, err := a.Analyze("will will will go tomorrow", opts)
	require.NoError(t, err)
	future := res.Matches["FUTURE"]
	require.Len(t, future, 2)
	assert.Equal(t, "will", future[0].Term) // count 3 first under freq
}

func TestAnalyze_FullShape(t *testing.T) {
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.Output = ShapeFull

	res, err := a.Analyze("yesterday now", opts)
	require.NoError(t, err)
	assert.NotNil(t, res.Scores)
	assert.NotNil(t, res.Matches)
	assert.Empty(t, res.Orientation)
}

func TestAnalyze_InvalidOptionsDegradeWithDiagnostics(t *testing.T) {
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.Output = Shape("pie-chart")
	opts.Encoding = score.Encoding("ternary")
	opts.Places = 99

	res, err := a.Analyze("tomorrow", opts)
	require.NoError(t, err)
	// Fell back to lex shape, frequency encoding, 9 places
	assert.NotNil(t, res.Scores)
	assert.InDelta(t, lexicon.InterceptFuture+1.0, res.Scores["FUTURE"], 1e-9)
	assert.Len(t, res.Diagnostics, 3)
}

func TestAnalyze_GBLocale(t *testing.T) {
	lex, err := lexicon.New(map[string]map[string]float64{
		"PAST":    {"favorite color": 0.9},
		"PRESENT": {},
		"FUTURE":  {},
	})
	require.NoError(t, err)
	a := New(lex)

	opts := DefaultOptions()
	opts.Locale = "GB"
	res, err := a.Analyze("my favourite colour", opts)
	require.NoError(t, err)
	assert.InDelta(t, lexicon.InterceptPast+(1.0/3.0)*0.9, res.Scores["PAST"], 1e-9)

	// Same text without translation misses the American surface form
	res, err = a.Analyze("my favourite colour", DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, lexicon.InterceptPast, res.Scores["PAST"], 1e-9)
}

func TestAnalyze_RoundingAtBoundary(t *testing.T) {
	a := fixtureAnalyzer(t)
	opts := DefaultOptions()
	opts.Places = 2

	res, err := a.Analyze("tomorrow is fine", opts)
	require.NoError(t, err)
	// intercept + (1/3)×1.0 = -0.237214..., rounded to 2 places
	assert.Equal(t, -0.24, res.Scores["FUTURE"])
}

func TestDefault_EmbeddedLexicon(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)

	stats := a.Lexicon().Stats()
	assert.Greater(t, stats.Total, 100)
	assert.Equal(t, 3, stats.MaxArity)

	opts := DefaultOptions()
	opts.Output = ShapeOrientation
	opts.Encoding = score.Binary
	res, err := a.Analyze("We went to the lake years ago, back when I was a kid.", opts)
	require.NoError(t, err)
	assert.Equal(t, "Past", res.Orientation)
}
