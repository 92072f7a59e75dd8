package prospectimo

// MatchEntry reports one lexicon surface form found in the input.
// Contribution is the entry's share of the category sum under the active
// encoding: the bare weight for binary, (count/wordcount)×weight for
// frequency.
type MatchEntry struct {
	Term         string  `json:"term"`
	Count        int     `json:"count"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"lex"`
}

// Result is the analyzer output. Which fields are populated depends on the
// requested output shape: Scores for lex and full, Matches for matches and
// full, Orientation for orientation. Wordcount is always set; Diagnostics
// records every option fallback that occurred.
type Result struct {
	Scores      map[string]float64      `json:"scores,omitempty"`
	Matches     map[string][]MatchEntry `json:"matches,omitempty"`
	Orientation string                  `json:"orientation,omitempty"`
	Wordcount   int                     `json:"wordcount"`
	Diagnostics []string                `json:"diagnostics,omitempty"`
}
