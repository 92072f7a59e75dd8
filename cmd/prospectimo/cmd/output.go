package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/phugh/prospectimo"
	"github.com/phugh/prospectimo/internal/adapters/ahocorasick"
	"github.com/phugh/prospectimo/internal/domain/lexicon"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorGray    = "\033[90m"
)

// categoryOrder fixes the display order of the three categories.
var categoryOrder = [...]string{"PAST", "PRESENT", "FUTURE"}

// printDiagnostics reports option fallbacks to stderr. They are recoverable
// by definition — the result that follows is still valid.
func printDiagnostics(diags []string) {
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%swarning: %s%s\n", colorGray, d, colorReset)
	}
}

// formatScores renders the per-category score table.
//
//	⚡ 12 words
//	  PAST     -0.231840516
//	  PRESENT   0.401283229
//	  FUTURE   -0.570547567
func formatScores(result *prospectimo.Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d words%s\n", colorBold, result.Wordcount, colorReset))
	for _, cat := range categoryOrder {
		score, ok := result.Scores[cat]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s%-8s%s %s\n", colorMagenta, cat, colorReset, formatSigned(score)))
	}
	return sb.String()
}

// formatSigned aligns positive and negative values in one column.
func formatSigned(v float64) string {
	if v < 0 {
		return fmt.Sprintf("%s%g%s", colorYellow, v, colorReset)
	}
	return fmt.Sprintf(" %s%g%s", colorGreen, v, colorReset)
}

// formatOrientation renders the orientation label line.
func formatOrientation(result *prospectimo.Result) string {
	return fmt.Sprintf("%s⚡ %s%s\n", colorBold, result.Orientation, colorReset)
}

// formatMatches renders the per-category match lists.
//
//	PAST (2 matches)
//	  yesterday   ×1  w=0.982044  lex=0.081837
func formatMatches(result *prospectimo.Result) string {
	var sb strings.Builder
	for _, cat := range categoryOrder {
		entries, ok := result.Matches[cat]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s%s%s (%d matches)\n", colorMagenta, cat, colorReset, len(entries)))
		for _, e := range entries {
			sb.WriteString(fmt.Sprintf("  %s%-20s%s ×%d  w=%g  lex=%g\n",
				colorCyan, e.Term, colorReset, e.Count, e.Weight, e.Contribution))
		}
	}
	return sb.String()
}

// formatHits renders scanner hits with byte offsets.
//
//	⚡ 3 temporal markers
//	  [12-21] yesterday  PAST  w=0.982044
func formatHits(hits []ahocorasick.TermHit) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d temporal markers%s\n", colorBold, len(hits), colorReset))
	for _, h := range hits {
		sb.WriteString(fmt.Sprintf("  %s[%d-%d]%s %s%s%s  %s%s%s  w=%g\n",
			colorGray, h.Start, h.End, colorReset,
			colorCyan, h.Term, colorReset,
			colorMagenta, h.Category.String(), colorReset,
			h.Weight))
	}
	return sb.String()
}

// formatLexiconStats renders the lexicon summary.
func formatLexiconStats(stats lexicon.Stats, arities []int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d lexicon entries%s\n", colorBold, stats.Total, colorReset))
	for i, cat := range categoryOrder {
		sb.WriteString(fmt.Sprintf("  %s%-8s%s %d\n", colorMagenta, cat, colorReset, stats.Entries[i]))
	}
	sb.WriteString(fmt.Sprintf("  Weights: %g to %g\n", stats.MinWeight, stats.MaxWeight))
	sb.WriteString(fmt.Sprintf("  Arities: %v (longest phrase: %d words)\n", arities, stats.MaxArity))
	return sb.String()
}
