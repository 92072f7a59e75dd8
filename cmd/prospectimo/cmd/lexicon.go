package cmd

import (
	"fmt"

	"github.com/phugh/prospectimo"
	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Show lexicon statistics",
	RunE:  runLexicon,
}

func runLexicon(cmd *cobra.Command, args []string) error {
	analyzer, err := prospectimo.Default()
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}

	lex := analyzer.Lexicon()
	fmt.Print(formatLexiconStats(lex.Stats(), lex.Arities()))
	return nil
}
