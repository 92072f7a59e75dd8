package cmd

import (
	"fmt"
	"strings"

	"github.com/phugh/prospectimo"
	"github.com/phugh/prospectimo/internal/adapters/ahocorasick"
	"github.com/phugh/prospectimo/internal/domain/tokenize"
	"github.com/spf13/cobra"
)

var (
	scanFile   string
	scanLocale string
)

var scanCmd = &cobra.Command{
	Use:          "scan [flags] [text ...]",
	Short:        "Locate temporal markers in a text",
	Long:         "Scans raw text for every lexicon surface form and reports each occurrence with byte offsets. Offsets refer to the normalized (trimmed, lowercased) text.",
	Args:         cobra.ArbitraryArgs,
	RunE:         runScan,
	SilenceUsage: true,
}

func init() {
	f := scanCmd.Flags()
	f.StringVarP(&scanFile, "file", "f", "", "Read input text from file")
	f.StringVar(&scanLocale, "locale", "US", "Input spelling: US, GB")
}

func runScan(cmd *cobra.Command, args []string) error {
	text, err := readInputFrom(args, scanFile)
	if err != nil {
		return err
	}

	analyzer, err := prospectimo.Default()
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}

	normalized := tokenize.Normalize(text)
	if normalized == "" {
		return fmt.Errorf("no input text to scan")
	}
	if tokenize.Locale(scanLocale) == tokenize.LocaleGB {
		// The scanner matches American surface forms; rebuild the text
		// from translated tokens so GB spellings still hit.
		words := tokenize.Translate(tokenize.Words(normalized), tokenize.LocaleGB)
		normalized = strings.Join(words, " ")
	}

	scanner := ahocorasick.NewScanner(analyzer.Lexicon())
	hits := scanner.Scan(normalized)
	fmt.Print(formatHits(hits))
	return nil
}
