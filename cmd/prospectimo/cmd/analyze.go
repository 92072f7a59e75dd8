package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phugh/prospectimo"
	boltcache "github.com/phugh/prospectimo/internal/adapters/bbolt"
	"github.com/phugh/prospectimo/internal/domain/score"
	"github.com/phugh/prospectimo/internal/domain/tokenize"
	"github.com/spf13/cobra"
)

var (
	analyzeEncoding string
	analyzeOutput   string
	analyzeMin      float64
	analyzeMax      float64
	analyzeNGrams   []int
	analyzeNoGrams  bool
	analyzeWCGrams  bool
	analyzeLocale   string
	analyzePlaces   int
	analyzeSort     string
	analyzeVerbose  bool
	analyzeJSON     bool
	analyzeFile     string
	analyzeCache    string
)

var analyzeCmd = &cobra.Command{
	Use:          "analyze [flags] [text ...]",
	Short:        "Score a text's temporal orientation",
	Long:         "Scores text against the temporal lexicon. Reads from args, --file, or stdin.",
	Args:         cobra.ArbitraryArgs,
	RunE:         runAnalyze,
	SilenceUsage: true,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVarP(&analyzeEncoding, "encoding", "e", "frequency", "Encoding: binary, frequency")
	f.StringVarP(&analyzeOutput, "output", "o", "lex", "Output shape: lex, orientation, matches, full")
	f.Float64Var(&analyzeMin, "min", 0, "Minimum lexicon weight (inclusive)")
	f.Float64Var(&analyzeMax, "max", 0, "Maximum lexicon weight (inclusive)")
	f.IntSliceVar(&analyzeNGrams, "ngrams", []int{2, 3}, "N-gram arities to match")
	f.BoolVar(&analyzeNoGrams, "no-ngrams", false, "Disable n-gram matching entirely")
	f.BoolVar(&analyzeWCGrams, "wc-grams", false, "Count n-gram tokens toward the wordcount denominator")
	f.StringVar(&analyzeLocale, "locale", "US", "Input spelling: US, GB")
	f.IntVar(&analyzePlaces, "places", 9, "Decimal places for numeric output")
	f.StringVar(&analyzeSort, "sort", "freq", "Match ordering: freq, weight, lex")
	f.BoolVarP(&analyzeVerbose, "verbose", "v", false, "Append winning category and score to orientation output")
	f.BoolVar(&analyzeJSON, "json", false, "Emit JSON instead of formatted output")
	f.StringVarP(&analyzeFile, "file", "f", "", "Read input text from file")
	f.StringVar(&analyzeCache, "cache", "", "Path to a bbolt result cache (skip rescoring unchanged text)")
}

// readInputFrom resolves the input text: args first, then file, then stdin.
func readInputFrom(args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), nil
	}
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no input: pass text as arguments, --file, or pipe to stdin")
}

// buildOptions maps flags onto an Options struct. Validation and fallback
// for bad values happen inside the engine; flags pass through as-is.
func buildOptions() prospectimo.Options {
	opts := prospectimo.DefaultOptions()
	opts.Encoding = score.Encoding(analyzeEncoding)
	opts.Output = prospectimo.Shape(analyzeOutput)
	opts.Min = analyzeMin
	opts.Max = analyzeMax
	opts.NGrams = analyzeNGrams
	if analyzeNoGrams {
		opts.NGrams = []int{}
	}
	opts.WCGrams = analyzeWCGrams
	opts.Locale = tokenize.Locale(analyzeLocale)
	opts.Places = analyzePlaces
	opts.SortBy = prospectimo.SortOrder(analyzeSort)
	opts.Verbose = analyzeVerbose
	return opts
}

// optionsFingerprint folds every score-relevant option into a stable string
// for cache keying.
func optionsFingerprint(o prospectimo.Options) string {
	return fmt.Sprintf("e=%s|o=%s|min=%g|max=%g|ng=%v|wc=%t|loc=%s|p=%d|s=%s|v=%t",
		o.Encoding, o.Output, o.Min, o.Max, o.NGrams, o.WCGrams, o.Locale, o.Places, o.SortBy, o.Verbose)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInputFrom(args, analyzeFile)
	if err != nil {
		return err
	}

	analyzer, err := prospectimo.Default()
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}

	opts := buildOptions()

	var cache *boltcache.Cache
	var cacheKey string
	if analyzeCache != "" {
		cache, err = boltcache.Open(analyzeCache)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer cache.Close()

		cacheKey = boltcache.Key(text, optionsFingerprint(opts))
		if raw, ok, err := cache.Get(cacheKey); err == nil && ok {
			var cached prospectimo.Result
			if json.Unmarshal(raw, &cached) == nil {
				printResult(&cached, opts, analyzeJSON)
				return nil
			}
		}
	}

	result, err := analyzer.Analyze(text, opts)
	if err != nil {
		return err
	}

	if cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := cache.Put(cacheKey, raw); err != nil {
				fmt.Fprintf(os.Stderr, "warning: cache write failed: %v\n", err)
			}
		}
	}

	printResult(result, opts, analyzeJSON)
	return nil
}

func printResult(result *prospectimo.Result, opts prospectimo.Options, asJSON bool) {
	printDiagnostics(result.Diagnostics)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result)
		return
	}

	switch opts.Output {
	case prospectimo.ShapeOrientation:
		fmt.Print(formatOrientation(result))
	case prospectimo.ShapeMatches:
		fmt.Print(formatMatches(result))
	case prospectimo.ShapeFull:
		fmt.Print(formatScores(result))
		fmt.Print(formatMatches(result))
	default:
		fmt.Print(formatScores(result))
	}
}
