package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phugh/prospectimo"
	boltcache "github.com/phugh/prospectimo/internal/adapters/bbolt"
	fsw "github.com/phugh/prospectimo/internal/adapters/fsnotify"
	"github.com/spf13/cobra"
)

var watchCache string

var watchCmd = &cobra.Command{
	Use:          "watch <file>",
	Short:        "Re-score a text file whenever it changes",
	Long:         "Watches a file and prints fresh scores and orientation after every save. Unchanged content is served from the cache when --cache is set.",
	Args:         cobra.ExactArgs(1),
	RunE:         runWatch,
	SilenceUsage: true,
}

func init() {
	watchCmd.Flags().StringVar(&watchCache, "cache", "", "Path to a bbolt result cache")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	analyzer, err := prospectimo.Default()
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}

	var cache *boltcache.Cache
	if watchCache != "" {
		cache, err = boltcache.Open(watchCache)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer cache.Close()
	}

	opts := prospectimo.DefaultOptions()
	opts.Output = prospectimo.ShapeFull

	rescore := func(filePath string) {
		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: read %s: %v\n", filePath, err)
			return
		}
		text := string(data)

		var key string
		if cache != nil {
			key = boltcache.Key(text, optionsFingerprint(opts))
			if raw, ok, err := cache.Get(key); err == nil && ok {
				var cached prospectimo.Result
				if json.Unmarshal(raw, &cached) == nil {
					fmt.Printf("%s— %s (cached)%s\n", colorGray, filePath, colorReset)
					fmt.Print(formatWatchResult(&cached))
					return
				}
			}
		}

		result, err := analyzer.Analyze(text, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", filePath, err)
			return
		}
		if cache != nil {
			if raw, err := json.Marshal(result); err == nil {
				cache.Put(key, raw)
			}
		}
		fmt.Printf("%s— %s%s\n", colorGray, filePath, colorReset)
		fmt.Print(formatWatchResult(result))
	}

	watcher, err := fsw.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	if err := watcher.Watch(path, rescore); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	// Score once up front, then block until interrupted.
	rescore(path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

// formatWatchResult renders everything a rescore produced: the score table
// plus the per-category match lists.
func formatWatchResult(result *prospectimo.Result) string {
	return formatScores(result) + formatMatches(result)
}
