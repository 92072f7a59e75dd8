package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prospectimo",
	Short: "prospectimo — temporal orientation of text",
	Long:  "Scores whether a text's language leans toward past, present, or future framing, using a weighted lexicon.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(lexiconCmd)
	rootCmd.AddCommand(versionCmd)
}
