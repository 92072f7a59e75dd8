// prospectimo scores the temporal orientation of English text.
// Single binary, zero config — lexicon embedded, nothing to download.
package main

import (
	"os"

	"github.com/phugh/prospectimo/cmd/prospectimo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
