// Package lexicon embeds the temporal-orientation weight tables for
// compile-time inclusion. Each JSON file holds one category's surface
// forms (single words and space-joined phrases up to three words) with
// their regression weights. The domain lexicon package parses these files
// via Load(FS, "v1").
package lexicon

import "embed"

//go:embed v1/*.json
var FS embed.FS
