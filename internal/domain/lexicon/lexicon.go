// Package lexicon loads and serves the temporal-orientation weight tables.
// It is the authority on category weights. The tables are loaded once at
// startup from embedded JSON files and provide O(1) surface-form lookup via
// flat hash maps.
//
// The loaded Lexicon is read-only. Unsynchronized concurrent reads are safe;
// nothing mutates it after Load returns.
package lexicon

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// Category identifies one of the three temporal orientations.
type Category int

const (
	Past    Category = 0
	Present Category = 1
	Future  Category = 2
)

// CategoryCount is the number of temporal categories.
const CategoryCount = 3

// Categories lists all categories in priority order. Earlier entries win
// score ties during orientation selection.
var Categories = [CategoryCount]Category{Past, Present, Future}

// Regression intercepts for each category. These are fixed constants of the
// fitted model, not lexicon data.
const (
	InterceptPast    = -0.649406376419
	InterceptPresent = 0.236749577324
	InterceptFuture  = -0.570547567181
)

// String returns the uppercase table key for a category ("PAST", "PRESENT",
// "FUTURE"). Unknown values return "UNKNOWN".
func (c Category) String() string {
	switch c {
	case Past:
		return "PAST"
	case Present:
		return "PRESENT"
	case Future:
		return "FUTURE"
	default:
		return "UNKNOWN"
	}
}

// Label returns the human-readable orientation label ("Past", "Present",
// "Future").
func (c Category) Label() string {
	switch c {
	case Past:
		return "Past"
	case Present:
		return "Present"
	case Future:
		return "Future"
	default:
		return "Unknown"
	}
}

// Intercept returns the category's regression intercept.
func (c Category) Intercept() float64 {
	switch c {
	case Past:
		return InterceptPast
	case Present:
		return InterceptPresent
	case Future:
		return InterceptFuture
	default:
		return 0
	}
}

// FromName maps an uppercase table key to its Category constant.
// Returns -1 for unknown names.
func FromName(name string) Category {
	switch name {
	case "PAST":
		return Past
	case "PRESENT":
		return Present
	case "FUTURE":
		return Future
	default:
		return -1
	}
}

// categoryDef is the JSON schema for one category file.
type categoryDef struct {
	Category string             `json:"category"`
	Weights  map[string]float64 `json:"weights"`
}

// Stats summarizes the loaded tables.
type Stats struct {
	Entries   [CategoryCount]int // surface forms per category
	Total     int                // total entries across categories
	MinWeight float64
	MaxWeight float64
	MaxArity  int // longest phrase, in words
}

// Lexicon holds the parsed category weight tables.
type Lexicon struct {
	weights [CategoryCount]map[string]float64
	stats   Stats
}

// Load reads all JSON files from an fs.FS directory and builds the lexicon.
// Files are loaded in sorted order for deterministic results. Returns an
// error if any file fails to parse, names an unknown category, or if no
// entries are found at all.
func Load(fsys fs.FS, dir string) (*Lexicon, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read lexicon dir %q: %w", dir, err)
	}

	// Sort for deterministic load order
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	tables := make(map[string]map[string]float64, CategoryCount)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := fs.ReadFile(fsys, dir+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		var def categoryDef
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
		if FromName(def.Category) < 0 {
			return nil, fmt.Errorf("%s: unknown category %q", entry.Name(), def.Category)
		}
		tables[def.Category] = def.Weights
	}

	return New(tables)
}

// New builds a Lexicon from category→form→weight tables. Missing categories
// get empty tables; unknown category names are an error. Intended for tests
// that inject small fixture lexicons.
func New(tables map[string]map[string]float64) (*Lexicon, error) {
	l := &Lexicon{}
	for _, c := range Categories {
		l.weights[c] = map[string]float64{}
	}

	total := 0
	first := true
	for name, weights := range tables {
		c := FromName(name)
		if c < 0 {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		for form, w := range weights {
			l.weights[c][form] = w
			total++
			if first || w < l.stats.MinWeight {
				l.stats.MinWeight = w
			}
			if first || w > l.stats.MaxWeight {
				l.stats.MaxWeight = w
			}
			first = false
			if arity := strings.Count(form, " ") + 1; arity > l.stats.MaxArity {
				l.stats.MaxArity = arity
			}
		}
		l.stats.Entries[c] = len(weights)
	}
	if total == 0 {
		return nil, fmt.Errorf("lexicon is empty: no weight entries")
	}
	l.stats.Total = total
	return l, nil
}

// Weights returns the form→weight table for a category. The returned map is
// shared and must not be mutated.
func (l *Lexicon) Weights(c Category) map[string]float64 {
	if int(c) < 0 || int(c) >= CategoryCount {
		return nil
	}
	return l.weights[c]
}

// Weight returns the weight for a surface form in a category.
// The second return is false when the form is not in the table.
func (l *Lexicon) Weight(c Category, form string) (float64, bool) {
	w, ok := l.Weights(c)[form]
	return w, ok
}

// Stats returns summary statistics for the loaded tables.
func (l *Lexicon) Stats() Stats {
	return l.stats
}

// Arities returns the sorted set of phrase arities (word counts) that occur
// across all tables. A lexicon of only single words returns [1].
func (l *Lexicon) Arities() []int {
	seen := map[int]bool{}
	for _, c := range Categories {
		for form := range l.weights[c] {
			seen[strings.Count(form, " ")+1] = true
		}
	}
	arities := make([]int, 0, len(seen))
	for n := range seen {
		arities = append(arities, n)
	}
	sort.Ints(arities)
	return arities
}
