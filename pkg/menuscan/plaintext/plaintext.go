// Package plaintext implements the simpler filter used for the "paste menu
// text" entry path: no confidence ranking, just a cleaned, deduplicated,
// capped list for manual multi-select.
package plaintext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/platewise/menuscan/pkg/menuscan/normalize"
)

// Config is the filter's tuning surface. The zero value of any field means
// "use the default"; out-of-range values are clamped.
type Config struct {
	// MaxItems caps accepted lines. Default 30, clamped to [1, 200].
	MaxItems int
	// MinLen drops lines shorter than this many characters after price
	// stripping. Default 4, clamped to [1, 50].
	MinLen int
	// NumericDominance drops digit-heavy lines whose digit-to-length ratio
	// exceeds it. Default 0.35, clamped to [0, 1].
	NumericDominance float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{MaxItems: 30, MinLen: 4, NumericDominance: 0.35}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.MaxItems == 0 {
		c.MaxItems = def.MaxItems
	}
	if c.MinLen == 0 {
		c.MinLen = def.MinLen
	}
	if c.NumericDominance == 0 {
		c.NumericDominance = def.NumericDominance
	}
	c.MaxItems = clampInt(c.MaxItems, 1, 200)
	c.MinLen = clampInt(c.MinLen, 1, 50)
	if c.NumericDominance < 0 {
		c.NumericDominance = 0
	}
	if c.NumericDominance > 1 {
		c.NumericDominance = 1
	}
	return c
}

// Section headers dropped by exact match, case-insensitive.
var sectionHeaders = map[string]struct{}{
	"menu": {}, "appetizers": {}, "appetizer": {}, "starters": {},
	"entrees": {}, "entrées": {}, "mains": {}, "main course": {},
	"main courses": {}, "desserts": {}, "dessert": {}, "beverages": {},
	"drinks": {}, "sides": {}, "salads": {}, "soups": {}, "specials": {},
	"breakfast": {}, "lunch": {}, "dinner": {}, "kids menu": {},
}

// Menu-number cues that rescue digit-heavy lines ("Combo No. 3").
var cueWords = []string{"combo", "no.", "#", "item", "option", "size"}

// Filter cleans a pasted text block into a newline-joined list of probable
// menu lines: section headers and digit-dominated lines are dropped,
// trailing prices stripped, exact duplicates removed order-preserving, and
// the result capped at cfg.MaxItems. Empty or all-noise input yields "".
func Filter(text string, cfg Config) string {
	cfg = cfg.normalized()

	seen := make(map[string]struct{})
	var kept []string
	for _, raw := range strings.Split(text, "\n") {
		line := normalize.Line(raw)
		if line == "" {
			continue
		}
		if _, header := sectionHeaders[strings.ToLower(line)]; header {
			continue
		}
		line = normalize.StripPrice(line)
		if utf8.RuneCountInString(line) < cfg.MinLen {
			continue
		}
		if numericDominant(line, cfg.NumericDominance) && !hasCue(line) {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		kept = append(kept, line)
		if len(kept) >= cfg.MaxItems {
			break
		}
	}
	return strings.Join(kept, "\n")
}

// numericDominant: at least three digits and a digit-to-length ratio above
// the threshold.
func numericDominant(line string, ratio float64) bool {
	digits := 0
	total := 0
	for _, r := range line {
		total++
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 3 && float64(digits)/float64(total) > ratio
}

func hasCue(line string) bool {
	low := strings.ToLower(line)
	for _, cue := range cueWords {
		if strings.Contains(low, cue) {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
