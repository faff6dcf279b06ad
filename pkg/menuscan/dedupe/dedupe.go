package dedupe

import (
	"sort"
	"strings"
	"unicode"

	"github.com/platewise/menuscan/pkg/menuscan/normalize"
)

// Threshold is the Jaccard token-overlap above which two candidates are
// treated as the same dish. OCR frequently emits near-identical strings for
// one dish across overlapping scan regions, so exact-match dedup alone is
// not enough.
const Threshold = 0.86

// Candidate is a scored extraction result keyed for deduplication.
type Candidate struct {
	Text       string
	Norm       string
	Confidence float64
}

// Canonical computes the dedup key: accents folded, lowercased, digits and
// currency symbols stripped, every character outside [a-z\s-] stripped,
// whitespace collapsed.
func Canonical(text string) string {
	folded := strings.ToLower(normalize.FoldAccents(text))
	var b strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Filter removes near-duplicate candidates. Candidates with an empty norm
// are discarded; the rest are stable-sorted by confidence descending and
// accepted greedily, so the higher-quality variant of a near-duplicate pair
// wins and equal-confidence ties keep first-seen menu order.
func Filter(cands []Candidate) []Candidate {
	pool := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Norm != "" {
			pool = append(pool, c)
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Confidence > pool[j].Confidence
	})

	var (
		out    []Candidate
		tokens [][]string
	)
	for _, c := range pool {
		ct := strings.Fields(c.Norm)
		dup := false
		for i, kept := range out {
			if kept.Norm == c.Norm || jaccard(tokens[i], ct) >= Threshold {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
			tokens = append(tokens, ct)
		}
	}
	return out
}

// jaccard calculates token-set similarity between two word lists.
// Similarity is 0 if either set is empty.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	aSet := make(map[string]struct{}, len(a))
	for _, s := range a {
		aSet[s] = struct{}{}
	}
	bSet := make(map[string]struct{}, len(b))
	for _, s := range b {
		bSet[s] = struct{}{}
	}

	intersection := 0
	for s := range aSet {
		if _, ok := bSet[s]; ok {
			intersection++
		}
	}

	union := len(aSet) + len(bSet) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
