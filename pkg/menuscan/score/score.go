package score

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/platewise/menuscan/pkg/menuscan/classify"
)

// Confidence bounds. Scores never reach exactly 0 or 1 to reflect the
// irreducible uncertainty of a heuristic classifier.
const (
	MinConfidence = 0.05
	MaxConfidence = 0.95

	base            = 0.55
	descriptionFlat = 0.12
)

// Scorer assigns a heuristic confidence in [MinConfidence, MaxConfidence]
// to a folded candidate string based on shape features.
type Scorer struct {
	classifier *classify.Classifier
}

// NewScorer creates a scorer backed by the given classifier's lexicon.
func NewScorer(c *classify.Classifier) *Scorer {
	return &Scorer{classifier: c}
}

// Confidence scores a folded candidate string. Description-like strings
// short-circuit to a flat low score; everything else starts from the base
// and accumulates shape adjustments.
func (s *Scorer) Confidence(text string) float64 {
	if s.classifier.DescriptionLike(text) {
		return descriptionFlat
	}

	v := base
	words := len(strings.Fields(text))

	switch {
	case words >= 2 && words <= 6:
		v += 0.20
	case words == 1:
		v -= 0.12
	case words >= 7:
		v -= 0.22
	}

	if utf8.RuneCountInString(text) >= 40 {
		v -= 0.18
	}

	// Short or ALL-CAPS lines dodge the flat short-circuit above, but a
	// long exempted line that still reads as prose pays for it here.
	if s.classifier.DescriptionSignals(text) {
		v -= 0.35
	}

	if digitCount(text) >= 2 {
		v -= 0.25
	}

	if classify.IsAllCaps(text) && words >= 2 && words <= 6 {
		v += 0.18
	}
	if firstWordTitleCase(text) && words >= 2 && words <= 6 {
		v += 0.08
	}

	return clamp(v)
}

func clamp(v float64) float64 {
	if v < MinConfidence {
		return MinConfidence
	}
	if v > MaxConfidence {
		return MaxConfidence
	}
	return v
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// firstWordTitleCase: an uppercase first letter followed by a lowercase
// one, e.g. "Grilled". ALL-CAPS words take the caps bonus instead.
func firstWordTitleCase(s string) bool {
	word := s
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		word = s[:i]
	}
	first, size := utf8.DecodeRuneInString(word)
	if !unicode.IsUpper(first) {
		return false
	}
	second, _ := utf8.DecodeRuneInString(word[size:])
	return unicode.IsLower(second)
}
