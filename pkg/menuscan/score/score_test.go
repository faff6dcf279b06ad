package score

import (
	"math"
	"testing"

	"github.com/platewise/menuscan/pkg/menuscan/classify"
)

func newScorer() *Scorer {
	return NewScorer(classify.New(classify.Lexicon{}))
}

func TestConfidenceBounds(t *testing.T) {
	s := newScorer()
	inputs := []string{
		"",
		"Burger",
		"CAESAR SALAD",
		"Caesar Salad",
		"a delicate blend of seasonal vegetables tossed with fresh herbs",
		"PASTA PRIMAVERA — a delicate blend of seasonal vegetables tossed with fresh herbs",
		"Combo 42 Plate 9",
		"An Exceptionally Long Dish Name That Keeps Going And Going Forever More",
	}
	for _, in := range inputs {
		v := s.Confidence(in)
		if v < MinConfidence || v > MaxConfidence {
			t.Errorf("Confidence(%q) = %f out of [%f, %f]", in, v, MinConfidence, MaxConfidence)
		}
	}
}

func TestConfidenceCapsTitle(t *testing.T) {
	s := newScorer()
	v := s.Confidence("CAESAR SALAD")
	// base + word-count bonus + caps bonus
	if math.Abs(v-0.93) > 1e-9 {
		t.Errorf("Expected 0.93, got %f", v)
	}
}

func TestConfidenceTitleCaseBonus(t *testing.T) {
	s := newScorer()
	v := s.Confidence("Caesar Salad")
	if math.Abs(v-0.83) > 1e-9 {
		t.Errorf("Expected 0.83, got %f", v)
	}
}

func TestConfidenceSingleWordPenalty(t *testing.T) {
	s := newScorer()
	v := s.Confidence("Burger")
	if math.Abs(v-0.43) > 1e-9 {
		t.Errorf("Expected 0.43, got %f", v)
	}
}

func TestConfidenceDescriptionShortCircuit(t *testing.T) {
	s := newScorer()
	v := s.Confidence("a delicate blend of seasonal vegetables tossed with fresh herbs")
	if v != 0.12 {
		t.Errorf("Description-like string should score flat 0.12, got %f", v)
	}
}

func TestConfidenceDigitPenalty(t *testing.T) {
	s := newScorer()
	clean := s.Confidence("Grilled Salmon")
	noisy := s.Confidence("Grilled Salmon 42")
	if noisy >= clean {
		t.Errorf("Digits should lower confidence: %f >= %f", noisy, clean)
	}
}

func TestConfidenceCapsBeatsMixedCase(t *testing.T) {
	s := newScorer()
	caps := s.Confidence("CAESAR SALAD")
	mixed := s.Confidence("Caesar Salad")
	if caps <= mixed {
		t.Errorf("ALL-CAPS short title should outrank mixed case: %f <= %f", caps, mixed)
	}
}
