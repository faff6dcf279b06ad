// Package menuscan extracts a clean, deduplicated, confidence-ranked list
// of probable dish names from noisy OCR output of a photographed restaurant
// menu, or from pasted free text. It is a best-effort heuristic filter: its
// failure mode is returning fewer or no candidates, never an error, because
// the caller always provides a manual-entry fallback.
package menuscan

import (
	"github.com/platewise/menuscan/pkg/menuscan/classify"
	"github.com/platewise/menuscan/pkg/menuscan/dedupe"
	"github.com/platewise/menuscan/pkg/menuscan/fold"
	"github.com/platewise/menuscan/pkg/menuscan/normalize"
	"github.com/platewise/menuscan/pkg/menuscan/plaintext"
	"github.com/platewise/menuscan/pkg/menuscan/score"
)

// Candidate is a probable dish name recovered from menu text.
type Candidate struct {
	// Text is the human-facing string, possibly a title with a folded
	// description appended after an em-dash.
	Text string
	// Norm is the canonical dedup key: lowercase, digits and punctuation
	// stripped, whitespace collapsed.
	Norm string
	// Confidence is in [0.05, 0.95]; higher means more likely a real dish
	// title.
	Confidence float64
}

// Options configures an Engine. Zero-value fields use built-in defaults.
type Options struct {
	// Lexicon overrides the classifier phrase lists.
	Lexicon *classify.Lexicon
	// Filter overrides the plain-text filter thresholds.
	Filter *plaintext.Config
}

// Engine runs the extraction pipelines. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	classifier *classify.Classifier
	scorer     *score.Scorer
	filterCfg  plaintext.Config
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	lex := classify.DefaultLexicon()
	if opts.Lexicon != nil {
		lex = *opts.Lexicon
	}
	filterCfg := plaintext.DefaultConfig()
	if opts.Filter != nil {
		filterCfg = *opts.Filter
	}

	classifier := classify.New(lex)
	return &Engine{
		classifier: classifier,
		scorer:     score.NewScorer(classifier),
		filterCfg:  filterCfg,
	}
}

// Extract runs the confidence pipeline over raw OCR lines:
// normalize, classify, fold, score, dedupe. The result is ordered by
// confidence descending; ties keep first-seen menu order. Empty, malformed,
// or entirely-noise input returns an empty slice.
func (e *Engine) Extract(rawLines []string) []Candidate {
	classified := make([]fold.Line, 0, len(rawLines))
	for _, raw := range rawLines {
		line := normalize.Line(raw)
		if line == "" {
			continue
		}
		role := e.classifier.Classify(line)
		if role == classify.RoleNoise {
			continue
		}
		classified = append(classified, fold.Line{Text: line, Role: role})
	}

	folded := fold.Fold(classified)
	cands := make([]dedupe.Candidate, 0, len(folded))
	for _, text := range folded {
		cands = append(cands, dedupe.Candidate{
			Text:       text,
			Norm:       dedupe.Canonical(text),
			Confidence: e.scorer.Confidence(text),
		})
	}

	deduped := dedupe.Filter(cands)
	out := make([]Candidate, len(deduped))
	for i, c := range deduped {
		out[i] = Candidate{Text: c.Text, Norm: c.Norm, Confidence: c.Confidence}
	}
	return out
}

// FilterPlainText runs the legacy pipeline over a pasted text block and
// returns a deduplicated, order-preserving, newline-joined list of accepted
// lines, capped at the configured maximum. Empty or all-noise input returns
// the empty string.
func (e *Engine) FilterPlainText(text string) string {
	return plaintext.Filter(text, e.filterCfg)
}
