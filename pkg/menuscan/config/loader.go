package config

import (
	"fmt"

	"github.com/platewise/menuscan/pkg/menuscan/classify"
	"github.com/platewise/menuscan/pkg/menuscan/plaintext"
)

// Loader loads configuration files and constructs engine components.
// Empty paths fall back to built-in defaults; env/CLI parsing stays at the
// process boundary.
type Loader struct {
	LexiconPath string
	FilterPath  string
}

// Components holds the loaded configuration components
type Components struct {
	Lexicon classify.Lexicon
	Filter  plaintext.Config
}

// Load reads the configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{
		Lexicon: classify.DefaultLexicon(),
		Filter:  plaintext.DefaultConfig(),
	}

	if l.LexiconPath != "" {
		lex, err := LoadLexicon(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		if len(lex.ModifierPhrases) > 0 {
			comp.Lexicon.ModifierPhrases = lex.ModifierPhrases
		}
		if len(lex.ConnectorWords) > 0 {
			comp.Lexicon.ConnectorWords = lex.ConnectorWords
		}
		if len(lex.DescriptivePhrases) > 0 {
			comp.Lexicon.DescriptivePhrases = lex.DescriptivePhrases
		}
	}

	if l.FilterPath != "" {
		f, err := LoadFilter(l.FilterPath)
		if err != nil {
			return nil, fmt.Errorf("load filter config: %w", err)
		}
		if f.MaxItems != 0 {
			comp.Filter.MaxItems = f.MaxItems
		}
		if f.MinLen != 0 {
			comp.Filter.MinLen = f.MinLen
		}
		if f.NumericDominance != 0 {
			comp.Filter.NumericDominance = f.NumericDominance
		}
	}

	return comp, nil
}
