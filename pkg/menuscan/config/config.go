package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon represents the classifier phrase-list configuration
type Lexicon struct {
	ModifierPhrases    []string `yaml:"modifier_phrases"`
	ConnectorWords     []string `yaml:"connector_words"`
	DescriptivePhrases []string `yaml:"descriptive_phrases"`
}

// LoadLexicon loads classifier phrase lists from a YAML file
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, err
	}

	return &lex, nil
}

// Filter represents the plain-text filter thresholds
type Filter struct {
	MaxItems         int     `yaml:"max_items"`
	MinLen           int     `yaml:"min_len"`
	NumericDominance float64 `yaml:"numeric_dominance"`
}

// LoadFilter loads plain-text filter thresholds from a YAML file
func LoadFilter(path string) (*Filter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f Filter
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return &f, nil
}
