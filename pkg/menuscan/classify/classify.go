package classify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role labels a normalized menu line before folding.
type Role int

const (
	RoleTitle Role = iota
	RoleDescription
	RoleModifier
	RoleNoise
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleDescription:
		return "description"
	case RoleModifier:
		return "modifier"
	case RoleNoise:
		return "noise"
	}
	return "unknown"
}

// Lexicon holds the phrase lists the classifier matches against.
// English-only by design; overriding via configuration is the extension
// point for other locales.
type Lexicon struct {
	// ModifierPhrases mark availability notes and qualifiers attached to a
	// dish rather than standalone items.
	ModifierPhrases []string
	// ConnectorWords are marketing-copy connectors that indicate a line is
	// descriptive prose rather than a dish name.
	ConnectorWords []string
	// DescriptivePhrases are multi-word patterns found in dish descriptions.
	DescriptivePhrases []string
}

// DefaultLexicon returns the built-in English phrase lists.
func DefaultLexicon() Lexicon {
	return Lexicon{
		ModifierPhrases: []string{
			"weekend only", "weekend", "weekdays only", "special",
			"vegetarian", "vegan", "gluten free", "gluten-free",
			"dairy free", "limited time", "while supplies last",
			"ask your server", "market price",
		},
		ConnectorWords: []string{
			"with", "and", "served", "loaded", "tossed", "made", "style",
			"flavored", "crispy", "fried", "choice", "spicy",
		},
		DescriptivePhrases: []string{
			"served with", "touch of", "choice of",
		},
	}
}

// Thresholds for the shape heuristics. Short lines and ALL-CAPS lines are
// strongly biased toward "title" because that is how most menus typeset
// dish names.
const (
	maxTitleWords     = 6
	maxTitleLen       = 28
	minDescWords      = 7
	minDescLen        = 38
	maxNoiseWords     = 10
	maxNoiseLen       = 30
	lowercaseHeavyMin = 6
)

var bareNumbersRe = regexp.MustCompile(`^\d+(?:\s+\d+){1,3}$`)

// Classifier labels normalized lines using an ordered rule cascade.
type Classifier struct {
	modifiers  []string
	connectors map[string]struct{}
	phrases    []string
}

// New creates a classifier from the given lexicon. Empty lexicon fields
// fall back to the defaults.
func New(lex Lexicon) *Classifier {
	def := DefaultLexicon()
	if len(lex.ModifierPhrases) == 0 {
		lex.ModifierPhrases = def.ModifierPhrases
	}
	if len(lex.ConnectorWords) == 0 {
		lex.ConnectorWords = def.ConnectorWords
	}
	if len(lex.DescriptivePhrases) == 0 {
		lex.DescriptivePhrases = def.DescriptivePhrases
	}

	c := &Classifier{connectors: make(map[string]struct{}, len(lex.ConnectorWords))}
	for _, p := range lex.ModifierPhrases {
		c.modifiers = append(c.modifiers, strings.ToLower(p))
	}
	for _, w := range lex.ConnectorWords {
		c.connectors[strings.ToLower(w)] = struct{}{}
	}
	for _, p := range lex.DescriptivePhrases {
		c.phrases = append(c.phrases, strings.ToLower(p))
	}
	return c
}

// Classify applies the rule cascade, first match wins:
// modifier, description, over-long noise, numeric noise, title.
// Description runs before the over-long noise rule: a line that reads as a
// dish description must survive to the folding stage even when it is long
// and carries connector words, so the noise rule only swallows long lines
// that fail the description test.
func (c *Classifier) Classify(line string) Role {
	if c.isModifier(line) {
		return RoleModifier
	}
	if c.DescriptionLike(line) {
		return RoleDescription
	}
	if c.tooDescriptive(line) {
		return RoleNoise
	}
	if numericNoise(line) {
		return RoleNoise
	}
	return RoleTitle
}

// isModifier reports whether the line is entirely parenthesized or contains
// any modifier phrase from the lexicon.
func (c *Classifier) isModifier(line string) bool {
	if len(line) > 2 && strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")") {
		return true
	}
	low := strings.ToLower(line)
	for _, p := range c.modifiers {
		if strings.Contains(low, p) {
			return true
		}
	}
	return false
}

// tooDescriptive rejects lines too wordy to be a dish name: more than ten
// words, or a long line carrying a connector word.
func (c *Classifier) tooDescriptive(line string) bool {
	words := strings.Fields(line)
	if len(words) > maxNoiseWords {
		return true
	}
	if utf8.RuneCountInString(line) <= maxNoiseLen {
		return false
	}
	for _, w := range words {
		if _, ok := c.connectors[trimWord(w)]; ok {
			return true
		}
	}
	return false
}

// DescriptionLike reports whether a line reads as descriptive prose.
// ALL-CAPS lines and short lines are never description-like.
func (c *Classifier) DescriptionLike(line string) bool {
	if IsAllCaps(line) || IsShort(line) {
		return false
	}
	return c.DescriptionSignals(line)
}

// DescriptionSignals is the raw description test without the short/caps
// exemption: the line is long and carries a descriptive phrase, sentence
// punctuation, or is lowercase-heavy.
func (c *Classifier) DescriptionSignals(line string) bool {
	words := strings.Fields(line)
	if len(words) < minDescWords && utf8.RuneCountInString(line) < minDescLen {
		return false
	}
	low := strings.ToLower(line)
	for _, p := range c.phrases {
		if strings.Contains(low, p) {
			return true
		}
	}
	if strings.ContainsAny(line, ",;:") {
		return true
	}
	return lowercaseHeavy(words)
}

// numericNoise reports price-only and number-only lines.
func numericNoise(line string) bool {
	if line == "" {
		return true
	}
	digits, letters := 0, 0
	for _, r := range line {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			letters++
		}
	}
	if digits >= 2 && letters == 0 {
		return true
	}
	if digits > letters && digits >= 3 {
		return true
	}
	return bareNumbersRe.MatchString(line)
}

// IsShort reports whether a line has title shape by size alone.
func IsShort(line string) bool {
	return len(strings.Fields(line)) <= maxTitleWords &&
		utf8.RuneCountInString(line) <= maxTitleLen
}

// IsAllCaps reports whether a line contains letters and none of them
// lowercase.
func IsAllCaps(line string) bool {
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// lowercaseHeavy: at least six words with more than half starting lowercase.
func lowercaseHeavy(words []string) bool {
	if len(words) < lowercaseHeavyMin {
		return false
	}
	lower := 0
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsLower(r) {
			lower++
		}
	}
	return lower*2 > len(words)
}

func trimWord(w string) string {
	return strings.ToLower(strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))
}
