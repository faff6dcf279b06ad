package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Bullet glyph variants commonly left in front of menu items by OCR.
var bulletGlyphs = map[rune]struct{}{
	'•': {}, '◦': {}, '▪': {}, '▫': {}, '‣': {}, '∙': {},
	'·': {}, '●': {}, '○': {}, '■': {}, '□': {}, '►': {},
	'➤': {}, '✦': {}, '*': {},
}

// Trailing price/currency pattern: one or two amounts, optional currency
// symbol or code, optional "/" or "-" separated second amount, optional
// trailing "+" or "*", anchored at the end of the line.
var priceRe = func() *regexp.Regexp {
	sym := `[$€£¥₹]`
	code := `(?:usd|eur|gbp|cad|aud|inr|chf)`
	amount := `(?:` + sym + `\s*|` + code + `\s+)?\d{1,4}(?:[.,]\d{1,2})?(?:\s*` + sym + `|\s+` + code + `)?`
	return regexp.MustCompile(`(?i)(?:^|\s)` + amount + `(?:\s*[/-]\s*` + amount + `)?\s*[+*]?\s*$`)
}()

// Line normalizes a raw OCR line: bullet glyphs become spaces, whitespace
// runs collapse to a single space, and the result is trimmed. Blank input
// yields the empty string. Idempotent.
func Line(raw string) string {
	mapped := strings.Map(func(r rune) rune {
		if _, ok := bulletGlyphs[r]; ok {
			return ' '
		}
		return r
	}, raw)
	return strings.Join(strings.Fields(mapped), " ")
}

// StripPrice removes a trailing price/currency token from a line.
// "Caesar Salad 12.99" becomes "Caesar Salad"; a line that is entirely a
// price becomes the empty string.
func StripPrice(line string) string {
	return strings.TrimSpace(priceRe.ReplaceAllString(line, ""))
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldAccents strips combining marks so accented OCR variants compare equal
// ("Crème Brûlée" -> "Creme Brulee").
func FoldAccents(s string) string {
	result, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}
	return result
}
