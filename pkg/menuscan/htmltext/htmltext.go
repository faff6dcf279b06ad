// Package htmltext extracts visible text lines from HTML markup, for the
// paste path when users copy a menu straight off a restaurant web page.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Elements whose text content is never visible menu text.
var skipTags = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {}, "head": {}, "template": {},
}

// Elements that imply a line break around their content.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "li": {}, "tr": {}, "td": {}, "section": {},
	"article": {}, "header": {}, "footer": {}, "h1": {}, "h2": {}, "h3": {},
	"h4": {}, "h5": {}, "h6": {}, "ul": {}, "ol": {}, "table": {}, "dt": {},
	"dd": {},
}

// Lines extracts the visible text of an HTML fragment as trimmed, non-empty
// lines. If the input does not parse as HTML it is split on newlines as-is,
// so plain text passes through unchanged.
func Lines(s string) []string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return splitLines(s)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := skipTags[n.Data]; skip {
				return
			}
			if n.Data == "br" {
				buf.WriteByte('\n')
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			if _, block := blockTags[n.Data]; block {
				buf.WriteByte('\n')
			}
		}
	}
	walk(doc)

	return splitLines(buf.String())
}

func splitLines(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}
