// Package textclean turns remote HTML and text into plain strings that are
// safe to print to a terminal or hand to a screen reader.
package textclean

import (
	"html"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy

	paragraphRe = regexp.MustCompile(`(?i)</p>\s*<p[^>]*>`)
	lineBreakRe = regexp.MustCompile(`(?i)<br\s*/?>`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
)

func textPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// StripHTML turns status HTML into plain text. Paragraphs become blank
// lines, <br> becomes a newline, entities are decoded.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	s = paragraphRe.ReplaceAllString(s, "\n\n")
	s = lineBreakRe.ReplaceAllString(s, "\n")
	s = textPolicy().Sanitize(s)
	s = html.UnescapeString(s)
	s = SanitizeForTerminal(s)
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// SanitizeForTerminal drops escape sequences and control characters so
// remote text cannot drive the terminal or a screen reader. Newlines and
// tabs are kept.
func SanitizeForTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
