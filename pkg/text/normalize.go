package text

import (
	"regexp"
	"strings"
)

var (
	paragraphBreak = regexp.MustCompile(`\n\s*\n\s*`)
	lineBreak      = regexp.MustCompile(`\n\s*`)
)

// Normalize trims text, unifies line endings, collapses runs of spaces and
// keeps at most one blank line between paragraphs.
func Normalize(text string) string {
	text = strings.TrimSpace(text)

	// \a marks line breaks while whitespace is collapsed
	text = strings.ReplaceAll(text, "\a", "")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	text = paragraphBreak.ReplaceAllString(text, "\a\a")
	text = lineBreak.ReplaceAllString(text, "\a")

	text = strings.Join(strings.Fields(text), " ")
	text = strings.ReplaceAll(text, "\a", "\n")

	return strings.TrimSpace(text)
}
