package content

import (
	"regexp"
	"strings"
)

var (
	strippedChars = regexp.MustCompile(`["“”-]`)
	citationMarks = regexp.MustCompile(`\[[^\]]+\]`)
)

// Normalize removes straight and curly double quotes, hyphens, and
// bracketed citation markers the model tends to emit, then trims
// surrounding whitespace. Idempotent.
func Normalize(text string) string {
	text = strippedChars.ReplaceAllString(text, "")
	text = citationMarks.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
