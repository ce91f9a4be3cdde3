package domain

import (
	"regexp"
	"strings"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a raw answer for lexical comparison: lowercase,
// strip everything that is not a word character or whitespace, collapse
// whitespace runs to a single space, and trim. Trimming happens after
// punctuation removal so that stripped edge characters cannot leave stray
// spaces behind; this keeps Normalize idempotent.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonWordPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
