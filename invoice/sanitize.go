package invoice

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// SanitizeFilename turns free text into a token safe to use as a single path
// component. Whitespace runs become underscores, anything outside
// [A-Za-z0-9_.-] is stripped, and leading/trailing separators are trimmed.
// Empty input yields "untitled"; input that sanitizes away to nothing yields
// "sanitized_recipient" so the two cases stay distinguishable.
func SanitizeFilename(s string) string {
	if s == "" {
		return "untitled"
	}

	s = whitespaceRun.ReplaceAllString(s, "_")
	s = unsafeChars.ReplaceAllString(s, "")
	s = strings.Trim(s, "_-.")

	if s == "" {
		return "sanitized_recipient"
	}
	return s
}
