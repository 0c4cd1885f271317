package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Truncate cuts s to at most maxChars runes. Multi-byte characters count as
// one unit. A maxChars of zero or less means no limit.
func Truncate(s string, maxChars int) string {
	if maxChars <= 0 || s == "" {
		return s
	}
	if utf8.RuneCountInString(s) <= maxChars {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxChars])
}

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveWhitespace drops every whitespace character (space, tab, CR, LF,
// form feed) and keeps everything else.
func RemoveWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(s, "")
}

// Password prepares a password field: all whitespace is removed, symbols are
// kept untouched.
func Password(s string) string {
	return RemoveWhitespace(s)
}

// Username keeps only the characters that are valid in an e-mail address or
// a phone number: ASCII letters, digits and @ . _ + -.
func Username(s string) string {
	return nonUsernameRegex.ReplaceAllString(s, "")
}
