package sanitizer

import "strings"

var (
	textReplacer = strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"'", "&#039;",
		"<", "&lt;",
		">", "&gt;",
		`\`, "&#92;",
	)

	textareaReplacer = strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		`\`, "&#92;",
		"{", "&#x007B;",
		"}", "&#x007D;",
	)
)

// EscapeText converts & " ' < > and backslash to HTML entities.
// Existing entities are encoded again.
func EscapeText(s string) string {
	return textReplacer.Replace(s)
}

// EscapeTextOnce works like EscapeText but leaves entities that were already
// present in s (&amp;, &lt;, &#39;, …) as they are.
func EscapeTextOnce(s string) string {
	return reEscapedRegex.ReplaceAllString(EscapeText(s), "&$1;")
}

// Text escapes s with EscapeText and trims the result. Use it for single
// line input that must not carry markup.
func Text(s string) string {
	return strings.TrimSpace(EscapeText(s))
}

// Topic escapes s like Text and also folds line breaks, tabs and repeated
// spaces into one space. Suited for titles and subjects.
func Topic(s string) string {
	return CollapseWhitespace(EscapeText(s))
}

// Quote trims s and turns every apostrophe into &#39;. Nothing else is escaped.
func Quote(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "'", "&#39;")
}

// Textarea converts < > \ { } to entities and trims the result.
// Line breaks are preserved as they are.
func Textarea(s string) string {
	return strings.TrimSpace(textareaReplacer.Replace(s))
}

// URL makes s safe for an href attribute. Tabs and line breaks are removed
// and leading control characters dropped the way browsers do before reading
// the scheme. Leading javascript:, vbscript: and data: schemes are then
// stripped until none is left, parentheses, quotes and backticks are removed,
// tag characters and bare ampersands are escaped, and already escaped
// entities such as &amp; are kept. Slashes, colons, question marks and equal
// signs pass through.
func URL(s string) string {
	s = urlTabNewlineRegex.ReplaceAllString(strings.TrimSpace(s), "")
	for {
		next := unsafeSchemeRegex.ReplaceAllString(urlLeadingCtrlRegex.ReplaceAllString(s, ""), "")
		if next == s {
			break
		}
		s = next
	}
	s = urlNoiseRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(EscapeTextOnce(s))
}
