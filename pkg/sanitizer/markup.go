package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ugcPolicy is safe for concurrent use once built.
var ugcPolicy = bluemonday.UGCPolicy()

var (
	description = Compose(
		StripScriptBlocks,
		StripMarkupTags,
		StripPlaceholders,
		StripCodeBlocks,
		UnwrapBBCode,
		func(s string) string { return descriptionNoiseRegex.ReplaceAllString(s, " ") },
		strings.TrimSpace,
	)

	keywords = Compose(
		StripTags,
		func(s string) string { return keywordNoiseRegex.ReplaceAllString(s, " ") },
		strings.TrimSpace,
	)
)

// StripScriptBlocks removes <script> and <style> elements together with their content.
func StripScriptBlocks(s string) string {
	s = scriptBlockRegex.ReplaceAllString(s, "")
	return styleBlockRegex.ReplaceAllString(s, "")
}

// StripMarkupTags removes tags whose name starts with a letter, slash, bang
// or question mark. A lone "<" followed by a space survives, so "2 < 3" is
// left intact.
func StripMarkupTags(s string) string {
	return markupTagRegex.ReplaceAllString(s, "")
}

// StripTags removes anything that looks like a tag, comment or processing
// instruction, including an unclosed tag at the end of s.
func StripTags(s string) string {
	return looseTagRegex.ReplaceAllString(s, "")
}

// StripPlaceholders removes {WIDGET_...} and {LNG_...} template tokens.
func StripPlaceholders(s string) string {
	return placeholderRegex.ReplaceAllString(s, "")
}

// StripCodeBlocks removes [code]...[/code] and [ex]...[/ex] BBCode blocks.
func StripCodeBlocks(s string) string {
	return codeBlockRegex.ReplaceAllString(s, "")
}

// StripEmbeddedCode removes <?...?> blocks.
func StripEmbeddedCode(s string) string {
	return embeddedCodeRegex.ReplaceAllString(s, "")
}

// UnwrapBBCode replaces [tag attrs]content[/tag] with content. The closing
// tag must carry the same name as the opening one (case-insensitive).
// Nested pairs are unwrapped as well; an opening tag without a matching
// closing tag is kept.
func UnwrapBBCode(s string) string {
	var b strings.Builder
	rest := s

	for {
		loc := bbOpenTagRegex.FindStringSubmatchIndex(rest)
		if loc == nil {
			b.WriteString(rest)
			break
		}

		closing := "[/" + rest[loc[2]:loc[3]] + "]"
		body := rest[loc[1]:]
		end := indexFoldASCII(body, closing)
		if end < 0 {
			b.WriteString(rest[:loc[1]])
			rest = body
			continue
		}

		b.WriteString(rest[:loc[0]])
		b.WriteString(UnwrapBBCode(body[:end]))
		rest = body[end+len(closing):]
	}

	return b.String()
}

// Description reduces s to plain text for meta descriptions and summaries:
// script and style blocks, tags, placeholders and BBCode are removed, entity
// and whitespace noise is folded into single spaces, and the result is
// trimmed and cut to maxChars runes (0 means no limit).
func Description(s string, maxChars int) string {
	return Truncate(description(s), maxChars)
}

// Keywords strips tags and folds line breaks, whitespace, quotes and angle
// brackets into single spaces, then trims and cuts to maxChars runes.
func Keywords(s string, maxChars int) string {
	return Truncate(keywords(s), maxChars)
}

// Detail prepares rich editor content: <?...?> blocks are removed and every
// backslash becomes &#92;. Markup is kept and nothing is trimmed.
func Detail(s string) string {
	return strings.ReplaceAll(StripEmbeddedCode(s), `\`, "&#92;")
}

// SafeHTML cleans user generated HTML with a bluemonday UGC policy: safe
// formatting elements and links stay, scripts, event handlers and unsafe
// URLs go.
func SafeHTML(s string) string {
	return ugcPolicy.Sanitize(s)
}

// indexFoldASCII returns the byte index of the first ASCII case-insensitive
// occurrence of sub in s, or -1.
func indexFoldASCII(s, sub string) int {
	n := len(sub)
	for i := 0; i+n <= len(s); i++ {
		if equalFoldASCII(s[i:i+n], sub) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
