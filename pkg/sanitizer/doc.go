// Package sanitizer provides the stateless text routines behind the input
// package conversions: HTML escaping, tag and BBCode stripping, character
// class filtering and length limiting of user supplied text.
//
// The functions are grouped conceptually into several areas:
//
//   - Strings – trimming, whitespace collapsing and rune-aware truncation.
//
//   - Filter – keeping only the characters of a caller supplied regular
//     expression character class (digits, colour codes, date parts, …).
//
//   - Escape – HTML entity escaping for plain text, topics, quotes, textarea
//     content and URLs that are placed into attributes.
//
//   - Markup – removal of <script>/<style> blocks, HTML tags, template
//     placeholders, BBCode and embedded <?...?> code, plus policy based HTML
//     cleaning for rich editor content.
//
// All helpers are pure functions. The higher-order Apply and Compose helpers
// assemble pipelines from them:
//
//	clean := sanitizer.Compose(
//	    sanitizer.StripMarkupTags,
//	    sanitizer.CollapseWhitespace,
//	)
//
//	safe := clean("<b>Hello</b>\n  world") // "Hello world"
//
// # Usage
//
//	import "github.com/dmitrymomot/inputkit/pkg/sanitizer"
//
//	title := sanitizer.Topic(" Hello\r\n<World> ")
//	// title == "Hello &lt;World&gt;"
//
//	digits := sanitizer.Filter("ab-12 3", `\d`, "")
//	// digits == "123"
//
// # Error handling
//
// None of the helpers returns an error. Invalid input degrades to a safe
// result, usually an empty string.
//
// # Concurrency
//
// Filter keeps a bounded LRU cache (pkg/cache) of compiled character class patterns.
// Everything else is free of shared state, so all helpers are safe for use
// from multiple goroutines.
package sanitizer
