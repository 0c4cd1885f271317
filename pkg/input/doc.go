// Package input wraps a single raw request value together with the channel
// it came from and exposes named, side-effect free conversions of it.
//
// A Value is created once and never changes. Every conversion reads the raw
// value, applies one fixed sanitization rule and returns a new scalar:
//
//	title := input.Query(r, "title").Topic()        // escaped, single line
//	body := input.Form(r, "body").Detail()          // editor content
//	page := input.Query(r, "page").Or(1).ToInt()    // numeric with default
//	when, ok := input.Form(r, "published").Date(true)
//
// # Sources
//
// The Source of a Value records where it was read from (GET, POST, SESSION,
// COOKIE, OTHER). Exists reports whether a source was recorded at all, which
// is how callers tell a missing parameter from an empty one. Values built with
// Of have SourceNone.
//
// # Conversions
//
// Conversions first turn the raw value into its string form: nil becomes "",
// true becomes "1", false becomes "", numbers use their decimal form. The
// shared escaping routines live in the sanitizer package.
//
// None of the conversions returns an error or panics. Malformed or missing
// input degrades to "", 0 or a false ok flag.
//
// # Rules
//
// Conversions are also addressable by name through Rule, which is what the
// binder package uses for `sanitize:"topic"` struct tags:
//
//	s, ok, err := v.Convert(input.RuleDescription, 160)
package input
