package input

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

// Character classes used by the filtering conversions.
const (
	colorClass  = `\#a-zA-Z0-9`
	numberClass = `\d`
	dateClass   = `\d\s\-:`
)

// dateTimeRegex matches an optional Y-M-D date, optional H:M time and
// optional :S seconds.
var dateTimeRegex = regexp.MustCompile(`^([0-9]{4}-[0-9]{1,2}-[0-9]{1,2})?\s*([0-9]{1,2}:[0-9]{1,2})?(:[0-9]{1,2})?$`)

// Filter keeps only the characters of the character class body allowed,
// for example `0-9a-zA-Z,`, and trims the result.
func (v Value) Filter(allowed string) string {
	return sanitizer.Filter(v.String(), allowed, "")
}

// FilterWith works like Filter but substitutes replacement for every
// character outside the class.
func (v Value) FilterWith(allowed, replacement string) string {
	return sanitizer.Filter(v.String(), allowed, replacement)
}

// Color keeps #, ASCII letters and digits: "#00ff00", "red".
func (v Value) Color() string {
	return v.Filter(colorClass)
}

// Number keeps digits only. A decimal point is dropped too, so 0.12345
// becomes "012345".
func (v Value) Number() string {
	return v.Filter(numberClass)
}

// Date keeps digits, whitespace, dashes and colons, then normalizes a
// "Y-M-D H:M[:S]" shaped result to single-spaced form with seconds
// defaulting to ":00". In strict mode a result of any other shape is
// rejected; otherwise it is returned as filtered. ok is false for empty
// results.
func (v Value) Date(strict bool) (date string, ok bool) {
	ret := v.Filter(dateClass)

	if m := dateTimeRegex.FindStringSubmatch(ret); m != nil {
		ret = m[1]
		if m[2] != "" {
			seconds := m[3]
			if seconds == "" {
				seconds = ":00"
			}
			ret = strings.TrimSpace(ret + " " + m[2] + seconds)
		}
	} else if strict {
		return "", false
	}

	if ret == "" || ret == "0" {
		return "", false
	}
	return ret, true
}

// Description flattens the value into plain single-line text. See
// sanitizer.Description; maxChars of 0 means no limit.
func (v Value) Description(maxChars int) string {
	return sanitizer.Description(v.String(), maxChars)
}

// Detail removes <?...?> blocks and escapes backslashes, keeping markup.
// Intended for rich editor content.
func (v Value) Detail() string {
	return sanitizer.Detail(v.String())
}

// HTML cleans rich editor content with a user generated content policy.
func (v Value) HTML() string {
	return sanitizer.SafeHTML(v.String())
}

// Keywords strips tags and folds whitespace, quotes and angle brackets into
// single spaces; maxChars of 0 means no limit.
func (v Value) Keywords(maxChars int) string {
	return sanitizer.Keywords(v.String(), maxChars)
}

// Password removes whitespace and keeps every other character.
func (v Value) Password() string {
	return sanitizer.Password(v.String())
}

// Quote trims and escapes apostrophes as &#39;.
func (v Value) Quote() string {
	return sanitizer.Quote(v.String())
}

// Text escapes & " ' < > \ as HTML entities and trims.
func (v Value) Text() string {
	return sanitizer.Text(v.String())
}

// Textarea escapes < > \ { } and trims. Newlines are kept.
func (v Value) Textarea() string {
	return sanitizer.Textarea(v.String())
}

// Topic escapes like Text and folds all whitespace runs into one space.
func (v Value) Topic() string {
	return sanitizer.Topic(v.String())
}

// URL returns a value safe for an href attribute.
func (v Value) URL() string {
	return sanitizer.URL(v.String())
}

// Username keeps only characters valid in an e-mail address or phone number.
func (v Value) Username() string {
	return sanitizer.Username(v.String())
}
