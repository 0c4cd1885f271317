package sanitizer

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/inputkit/pkg/cache"
)

// filterPatternCapacity bounds the number of distinct class bodies kept
// compiled at once.
const filterPatternCapacity = 256

// filterPatterns caches compiled negated character classes keyed by the
// class body. A nil entry marks a body that failed to compile.
var filterPatterns = cache.NewLRU[string, *regexp.Regexp](filterPatternCapacity)

// Filter replaces every character that is not matched by the character class
// body allowed (for example `\d\s\-:` or `0-9a-zA-Z,`) with replacement and
// trims the result. An allowed body that does not compile yields "".
//
// With an empty replacement Filter is idempotent.
func Filter(s, allowed, replacement string) string {
	re := filterPattern(allowed)
	if re == nil {
		return ""
	}
	return strings.TrimSpace(re.ReplaceAllLiteralString(s, replacement))
}

// Digits keeps only the decimal digits of s.
func Digits(s string) string {
	return Filter(s, `\d`, "")
}

func filterPattern(allowed string) *regexp.Regexp {
	return filterPatterns.GetOrAdd(allowed, func() *regexp.Regexp {
		re, err := regexp.Compile(`[^` + allowed + `]`)
		if err != nil {
			return nil
		}
		return re
	})
}
