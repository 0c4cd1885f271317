package input

import (
	"fmt"
	"strings"
)

// Source tells which request channel produced a Value.
type Source uint8

const (
	// SourceNone marks a value that was not read from any request channel.
	SourceNone Source = iota
	SourceGet
	SourcePost
	SourceSession
	SourceCookie
	// SourceOther covers channels without a dedicated kind, such as route
	// parameters.
	SourceOther
)

var sourceNames = [...]string{
	SourceNone:    "NONE",
	SourceGet:     "GET",
	SourcePost:    "POST",
	SourceSession: "SESSION",
	SourceCookie:  "COOKIE",
	SourceOther:   "OTHER",
}

func (s Source) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return fmt.Sprintf("Source(%d)", uint8(s))
}

// Valid reports whether s is one of the declared sources.
func (s Source) Valid() bool {
	return int(s) < len(sourceNames)
}

// ParseSource maps a case-insensitive name such as "get" or "COOKIE" to its
// Source. An empty name is SourceNone.
func ParseSource(name string) (Source, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return SourceNone, nil
	}
	for i, n := range sourceNames {
		if n == name {
			return Source(i), nil
		}
	}
	return SourceNone, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}
