package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a struct field or request parameter name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a sanitize rule name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Source records the request channel of a value under the key "source".
func Source(source fmt.Stringer) slog.Attr {
	if source == nil {
		return slog.Attr{}
	}
	return slog.String("source", source.String())
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
