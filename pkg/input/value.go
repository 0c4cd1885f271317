package input

import (
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// Value is an immutable raw input and the channel it was read from.
// The zero Value holds nil with SourceNone.
type Value struct {
	raw    any
	source Source
}

// New stores raw and source as they are. It never fails and never inspects raw.
func New(raw any, source Source) Value {
	return Value{raw: raw, source: source}
}

// Of wraps raw without a source, so Exists reports false.
func Of(raw any) Value {
	return Value{raw: raw}
}

// All returns the raw value unchanged.
func (v Value) All() any {
	return v.raw
}

// Source returns the channel the value was read from.
func (v Value) Source() Source {
	return v.source
}

// Exists reports whether the value was read from a request channel.
func (v Value) Exists() bool {
	return v.source != SourceNone
}

func (v Value) IsGet() bool     { return v.source == SourceGet }
func (v Value) IsPost() bool    { return v.source == SourcePost }
func (v Value) IsSession() bool { return v.source == SourceSession }
func (v Value) IsCookie() bool  { return v.source == SourceCookie }

// Or returns a sourceless Value holding def when v does not exist, and v
// itself otherwise.
func (v Value) Or(def any) Value {
	if v.Exists() {
		return v
	}
	return Of(def)
}

// IsNull reports whether the raw value is nil.
func (v Value) IsNull() bool {
	return v.raw == nil
}

// ToString returns the string form of the raw value. ok is false only when
// the raw value is nil.
func (v Value) ToString() (s string, ok bool) {
	if v.raw == nil {
		return "", false
	}
	return stringOf(v.raw), true
}

// String implements fmt.Stringer. A nil raw value prints as "".
func (v Value) String() string {
	return stringOf(v.raw)
}

// LogValue implements slog.LogValuer. The content itself is never logged,
// only its source, dynamic type and length in characters.
func (v Value) LogValue() slog.Value {
	if v.raw == nil {
		return slog.GroupValue(
			slog.String("source", v.source.String()),
			slog.Bool("null", true),
		)
	}
	return slog.GroupValue(
		slog.String("source", v.source.String()),
		slog.String("type", fmt.Sprintf("%T", v.raw)),
		slog.Int("length", utf8.RuneCountInString(stringOf(v.raw))),
	)
}
