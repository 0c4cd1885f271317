package binder

import (
	"log/slog"

	"github.com/dmitrymomot/inputkit/pkg/input"
	"github.com/dmitrymomot/inputkit/pkg/logger"
)

const (
	// DefaultMaxMemory is the multipart memory budget (10MB).
	DefaultMaxMemory = 10 << 20
	// DefaultMaxJSONSize is the largest accepted JSON body (1MB).
	DefaultMaxJSONSize = 1 << 20
	// DefaultRule applies to string fields without a sanitize tag.
	DefaultRule = input.RuleText
)

// Option configures a binder.
type Option func(*options)

type options struct {
	maxMemory   int64
	maxJSONSize int64
	defaultRule input.Rule
	logger      *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		maxMemory:   DefaultMaxMemory,
		maxJSONSize: DefaultMaxJSONSize,
		defaultRule: DefaultRule,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxMemory sets the memory budget for multipart parsing.
// Non-positive values are ignored.
func WithMaxMemory(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMemory = n
		}
	}
}

// WithMaxJSONSize limits the JSON body size. Non-positive values are ignored.
func WithMaxJSONSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxJSONSize = n
		}
	}
}

// WithDefaultRule changes the rule used by untagged string fields.
// Unknown rules are ignored.
func WithDefaultRule(rule input.Rule) Option {
	return func(o *options) {
		if rule.Valid() {
			o.defaultRule = rule
		}
	}
}

// WithLogger sets the logger for per-field debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l.With(logger.Component("binder"))
		}
	}
}
