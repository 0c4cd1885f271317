package binder

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

// Query creates a binder for URL query parameters. Values are tagged as
// input.SourceGet.
//
// Supported struct tags:
//   - `query:"name"`        binds to query parameter "name"
//   - `query:"-"`           skips the field
//   - `sanitize:"rule"`     string conversion, see input.ParseRule
//
// Example:
//
//	type SearchRequest struct {
//		Query string   `query:"q" sanitize:"topic"`
//		Tags  []string `query:"tag" sanitize:"keywords,64"`
//		Page  int      `query:"page"`
//	}
//
//	var req SearchRequest
//	err := binder.Query()(r, &req)
func Query(opts ...Option) func(r *http.Request, v any) error {
	o := newOptions(opts)
	return func(r *http.Request, v any) error {
		if r.URL == nil {
			return fmt.Errorf("%w: request has no URL", ErrInvalidQuery)
		}
		return binding{
			tagName: "query",
			source:  input.SourceGet,
			lookup:  valuesLookup(r.URL.Query()),
			opts:    o,
			bindErr: ErrInvalidQuery,
		}.bind(r, v)
	}
}
