package binder

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

// Path creates a route parameter binder using the provided extractor, which
// keeps the binder independent of the router. Values are tagged as
// input.SourceOther; an empty parameter counts as missing.
//
// Supported struct tags:
//   - `path:"name"`     binds to route parameter "name"
//   - `path:"-"`        skips the field
//   - `sanitize:"rule"` string conversion, see input.ParseRule
//
// Example with chi router:
//
//	type ArticleRequest struct {
//		ID   uuid.UUID `path:"id"`
//		Slug string    `path:"slug" sanitize:"username"`
//	}
//
//	r := chi.NewRouter()
//	r.Get("/articles/{id}/{slug}", func(w http.ResponseWriter, r *http.Request) {
//		var req ArticleRequest
//		if err := binder.Path(chi.URLParam)(r, &req); err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//	})
func Path(extractor func(r *http.Request, fieldName string) string, opts ...Option) func(r *http.Request, v any) error {
	o := newOptions(opts)
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: nil path extractor", ErrInvalidPath)
		}
		return binding{
			tagName: "path",
			source:  input.SourceOther,
			lookup: func(name string) ([]string, bool) {
				s := extractor(r, name)
				if s == "" {
					return nil, false
				}
				return []string{s}, true
			},
			opts:    o,
			bindErr: ErrInvalidPath,
		}.bind(r, v)
	}
}
