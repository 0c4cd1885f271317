package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies. Only body values are bound, query parameters
// are left to Query. Values are tagged as input.SourcePost.
//
// Supported struct tags:
//   - `form:"name"`     binds to form field "name"
//   - `form:"-"`        skips the field
//   - `sanitize:"rule"` string conversion, see input.ParseRule
//
// Example:
//
//	type CommentRequest struct {
//		Author  string  `form:"author" sanitize:"text"`
//		Email   string  `form:"email" sanitize:"username"`
//		Body    string  `form:"body" sanitize:"textarea"`
//		Website *string `form:"website" sanitize:"url"`
//	}
//
//	var req CommentRequest
//	err := binder.Form(binder.WithMaxMemory(2 << 20))(r, &req)
func Form(opts ...Option) func(r *http.Request, v any) error {
	o := newOptions(opts)
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: missing content-type header, expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		var values map[string][]string

		switch mediaType := mediaTypeOf(contentType); {
		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case mediaType == "multipart/form-data":
			_, params, err := mime.ParseMediaType(contentType)
			if err != nil {
				return fmt.Errorf("%w: malformed content type with boundary", ErrInvalidForm)
			}
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
			}

			if err := r.ParseMultipartForm(o.maxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return binding{
			tagName: "form",
			source:  input.SourcePost,
			lookup:  valuesLookup(values),
			opts:    o,
			bindErr: ErrInvalidForm,
		}.bind(r, v)
	}
}

// mediaTypeOf strips parameters from a Content-Type header value.
func mediaTypeOf(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}
