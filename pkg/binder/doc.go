// Package binder fills request structs from query strings, form bodies, JSON
// bodies and route parameters, running every string through an input rule on
// the way in.
//
// Each binder has the signature func(r *http.Request, v any) error and can be
// chained. Parameter names come from the `query`, `form` and `path` struct
// tags, defaulting to the lowercase field name; a tag value of "-" skips the
// field. The `sanitize` tag selects the rule using the "name[,limit]" syntax
// understood by input.ParseRule:
//
//	type CreatePost struct {
//		ID          uuid.UUID   `path:"id"`
//		Title       string      `form:"title" sanitize:"topic"`
//		Summary     string      `form:"summary" sanitize:"description,160"`
//		Tags        []string    `form:"tags" sanitize:"keywords"`
//		PublishAt   *string     `form:"publish_at" sanitize:"date_strict"`
//		Page        int         `query:"page"`
//		Referrer    input.Value `query:"ref"`
//	}
//
//	r := chi.NewRouter()
//	r.Post("/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
//		var req CreatePost
//		for _, bind := range []func(*http.Request, any) error{
//			binder.Path(chi.URLParam),
//			binder.Query(),
//			binder.Form(binder.WithMaxMemory(4 << 20)),
//		} {
//			if err := bind(r, &req); err != nil {
//				http.Error(w, err.Error(), http.StatusBadRequest)
//				return
//			}
//		}
//	})
//
// String fields without a sanitize tag use the default rule (text). Numeric,
// bool and uuid.UUID fields are parsed strictly and ignore the rule. input.Value
// fields receive the raw value tagged with its source, so handlers can choose
// the conversion themselves.
//
// When a rule turns a present value into a null result (for example an
// unparseable date under date_strict), pointer fields stay nil, plain string
// fields stay empty and a debug record is written to the configured logger.
package binder
