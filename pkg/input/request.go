package input

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Getter is implemented by session-like stores. The session type of most
// session managers satisfies it directly.
type Getter interface {
	Get(key string) (any, bool)
}

// Map is a Getter over a plain map, handy for sessions that are decoded into
// map[string]any.
type Map map[string]any

func (m Map) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Query reads the first query string value for key. A missing key yields a
// Value that does not exist.
func Query(r *http.Request, key string) Value {
	if r == nil || r.URL == nil {
		return Value{}
	}
	if vals, ok := r.URL.Query()[key]; ok && len(vals) > 0 {
		return New(vals[0], SourceGet)
	}
	return Value{}
}

// QueryAll reads every query string value for key.
func QueryAll(r *http.Request, key string) []Value {
	if r == nil || r.URL == nil {
		return nil
	}
	return wrapAll(r.URL.Query()[key], SourceGet)
}

// Form reads the first POST, PUT or PATCH body value for key. The body is
// parsed on first use the same way http.Request.PostFormValue does it.
func Form(r *http.Request, key string) Value {
	if vals := postForm(r)[key]; len(vals) > 0 {
		return New(vals[0], SourcePost)
	}
	return Value{}
}

// FormAll reads every body value for key, such as checkbox groups.
func FormAll(r *http.Request, key string) []Value {
	return wrapAll(postForm(r)[key], SourcePost)
}

// Cookie reads the value of the named cookie.
func Cookie(r *http.Request, name string) Value {
	if r == nil {
		return Value{}
	}
	c, err := r.Cookie(name)
	if err != nil {
		return Value{}
	}
	return New(c.Value, SourceCookie)
}

// Session reads key from a session-like store.
func Session(store Getter, key string) Value {
	if store == nil {
		return Value{}
	}
	if raw, ok := store.Get(key); ok {
		return New(raw, SourceSession)
	}
	return Value{}
}

// Path reads a chi route parameter. chi reports unknown parameters as "",
// so an empty segment is treated as missing.
func Path(r *http.Request, key string) Value {
	if r == nil {
		return Value{}
	}
	if s := chi.URLParam(r, key); s != "" {
		return New(s, SourceOther)
	}
	return Value{}
}

// Request looks key up in the body first and falls back to the query string.
func Request(r *http.Request, key string) Value {
	if v := Form(r, key); v.Exists() {
		return v
	}
	return Query(r, key)
}

func postForm(r *http.Request) map[string][]string {
	if r == nil {
		return nil
	}
	if r.PostForm == nil {
		// Errors leave PostForm empty, which reads as missing.
		_ = r.ParseMultipartForm(32 << 20)
	}
	return r.PostForm
}

func wrapAll(vals []string, source Source) []Value {
	if len(vals) == 0 {
		return nil
	}
	out := make([]Value, len(vals))
	for i, s := range vals {
		out[i] = New(s, source)
	}
	return out
}
