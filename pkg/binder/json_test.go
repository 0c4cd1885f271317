package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/binder"
)

type profileLink struct {
	Label string `json:"label" sanitize:"text"`
	URL   string `json:"url" sanitize:"url"`
}

type profileUpdate struct {
	DisplayName string        `json:"display_name" sanitize:"topic"`
	Bio         string        `json:"bio" sanitize:"description,12"`
	Tags        []string      `json:"tags" sanitize:"keywords"`
	Birthday    *string       `json:"birthday" sanitize:"date_strict"`
	Untouched   string        `json:"untouched"`
	Links       []profileLink `json:"links"`
	Primary     profileLink   `json:"primary"`
	Backup      *profileLink  `json:"backup"`
	Age         int           `json:"age"`
}

func newJSONRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")
	return r
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("sanitizes tagged strings", func(t *testing.T) {
		t.Parallel()

		r := newJSONRequest(`{
			"display_name": "  <i>Jane</i>   Doe ",
			"bio": "<p>Writes about Go and more</p>",
			"tags": ["<b>go</b>", "rust\n"],
			"birthday": "1990-01-02",
			"untouched": "<keep>",
			"primary": {"label": "Home & away", "url": "javascript:alert(1)"},
			"backup": {"label": "<x>", "url": "https://example.com/?a=1&amp;b=2"},
			"age": 33
		}`)

		var req profileUpdate
		require.NoError(t, binder.JSON()(r, &req))

		assert.Equal(t, "&lt;i&gt;Jane&lt;/i&gt; Doe", req.DisplayName)
		assert.Equal(t, "Writes about", req.Bio)
		assert.Equal(t, []string{"go", "rust"}, req.Tags)
		require.NotNil(t, req.Birthday)
		assert.Equal(t, "1990-01-02", *req.Birthday)
		assert.Equal(t, "<keep>", req.Untouched)
		assert.Equal(t, "Home &amp; away", req.Primary.Label)
		assert.Equal(t, "alert1", req.Primary.URL)
		require.NotNil(t, req.Backup)
		assert.Equal(t, "&lt;x&gt;", req.Backup.Label)
		assert.Equal(t, "https://example.com/?a=1&amp;b=2", req.Backup.URL)
		assert.Equal(t, 33, req.Age)
	})

	t.Run("null conversion clears pointer", func(t *testing.T) {
		t.Parallel()

		var req profileUpdate
		require.NoError(t, binder.JSON()(newJSONRequest(`{"birthday": "soon"}`), &req))
		assert.Nil(t, req.Birthday)
	})
}

func TestJSONErrors(t *testing.T) {
	t.Parallel()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		request func() *http.Request
		bind    func(r *http.Request, v any) error
		wantErr error
	}{
		{
			name: "missing content type",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
			},
			wantErr: binder.ErrMissingContentType,
		},
		{
			name: "wrong content type",
			request: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
				r.Header.Set("Content-Type", "text/plain")
				return r
			},
			wantErr: binder.ErrUnsupportedMediaType,
		},
		{
			name:    "empty body",
			request: func() *http.Request { return newJSONRequest("") },
			wantErr: binder.ErrInvalidJSON,
		},
		{
			name:    "malformed body",
			request: func() *http.Request { return newJSONRequest(`{"bio":`) },
			wantErr: binder.ErrInvalidJSON,
		},
		{
			name:    "unknown field",
			request: func() *http.Request { return newJSONRequest(`{"nickname":"x"}`) },
			wantErr: binder.ErrInvalidJSON,
		},
		{
			name:    "body too large",
			request: func() *http.Request { return newJSONRequest(`{"bio":"` + strings.Repeat("a", 64) + `"}`) },
			bind:    binder.JSON(binder.WithMaxJSONSize(32)),
			wantErr: binder.ErrInvalidJSON,
		},
		{
			name: "canceled context",
			request: func() *http.Request {
				return newJSONRequest("{}").WithContext(canceled)
			},
			wantErr: binder.ErrInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bind := tt.bind
			if bind == nil {
				bind = binder.JSON()
			}

			var req profileUpdate
			err := bind(tt.request(), &req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJSONInvalidSanitizeTag(t *testing.T) {
	t.Parallel()

	var req struct {
		Count int `json:"count" sanitize:"text"`
	}
	err := binder.JSON()(newJSONRequest(`{"count": 1}`), &req)
	require.Error(t, err)
	assert.ErrorIs(t, err, binder.ErrInvalidJSON)
}

func TestJSONSanitizesCollections(t *testing.T) {
	t.Parallel()

	type item struct {
		Name string `json:"name" sanitize:"text"`
	}
	type order struct {
		Items   []item           `json:"items"`
		Refs    []*item          `json:"refs"`
		Fixed   [1]item          `json:"fixed"`
		ByKey   map[string]item  `json:"by_key"`
		ByPtr   map[string]*item `json:"by_ptr"`
		Nested  [][]item         `json:"nested"`
		One     item             `json:"one"`
		Labels  []string         `json:"labels"`
		Counter map[string]int   `json:"counter"`
	}

	r := newJSONRequest(`{
		"items": [{"name": "<b>a</b>"}, {"name": "b&c"}],
		"refs": [{"name": "<i>r</i>"}, null],
		"fixed": [{"name": "<f>"}],
		"by_key": {"k": {"name": "<k>"}},
		"by_ptr": {"p": {"name": "<p>"}},
		"nested": [[{"name": "<n>"}]],
		"one": {"name": "<b>y</b>"},
		"labels": ["<raw>"],
		"counter": {"x": 1}
	}`)

	var req order
	require.NoError(t, binder.JSON()(r, &req))

	require.Len(t, req.Items, 2)
	assert.Equal(t, "&lt;b&gt;a&lt;/b&gt;", req.Items[0].Name)
	assert.Equal(t, "b&amp;c", req.Items[1].Name)
	require.Len(t, req.Refs, 2)
	assert.Equal(t, "&lt;i&gt;r&lt;/i&gt;", req.Refs[0].Name)
	assert.Nil(t, req.Refs[1])
	assert.Equal(t, "&lt;f&gt;", req.Fixed[0].Name)
	assert.Equal(t, "&lt;k&gt;", req.ByKey["k"].Name)
	require.NotNil(t, req.ByPtr["p"])
	assert.Equal(t, "&lt;p&gt;", req.ByPtr["p"].Name)
	assert.Equal(t, "&lt;n&gt;", req.Nested[0][0].Name)
	assert.Equal(t, "&lt;b&gt;y&lt;/b&gt;", req.One.Name)
	assert.Equal(t, []string{"<raw>"}, req.Labels)
	assert.Equal(t, map[string]int{"x": 1}, req.Counter)
}

func TestJSONCollectionElementErrors(t *testing.T) {
	t.Parallel()

	type item struct {
		Count int `json:"count" sanitize:"text"`
	}
	var req struct {
		Items []item `json:"items"`
	}

	err := binder.JSON()(newJSONRequest(`{"items": [{"count": 1}]}`), &req)
	require.Error(t, err)
	assert.ErrorIs(t, err, binder.ErrInvalidJSON)
}
