package input_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

func TestValue_ToBoolean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  any
		want int
	}{
		{name: "true", raw: true, want: 1},
		{name: "false", raw: false, want: 0},
		{name: "one", raw: 1, want: 1},
		{name: "zero", raw: 0, want: 0},
		{name: "zero float", raw: 0.0, want: 0},
		{name: "nil", raw: nil, want: 0},
		{name: "empty string", raw: "", want: 0},
		{name: "zero string", raw: "0", want: 0},
		{name: "text", raw: "no", want: 1},
		{name: "space", raw: " ", want: 1},
		{name: "empty slice", raw: []string{}, want: 0},
		{name: "slice", raw: []string{"a"}, want: 1},
		{name: "empty map", raw: map[string]any{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := input.Of(tt.raw)
			assert.Equal(t, tt.want, v.ToBoolean())
			assert.Equal(t, tt.want == 1, v.Bool())
		})
	}
}

func TestValue_ToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  any
		want float64
	}{
		{name: "float", raw: 0.454, want: 0.454},
		{name: "another float", raw: 0.545, want: 0.545},
		{name: "int", raw: 3, want: 3},
		{name: "numeric string", raw: "12.5", want: 12.5},
		{name: "leading number", raw: " 12.5kg", want: 12.5},
		{name: "exponent", raw: "1e3", want: 1000},
		{name: "signed", raw: "-0.25", want: -0.25},
		{name: "leading dot", raw: ".5", want: 0.5},
		{name: "not numeric", raw: "abc", want: 0},
		{name: "nil", raw: nil, want: 0},
		{name: "true", raw: true, want: 1},
		{name: "bytes", raw: []byte("7"), want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := input.Of(tt.raw)
			assert.InDelta(t, tt.want, v.ToFloat(), 1e-12)
			assert.InDelta(t, tt.want, v.ToDouble(), 1e-12)
		})
	}
}

func TestValue_ToInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  any
		want int
	}{
		{name: "small float", raw: 0.454, want: 0},
		{name: "float truncates", raw: 2.945, want: 2},
		{name: "negative float truncates toward zero", raw: -2.945, want: -2},
		{name: "numeric string", raw: "42", want: 42},
		{name: "decimal string", raw: "42.9", want: 42},
		{name: "leading number", raw: "12abc", want: 12},
		{name: "not numeric", raw: "abc", want: 0},
		{name: "nil", raw: nil, want: 0},
		{name: "bool", raw: true, want: 1},
		{name: "int64", raw: int64(-7), want: -7},
		{name: "uint64 overflow clamps", raw: uint64(math.MaxUint64), want: math.MaxInt},
		{name: "huge float clamps", raw: 1e300, want: math.MaxInt},
		{name: "huge negative clamps", raw: "-1e300", want: math.MinInt},
		{name: "nan", raw: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, input.Of(tt.raw).ToInt())
		})
	}
}

func TestValue_ToObject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[string]any{"scalar": "test"}, input.Of("test").ToObject())
	assert.Equal(t, map[string]any{"scalar": 5}, input.Of(5).ToObject())
	assert.Equal(t, map[string]any{}, input.Of(nil).ToObject())
	assert.Equal(t, map[string]any{"0": "a", "1": "b"}, input.Of([]string{"a", "b"}).ToObject())
	assert.Equal(t, map[string]any{"1": true}, input.Of(map[int]bool{1: true}).ToObject())

	src := map[string]any{"k": "v"}
	obj := input.Of(src).ToObject()
	obj["k"] = "changed"
	assert.Equal(t, "v", src["k"], "ToObject must not alias the raw map")
}

func TestValue_UUID(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	got, ok := input.Of(" " + id.String() + " ").UUID()
	assert.True(t, ok)
	assert.Equal(t, id, got)

	got, ok = input.Of(id).UUID()
	assert.True(t, ok)
	assert.Equal(t, id, got)

	got, ok = input.Of("not-a-uuid").UUID()
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, got)

	_, ok = input.Of(nil).UUID()
	assert.False(t, ok)
}
