package input

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// numericPrefixRegex matches the leading decimal number of a string, the
// part a numeric cast reads before giving up.
var numericPrefixRegex = regexp.MustCompile(`^[ \t\n\r\v\f]*([+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

// ToBoolean returns 0 when the raw value is empty (nil, false, 0, 0.0, "",
// "0" or an empty slice or map) and 1 otherwise.
func (v Value) ToBoolean() int {
	if isEmpty(v.raw) {
		return 0
	}
	return 1
}

// Bool is ToBoolean as a bool.
func (v Value) Bool() bool {
	return !isEmpty(v.raw)
}

// ToFloat converts the raw value to float64. Strings contribute their
// leading number ("12.5kg" is 12.5); anything non-numeric is 0.
func (v Value) ToFloat() float64 {
	return floatOf(v.raw)
}

// ToDouble is an alias of ToFloat.
func (v Value) ToDouble() float64 {
	return floatOf(v.raw)
}

// ToInt converts the raw value to int, truncating toward zero and clamping
// to the int range.
func (v Value) ToInt() int {
	return intOf(v.raw)
}

// ToObject returns the raw value as a generic record. Maps are copied with
// their keys in string form, slices and arrays are keyed by index, nil is an
// empty record and any other value is stored under "scalar".
func (v Value) ToObject() map[string]any {
	switch raw := v.raw.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		return maps.Clone(raw)
	case string, []byte:
		return map[string]any{"scalar": raw}
	}

	rv := reflect.ValueOf(v.raw)
	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[stringOf(iter.Key().Interface())] = iter.Value().Interface()
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make(map[string]any, rv.Len())
		for i := range rv.Len() {
			out[strconv.Itoa(i)] = rv.Index(i).Interface()
		}
		return out
	}

	return map[string]any{"scalar": v.raw}
}

// UUID parses the trimmed string form of the value as a UUID.
func (v Value) UUID() (uuid.UUID, bool) {
	if id, ok := v.raw.(uuid.UUID); ok {
		return id, true
	}
	id, err := uuid.Parse(strings.TrimSpace(v.String()))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// stringOf renders raw the way a scalar-to-string cast does.
func stringOf(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprint(v)
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

func isEmpty(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == "" || v == "0"
	case []byte:
		return len(v) == 0
	case bool:
		return !v
	case int:
		return v == 0
	case int8:
		return v == 0
	case int16:
		return v == 0
	case int32:
		return v == 0
	case int64:
		return v == 0
	case uint:
		return v == 0
	case uint8:
		return v == 0
	case uint16:
		return v == 0
	case uint32:
		return v == 0
	case uint64:
		return v == 0
	case float32:
		return v == 0
	case float64:
		return v == 0
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func floatOf(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		return parseNumericPrefix(stringOf(raw))
	}
}

func parseNumericPrefix(s string) float64 {
	m := numericPrefixRegex.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	// A range error still carries ±Inf or 0, which is the wanted result.
	f, _ := strconv.ParseFloat(m[1], 64)
	return f
}

func intOf(raw any) int {
	switch v := raw.(type) {
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return clampInt64(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return clampUint64(uint64(v))
	case uint:
		return clampUint64(uint64(v))
	case uint64:
		return clampUint64(v)
	}

	f := floatOf(raw)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

func clampInt64(v int64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	if v < math.MinInt {
		return math.MinInt
	}
	return int(v)
}

func clampUint64(v uint64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}
