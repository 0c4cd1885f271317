package binder

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/inputkit/pkg/input"
	"github.com/dmitrymomot/inputkit/pkg/logger"
)

const sanitizeTag = "sanitize"

var (
	valueType = reflect.TypeOf(input.Value{})
	uuidType  = reflect.TypeOf(uuid.UUID{})
)

// lookupFunc returns the raw values of a request parameter.
type lookupFunc func(name string) ([]string, bool)

func valuesLookup(values map[string][]string) lookupFunc {
	return func(name string) ([]string, bool) {
		vals, ok := values[name]
		return vals, ok
	}
}

// binding binds one parameter channel (query, form, path) into a struct.
type binding struct {
	tagName string
	source  input.Source
	lookup  lookupFunc
	opts    options
	bindErr error
}

func (b binding) bind(r *http.Request, v any) error {
	rv, err := structTarget(v)
	if err != nil {
		return fmt.Errorf("%w: %w", b.bindErr, err)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		name, skip := parseFieldTag(sf, b.tagName)
		if skip {
			continue
		}

		raw, exists := b.lookup(name)
		if !exists || len(raw) == 0 {
			// No value provided, leave as zero value
			continue
		}

		rule, limit, err := b.opts.fieldRule(sf)
		if err != nil {
			return fmt.Errorf("%w: field %s: %v", b.bindErr, sf.Name, err)
		}

		fb := fieldBinding{
			ctx:    r.Context(),
			name:   name,
			rule:   rule,
			limit:  limit,
			source: b.source,
			log:    b.opts.logger,
		}
		if err := fb.set(field, sf.Type, raw); err != nil {
			return fmt.Errorf("%w: field %s: %v", b.bindErr, sf.Name, err)
		}
	}

	return nil
}

func structTarget(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, ErrInvalidTarget
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, ErrInvalidTarget
	}
	return rv, nil
}

// parseFieldTag returns the parameter name for a field and whether to skip it.
func parseFieldTag(field reflect.StructField, tagName string) (paramName string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

// fieldRule resolves the sanitize tag of a field, falling back to the
// configured default rule.
func (o options) fieldRule(sf reflect.StructField) (input.Rule, int, error) {
	tag, ok := sf.Tag.Lookup(sanitizeTag)
	if !ok || strings.TrimSpace(tag) == "" {
		return o.defaultRule, 0, nil
	}
	return input.ParseRule(tag)
}

// fieldBinding carries everything needed to convert the values of one field.
type fieldBinding struct {
	ctx    context.Context
	name   string
	rule   input.Rule
	limit  int
	source input.Source
	log    *slog.Logger
}

func (f fieldBinding) set(field reflect.Value, typ reflect.Type, raw []string) error {
	switch {
	case typ == valueType:
		_, err := f.setOne(field, typ, raw[0])
		return err

	case typ.Kind() == reflect.Pointer:
		elem := reflect.New(typ.Elem())
		set, err := f.setOne(elem.Elem(), typ.Elem(), raw[0])
		if err != nil {
			return err
		}
		if set {
			field.Set(elem)
		}
		return nil

	case typ.Kind() == reflect.Slice:
		return f.setSlice(field, typ, raw)
	}

	_, err := f.setOne(field, typ, raw[0])
	return err
}

// setSlice fills a slice field. Numeric and bool elements also accept comma
// separated lists; strings are kept whole because text may contain commas.
func (f fieldBinding) setSlice(field reflect.Value, typ reflect.Type, raw []string) error {
	elemType := typ.Elem()

	values := raw
	if splitsOnComma(elemType) {
		values = make([]string, 0, len(raw))
		for _, v := range raw {
			for part := range strings.SplitSeq(v, ",") {
				values = append(values, strings.TrimSpace(part))
			}
		}
	}

	slice := reflect.MakeSlice(typ, 0, len(values))
	for _, v := range values {
		elem, set, err := f.newElem(elemType, v)
		if err != nil {
			return err
		}
		if set {
			slice = reflect.Append(slice, elem)
		}
	}

	field.Set(slice)
	return nil
}

// newElem builds one slice element. Pointer elements such as *string or *int
// are allocated and filled through their target type.
func (f fieldBinding) newElem(typ reflect.Type, raw string) (reflect.Value, bool, error) {
	if typ.Kind() == reflect.Pointer {
		ptr := reflect.New(typ.Elem())
		set, err := f.setOne(ptr.Elem(), typ.Elem(), raw)
		return ptr, set, err
	}

	elem := reflect.New(typ).Elem()
	set, err := f.setOne(elem, typ, raw)
	return elem, set, err
}

func splitsOnComma(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == valueType || t == uuidType {
		return false
	}
	switch t.Kind() {
	case reflect.String, reflect.Struct, reflect.Pointer:
		return false
	}
	return true
}

// setOne converts a single raw value into field. It reports whether the field
// was assigned.
func (f fieldBinding) setOne(field reflect.Value, typ reflect.Type, raw string) (bool, error) {
	switch typ {
	case valueType:
		field.Set(reflect.ValueOf(input.New(raw, f.source)))
		return true, nil

	case uuidType:
		s := strings.TrimSpace(raw)
		if s == "" {
			return false, nil
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return false, fmt.Errorf("invalid uuid value %q", s)
		}
		field.Set(reflect.ValueOf(id))
		return true, nil
	}

	switch typ.Kind() {
	case reflect.String:
		return f.setString(field, raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s := strings.TrimSpace(raw)
		if s == "" {
			return false, nil
		}
		n, err := strconv.ParseInt(s, 10, typ.Bits())
		if err != nil {
			return false, fmt.Errorf("invalid int value %q", s)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		s := strings.TrimSpace(raw)
		if s == "" {
			return false, nil
		}
		n, err := strconv.ParseUint(s, 10, typ.Bits())
		if err != nil {
			return false, fmt.Errorf("invalid uint value %q", s)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		s := strings.TrimSpace(raw)
		if s == "" {
			return false, nil
		}
		n, err := strconv.ParseFloat(s, typ.Bits())
		if err != nil {
			return false, fmt.Errorf("invalid float value %q", s)
		}
		field.SetFloat(n)

	case reflect.Bool:
		s := strings.TrimSpace(raw)
		b, err := strconv.ParseBool(s)
		if err != nil {
			switch strings.ToLower(s) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return false, fmt.Errorf("invalid bool value %q", s)
			}
		}
		field.SetBool(b)

	default:
		return false, fmt.Errorf("unsupported type %s", typ)
	}

	return true, nil
}

// setString runs raw through the field rule. A null result leaves field
// untouched and reports false.
func (f fieldBinding) setString(field reflect.Value, raw string) (bool, error) {
	s, ok, err := input.New(raw, f.source).Convert(f.rule, f.limit)
	if err != nil {
		return false, err
	}

	if raw != "" && (!ok || s == "") {
		f.log.DebugContext(f.ctx, "input dropped by sanitize rule",
			logger.Field(f.name),
			logger.Rule(string(f.rule)),
			logger.Source(f.source),
		)
	}
	if !ok {
		return false, nil
	}

	field.SetString(s)
	return true, nil
}
