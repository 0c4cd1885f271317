package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

// JSON creates a binder for application/json bodies. Decoding is strict
// (unknown fields are rejected) and the body size is capped by
// WithMaxJSONSize.
//
// After decoding, string fields carrying a `sanitize` tag are rewritten in
// place through their rule, recursing into nested structs. Untagged fields are
// left exactly as decoded.
//
// Example:
//
//	type ProfileUpdate struct {
//		DisplayName string   `json:"display_name" sanitize:"topic"`
//		Bio         string   `json:"bio" sanitize:"description,280"`
//		Links       []string `json:"links" sanitize:"url"`
//	}
func JSON(opts ...Option) func(r *http.Request, v any) error {
	o := newOptions(opts)
	return func(r *http.Request, v any) error {
		ctx := r.Context()
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrInvalidJSON, ctx.Err())
		default:
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: missing content-type header, expected application/json", ErrMissingContentType)
		}
		if mediaType := mediaTypeOf(contentType); mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
		}

		rv, err := structTarget(v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}

		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, o.maxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrInvalidJSON, err)
		}
		if int64(len(body)) > o.maxJSONSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrInvalidJSON, o.maxJSONSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		return o.sanitizeStruct(r, rv)
	}
}

func (o options) sanitizeStruct(r *http.Request, rv reflect.Value) error {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		tag, tagged := sf.Tag.Lookup(sanitizeTag)
		if !tagged {
			if err := o.sanitizeNested(r, field); err != nil {
				return err
			}
			continue
		}

		rule, limit, err := input.ParseRule(tag)
		if err != nil {
			return fmt.Errorf("%w: field %s: %v", ErrInvalidJSON, sf.Name, err)
		}

		fb := fieldBinding{
			ctx:    r.Context(),
			name:   jsonName(sf),
			rule:   rule,
			limit:  limit,
			source: input.SourcePost,
			log:    o.logger,
		}
		if err := fb.rewrite(field); err != nil {
			return fmt.Errorf("%w: field %s: %v", ErrInvalidJSON, sf.Name, err)
		}
	}
	return nil
}

// sanitizeNested walks untagged fields that may hold structs: structs,
// pointers, and slices, arrays or maps of them.
func (o options) sanitizeNested(r *http.Request, field reflect.Value) error {
	switch field.Kind() {
	case reflect.Struct:
		if field.Type() == valueType {
			return nil
		}
		return o.sanitizeStruct(r, field)

	case reflect.Pointer:
		if field.IsNil() {
			return nil
		}
		return o.sanitizeNested(r, field.Elem())

	case reflect.Slice, reflect.Array:
		if !holdsStruct(field.Type().Elem()) {
			return nil
		}
		for i := range field.Len() {
			if err := o.sanitizeNested(r, field.Index(i)); err != nil {
				return err
			}
		}

	case reflect.Map:
		elemType := field.Type().Elem()
		if field.IsNil() || !holdsStruct(elemType) {
			return nil
		}
		for _, key := range field.MapKeys() {
			// Map values are not addressable, so work on a copy.
			elem := reflect.New(elemType).Elem()
			elem.Set(field.MapIndex(key))
			if err := o.sanitizeNested(r, elem); err != nil {
				return err
			}
			field.SetMapIndex(key, elem)
		}
	}
	return nil
}

// holdsStruct reports whether t is, or contains through pointers and
// collections, a struct that may carry sanitize tags.
func holdsStruct(t reflect.Type) bool {
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
			t = t.Elem()
		case reflect.Struct:
			return t != valueType
		default:
			return false
		}
	}
}

// rewrite replaces a decoded string, *string or []string value with its
// converted form. A null conversion empties the string or nils the pointer.
func (f fieldBinding) rewrite(field reflect.Value) error {
	typ := field.Type()
	switch {
	case typ.Kind() == reflect.String:
		raw := field.String()
		field.SetString("")
		_, err := f.setString(field, raw)
		return err

	case typ.Kind() == reflect.Pointer && typ.Elem().Kind() == reflect.String:
		if field.IsNil() {
			return nil
		}
		elem := reflect.New(typ.Elem())
		set, err := f.setString(elem.Elem(), field.Elem().String())
		if err != nil {
			return err
		}
		if set {
			field.Set(elem)
		} else {
			field.Set(reflect.Zero(typ))
		}
		return nil

	case typ.Kind() == reflect.Slice && typ.Elem().Kind() == reflect.String:
		if field.IsNil() {
			return nil
		}
		out := reflect.MakeSlice(typ, 0, field.Len())
		for i := range field.Len() {
			elem := reflect.New(typ.Elem()).Elem()
			set, err := f.setString(elem, field.Index(i).String())
			if err != nil {
				return err
			}
			if set {
				out = reflect.Append(out, elem)
			}
		}
		field.Set(out)
		return nil
	}

	return fmt.Errorf("sanitize tag on unsupported type %s", typ)
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return sf.Name
	}
	return name
}
