package mefrp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// rootField is the path prefix of every DecodeError: records always come from
// the envelope's data member.
const rootField = "data"

// Fields tagged `mefrp:"optional"` may be absent from the response and keep
// their zero value. All other fields with a JSON name are required.
const optionalTag = "optional"

type fieldSpec struct {
	name     string
	optional bool
	typ      reflect.Type
}

var (
	fieldCache    sync.Map // reflect.Type -> []fieldSpec
	unmarshalerTy = reflect.TypeFor[json.Unmarshaler]()
)

// DecodeRecord decodes one record from raw envelope data. Missing required
// fields and mismatched types are reported as *DecodeError naming the field.
func DecodeRecord[T any](raw json.RawMessage) (*T, error) {
	if isNull(raw) {
		return nil, &DecodeError{Field: rootField, Reason: "expected a record, got null"}
	}

	var out T
	if err := decodeInto(raw, &out, reflect.TypeFor[T]()); err != nil {
		return nil, err
	}
	return &out, nil
}

// DecodeRecordList decodes a list of records. A null list decodes to an empty
// slice.
func DecodeRecordList[T any](raw json.RawMessage) ([]T, error) {
	if isNull(raw) {
		return []T{}, nil
	}

	out := []T{}
	if err := decodeInto(raw, &out, reflect.TypeFor[[]T]()); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeInto(raw json.RawMessage, dst any, t reflect.Type) error {
	if err := checkRequired(raw, t, rootField); err != nil {
		return err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := rootField
			if typeErr.Field != "" {
				field += "." + typeErr.Field
			}
			return &DecodeError{
				Field:  field,
				Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
				Err:    err,
			}
		}
		return &DecodeError{Field: rootField, Reason: "malformed data", Err: err}
	}
	return nil
}

// checkRequired walks raw alongside t and reports the first required field
// that is absent. A value that is present but null counts as present.
func checkRequired(raw json.RawMessage, t reflect.Type, path string) error {
	if isNull(raw) {
		return nil
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if reflect.PointerTo(t).Implements(unmarshalerTy) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return &DecodeError{Field: path, Reason: "expected an object", Err: err}
		}
		for _, f := range fieldsOf(t) {
			child := path + "." + f.name
			v, ok := obj[f.name]
			if !ok {
				if f.optional {
					continue
				}
				return &DecodeError{Field: child, Reason: "missing required field"}
			}
			if err := checkRequired(v, f.typ, child); err != nil {
				return err
			}
		}

	case reflect.Slice, reflect.Array:
		if !needsWalk(t.Elem()) {
			return nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return &DecodeError{Field: path, Reason: "expected an array", Err: err}
		}
		for i, item := range items {
			if err := checkRequired(item, t.Elem(), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func needsWalk(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Slice, reflect.Array:
		return needsWalk(t.Elem())
	}
	return false
}

// fieldsOf lists the JSON members of struct type t, flattening embedded
// structs the way encoding/json does.
func fieldsOf(t reflect.Type) []fieldSpec {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldSpec)
	}

	fields := make([]fieldSpec, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				fields = append(fields, fieldsOf(ft)...)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}

		fields = append(fields, fieldSpec{
			name:     name,
			optional: f.Tag.Get("mefrp") == optionalTag,
			typ:      f.Type,
		})
	}

	fieldCache.Store(t, fields)
	return fields
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
