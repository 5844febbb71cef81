package integrations

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

var (
	jsonUnmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// DecodeStrict unmarshals data into v and then checks that every required
// field is present at every depth.
//
// A struct field is required when its type is not a pointer and its JSON tag
// carries neither omitempty nor omitzero. A required field that is missing or
// null fails the decode. Keys match field names the way encoding/json does:
// an exact match first, then a case-insensitive one. Unknown fields are
// ignored so that additions on the remote side do not break older clients.
func DecodeStrict(data []byte, v any) error {
	if isNullJSON(data) {
		return fmt.Errorf("$: payload is null")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	return checkRequired(reflect.TypeOf(v), data, "$")
}

func checkRequired(t reflect.Type, raw json.RawMessage, path string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if isNullJSON(raw) || implementsUnmarshaler(t) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil
		}
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() || f.Anonymous {
				continue
			}
			name, omit, skip := jsonField(f)
			if skip {
				continue
			}
			val, present := lookupKey(obj, name)
			optional := omit || f.Type.Kind() == reflect.Pointer
			if !present || isNullJSON(val) {
				if optional {
					continue
				}
				return fmt.Errorf("%s: missing required field %q", path, name)
			}
			if err := checkRequired(f.Type, val, path+"."+name); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		for i, item := range items {
			if err := checkRequired(t.Elem(), item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		var items map[string]json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		for k, item := range items {
			if err := checkRequired(t.Elem(), item, fmt.Sprintf("%s[%q]", path, k)); err != nil {
				return err
			}
		}
	}
	return nil
}

// lookupKey finds the value encoding/json would assign to the field name.
// A non-null case-insensitive match wins over a null one.
func lookupKey(obj map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if v, ok := obj[name]; ok {
		return v, true
	}
	var (
		found json.RawMessage
		ok    bool
	)
	for k, v := range obj {
		if !strings.EqualFold(k, name) {
			continue
		}
		if !isNullJSON(v) {
			return v, true
		}
		found, ok = v, true
	}
	return found, ok
}

func jsonField(f reflect.StructField) (name string, omit, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	for _, o := range strings.Split(opts, ",") {
		if o == "omitempty" || o == "omitzero" {
			omit = true
		}
	}
	return name, omit, false
}

func implementsUnmarshaler(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	return pt.Implements(jsonUnmarshalerType) || pt.Implements(textUnmarshalerType)
}

func isNullJSON(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
