package schemas

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// strictAPI rejects members that the target type does not declare.
var strictAPI = sonic.Config{
	DisallowUnknownFields: true,
}.Froze()

var (
	unmarshalerType  = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	optionalSlotType = reflect.TypeOf((*interface{ optionalSlot() })(nil)).Elem()
)

// DecodeStrict decodes data into v, which must be a non-nil pointer.
//
// Decoding fails when data carries a member v does not declare, or when a
// required member is missing or null. A struct field is required unless it
// is a pointer, an Optional, or tagged omitempty. A null body never decodes
// into a struct, map or slice.
func DecodeStrict(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.Errorf("decode target must be a non-nil pointer, got %T", v)
	}
	target := rv.Type().Elem()

	if isNull(data) && !acceptsNull(target) {
		return errors.Errorf("decode %s: unexpected null", target)
	}
	if err := checkRequired(target, data, ""); err != nil {
		return errors.Wrapf(err, "decode %s", target)
	}
	if err := strictAPI.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decode %s", target)
	}
	return nil
}

// checkRequired walks raw alongside t and reports the first required struct
// member that is absent. Shape mismatches are left to the decoder.
func checkRequired(t reflect.Type, raw []byte, path string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	// Types with their own decoding (Optional among them) check themselves.
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		var members map[string]json.RawMessage
		if err := strictAPI.Unmarshal(raw, &members); err != nil {
			return nil
		}
		return checkStruct(t, members, path)

	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return nil
		}
		var items []json.RawMessage
		if err := strictAPI.Unmarshal(raw, &items); err != nil {
			return nil
		}
		for i, item := range items {
			if isNull(item) {
				continue
			}
			if err := checkRequired(t.Elem(), item, path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}

	case reflect.Map:
		var members map[string]json.RawMessage
		if err := strictAPI.Unmarshal(raw, &members); err != nil {
			return nil
		}
		for key, member := range members {
			if isNull(member) {
				continue
			}
			if err := checkRequired(t.Elem(), member, joinPath(path, key)); err != nil {
				return err
			}
		}
	}
	return nil
}

// acceptsNull reports whether a top-level null is a valid value for t.
// Objects and arrays without their own decoding must be present.
func acceptsNull(t reflect.Type) bool {
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return false
	}
	return true
}

func checkStruct(t reflect.Type, members map[string]json.RawMessage, path string) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitempty, skip := jsonName(field)
		if skip {
			continue
		}
		if field.Anonymous && field.Tag.Get("json") == "" && field.Type.Kind() == reflect.Struct {
			if err := checkStruct(field.Type, members, path); err != nil {
				return err
			}
			continue
		}

		raw, ok := lookupMember(members, name)
		if !ok || isNull(raw) {
			if isRequired(field.Type, omitempty) {
				return errors.Errorf("missing field %q", joinPath(path, name))
			}
			continue
		}
		if err := checkRequired(field.Type, raw, joinPath(path, name)); err != nil {
			return err
		}
	}
	return nil
}

func isRequired(t reflect.Type, omitempty bool) bool {
	if omitempty {
		return false
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return false
	}
	return !t.Implements(optionalSlotType)
}

func jsonName(field reflect.StructField) (name string, omitempty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	for _, opt := range strings.Split(opts, ",") {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}

// lookupMember matches keys the way the decoder does: exact first, then
// case-insensitively.
func lookupMember(members map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if raw, ok := members[name]; ok {
		return raw, true
	}
	for key, raw := range members {
		if strings.EqualFold(key, name) {
			return raw, true
		}
	}
	return nil, false
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
