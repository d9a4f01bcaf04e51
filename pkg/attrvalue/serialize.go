package attrvalue

import (
	"errors"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// DateTimeLayout is the sortable date-time layout used for time.Time values.
const DateTimeLayout = "2006-01-02T15:04:05"

// Serialize converts v to its attribute string form.
// ok is false when v is nil; the caller should remove the attribute.
func Serialize(v any) (s string, ok bool, err error) {
	if IsNil(v) {
		return "", false, nil
	}

	switch x := v.(type) {
	case string:
		return x, true, nil
	case *string:
		return *x, true, nil
	case uuid.UUID:
		return x.String(), true, nil
	case *uuid.UUID:
		return x.String(), true, nil
	case time.Time:
		return x.Format(DateTimeLayout), true, nil
	case *time.Time:
		return x.Format(DateTimeLayout), true, nil
	}

	data, err := Marshal(v)
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// MustSerialize is like Serialize but panics on error.
// Intended for values known to be serializable, such as literals in templates.
func MustSerialize(v any) string {
	s, _, err := Serialize(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Marshal encodes v as compact JSON, dropping references that point back to a
// value already on the encoding path.
func Marshal(v any) ([]byte, error) {
	e := newEncoder()
	if err := e.encode(reflect.ValueOf(v)); err != nil {
		return nil, errors.Join(ErrSerialize, err)
	}
	return e.buf.Bytes(), nil
}

// IsNil reports whether v is nil or a nil pointer, map, slice, interface, func or chan.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
