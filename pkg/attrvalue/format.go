package attrvalue

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Format renders a bound value for a control's value attribute.
//
// nil renders as the empty string. Byte slices are base64 encoded. time.Time uses
// format as its layout, or DateTimeLayout when format is empty. Integer kinds
// print their number, ignoring any String method, so enum-like types round-trip
// through form posts. Everything else goes through fmt, with format as the verb
// string when one is given.
func Format(v any, format string) string {
	if IsNil(v) {
		return ""
	}

	switch x := v.(type) {
	case []byte:
		return base64.StdEncoding.EncodeToString(x)
	case time.Time:
		return formatTime(x, format)
	case *time.Time:
		return formatTime(*x, format)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	if format != "" {
		return fmt.Sprintf(format, rv.Interface())
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
	return fmt.Sprint(rv.Interface())
}

func formatTime(t time.Time, layout string) string {
	if layout == "" {
		layout = DateTimeLayout
	}
	return t.Format(layout)
}
