// Package attrvalue converts arbitrary Go values into HTML attribute value strings.
//
// Conversion rules, first match wins:
//
//   - string: returned unchanged
//   - uuid.UUID: canonical 36-character hyphenated form
//   - time.Time: sortable "2006-01-02T15:04:05" form, no zone
//   - anything else: compact JSON
//
// A nil value (untyped nil, nil pointer, nil map, nil slice) reports ok=false,
// which callers treat as "remove the attribute":
//
//	s, ok, err := attrvalue.Serialize(map[string]any{"min": 1})
//	// s = `{"min":1}`, ok = true
//
// # Cyclic values
//
// The JSON encoder tracks the pointers, maps and slices on the current encoding
// path. A reference back to one of them is dropped: the struct field or map entry
// is omitted and the slice element is skipped. The rest of the graph is encoded
// normally, so self-referencing view models can still be attached to data-*
// attributes.
//
// Values that have no JSON form (functions, channels, complex numbers) produce an
// error wrapping [ErrSerialize] and [ErrUnsupportedValue].
//
// # Formatting control values
//
// [Format] renders a bound model value for a control's value attribute. It differs
// from [Serialize]: byte slices become base64, integer kinds print their number even
// when the type has a String method, and an optional format string is applied.
package attrvalue
