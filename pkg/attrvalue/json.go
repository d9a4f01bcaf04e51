package attrvalue

import (
	"bytes"
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
)

var (
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// refKey identifies a reference value on the encoding path.
type refKey struct {
	typ reflect.Type
	ptr uintptr
	n   int
}

type encoder struct {
	buf      bytes.Buffer
	visiting map[refKey]struct{}
}

func newEncoder() *encoder {
	return &encoder{visiting: make(map[refKey]struct{})}
}

// reference returns the identity of v if v is a non-empty pointer, map or slice.
func reference(v reflect.Value) (refKey, bool) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return refKey{}, false
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return refKey{}, false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return refKey{}, false
		}
		return refKey{typ: v.Type(), ptr: v.Pointer()}, true
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 {
			return refKey{}, false
		}
		return refKey{typ: v.Type(), ptr: v.Pointer(), n: v.Len()}, true
	}
	return refKey{}, false
}

// cyclic reports whether v refers to a value that is currently being encoded.
func (e *encoder) cyclic(v reflect.Value) bool {
	k, ok := reference(v)
	if !ok {
		return false
	}
	_, seen := e.visiting[k]
	return seen
}

func (e *encoder) enter(v reflect.Value) func() {
	k, ok := reference(v)
	if !ok {
		return func() {}
	}
	e.visiting[k] = struct{}{}
	return func() { delete(e.visiting, k) }
}

func (e *encoder) encode(v reflect.Value) error {
	if !v.IsValid() {
		e.buf.WriteString("null")
		return nil
	}

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			e.buf.WriteString("null")
			return nil
		}
		return e.encode(v.Elem())
	}

	if ok, err := e.encodeMarshaler(v); ok || err != nil {
		return err
	}

	switch v.Kind() {
	case reflect.Bool:
		e.buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		return e.encodeFloat(v)
	case reflect.String:
		e.writeString(v.String())
	case reflect.Pointer:
		if v.IsNil() {
			e.buf.WriteString("null")
			return nil
		}
		defer e.enter(v)()
		return e.encode(v.Elem())
	case reflect.Slice:
		if v.IsNil() {
			e.buf.WriteString("null")
			return nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			e.writeString(base64.StdEncoding.EncodeToString(v.Bytes()))
			return nil
		}
		defer e.enter(v)()
		return e.encodeList(v)
	case reflect.Array:
		return e.encodeList(v)
	case reflect.Map:
		if v.IsNil() {
			e.buf.WriteString("null")
			return nil
		}
		defer e.enter(v)()
		return e.encodeMap(v)
	case reflect.Struct:
		return e.encodeStruct(v)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedValue, v.Type())
	}
	return nil
}

func (e *encoder) encodeMarshaler(v reflect.Value) (bool, error) {
	if !v.CanInterface() {
		return false, nil
	}
	t := v.Type()
	if !t.Implements(jsonMarshalerType) && !t.Implements(textMarshalerType) {
		if !v.CanAddr() {
			return false, nil
		}
		pt := reflect.PointerTo(t)
		if !pt.Implements(jsonMarshalerType) && !pt.Implements(textMarshalerType) {
			return false, nil
		}
		v = v.Addr()
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		e.buf.WriteString("null")
		return true, nil
	}

	switch m := v.Interface().(type) {
	case json.Marshaler:
		data, err := m.MarshalJSON()
		if err != nil {
			return true, fmt.Errorf("marshal %s: %w", v.Type(), err)
		}
		if err := json.Compact(&e.buf, data); err != nil {
			return true, fmt.Errorf("marshal %s: %w", v.Type(), err)
		}
	case encoding.TextMarshaler:
		text, err := m.MarshalText()
		if err != nil {
			return true, fmt.Errorf("marshal %s: %w", v.Type(), err)
		}
		e.writeString(string(text))
	}
	return true, nil
}

func (e *encoder) encodeFloat(v reflect.Value) error {
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %s value %v", ErrUnsupportedValue, v.Type(), f)
	}
	bits := 64
	if v.Kind() == reflect.Float32 {
		bits = 32
	}
	e.buf.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
	return nil
}

func (e *encoder) encodeList(v reflect.Value) error {
	e.buf.WriteByte('[')
	first := true
	for i := range v.Len() {
		elem := v.Index(i)
		if e.cyclic(elem) {
			continue
		}
		if !first {
			e.buf.WriteByte(',')
		}
		first = false
		if err := e.encode(elem); err != nil {
			return err
		}
	}
	e.buf.WriteByte(']')
	return nil
}

func (e *encoder) encodeMap(v reflect.Value) error {
	type kv struct {
		key   string
		value reflect.Value
	}

	entries := make([]kv, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key())
		if err != nil {
			return err
		}
		entries = append(entries, kv{key: key, value: iter.Value()})
	}
	slices.SortFunc(entries, func(a, b kv) int { return strings.Compare(a.key, b.key) })

	e.buf.WriteByte('{')
	first := true
	for _, ent := range entries {
		if e.cyclic(ent.value) {
			continue
		}
		if !first {
			e.buf.WriteByte(',')
		}
		first = false
		e.writeString(ent.key)
		e.buf.WriteByte(':')
		if err := e.encode(ent.value); err != nil {
			return err
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func mapKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return "", fmt.Errorf("marshal map key %s: %w", k.Type(), err)
		}
		return string(text), nil
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	}
	return "", fmt.Errorf("%w: map key %s", ErrUnsupportedValue, k.Type())
}

func (e *encoder) encodeStruct(v reflect.Value) error {
	e.buf.WriteByte('{')
	first := true
	for _, f := range cachedFields(v.Type()) {
		fv, err := v.FieldByIndexErr(f.index)
		if err != nil {
			// nil embedded pointer
			continue
		}
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}
		if e.cyclic(fv) {
			continue
		}
		if !first {
			e.buf.WriteByte(',')
		}
		first = false
		e.writeString(f.name)
		e.buf.WriteByte(':')
		if err := e.encode(fv); err != nil {
			return err
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) writeString(s string) {
	enc := json.NewEncoder(&e.buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode appends a newline.
	e.buf.Truncate(e.buf.Len() - 1)
}

type field struct {
	name      string
	index     []int
	omitEmpty bool
}

var fieldCache sync.Map // map[reflect.Type][]field

func cachedFields(t reflect.Type) []field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]field)
	}
	f, _ := fieldCache.LoadOrStore(t, typeFields(t, nil))
	return f.([]field)
}

// typeFields lists the JSON-visible fields of t, flattening embedded structs.
// When names collide the shallowest field wins, then the first declared.
func typeFields(t reflect.Type, parent []int) []field {
	var fields []field
	for i := range t.NumField() {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		index := append(slices.Clone(parent), i)

		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				fields = append(fields, typeFields(ft, index)...)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, field{
			name:      name,
			index:     index,
			omitEmpty: strings.Contains(opts, "omitempty"),
		})
	}

	if parent != nil {
		return fields
	}

	out := make([]field, 0, len(fields))
	seen := make(map[string]int, len(fields))
	for _, f := range fields {
		if j, ok := seen[f.name]; ok {
			if len(f.index) < len(out[j].index) {
				out[j] = f
			}
			continue
		}
		seen[f.name] = len(out)
		out = append(out, f)
	}
	slices.SortStableFunc(out, func(a, b field) int { return slices.Compare(a.index, b.index) })
	return out
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
