package attrs

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/a-h/templ"
)

// SetMany applies Set for every pair in bag.
// Pairs that fail to serialize are skipped and their errors joined.
func (s *Store) SetMany(bag any) error {
	switch b := bag.(type) {
	case nil:
		return nil
	case *Store:
		if b == nil {
			return nil
		}
		for _, p := range b.pairs {
			s.SetString(p.Name, p.Value)
		}
		return nil
	case []Pair:
		for _, p := range b {
			s.SetString(p.Name, p.Value)
		}
		return nil
	case map[string]string:
		for _, k := range sortedKeys(b) {
			s.SetString(k, b[k])
		}
		return nil
	case templ.Attributes:
		return s.setTemplAttributes(b)
	case map[string]any:
		var errs []error
		for _, k := range sortedKeys(b) {
			errs = append(errs, s.Set(k, b[k]))
		}
		return errors.Join(errs...)
	}

	rv := reflect.ValueOf(bag)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch {
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		return s.setMap(rv)
	case rv.Kind() == reflect.Struct:
		return s.setStruct(rv)
	}
	return fmt.Errorf("%w: %T", ErrInvalidBag, bag)
}

// setTemplAttributes follows templ's boolean attribute convention:
// true renders the bare attribute, false removes it.
func (s *Store) setTemplAttributes(a templ.Attributes) error {
	var errs []error
	for _, k := range sortedKeys(a) {
		switch v := a[k].(type) {
		case bool:
			if v {
				s.SetString(k, k)
			} else {
				s.Remove(k)
			}
		default:
			errs = append(errs, s.Set(k, v))
		}
	}
	return errors.Join(errs...)
}

func (s *Store) setMap(rv reflect.Value) error {
	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int { return strings.Compare(a.String(), b.String()) })

	var errs []error
	for _, k := range keys {
		errs = append(errs, s.Set(k.String(), rv.MapIndex(k).Interface()))
	}
	return errors.Join(errs...)
}

func (s *Store) setStruct(rv reflect.Value) error {
	var errs []error
	for _, f := range structFields(rv.Type()) {
		errs = append(errs, s.Set(f.name, rv.Field(f.index).Interface()))
	}
	return errors.Join(errs...)
}

type bagField struct {
	name  string
	index int
}

var bagFields sync.Map // map[reflect.Type][]bagField

func structFields(t reflect.Type) []bagField {
	if f, ok := bagFields.Load(t); ok {
		return f.([]bagField)
	}
	var fields []bagField
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Tag.Get("attr")
		if name == "-" {
			continue
		}
		if name == "" {
			name = FieldName(sf.Name)
		}
		fields = append(fields, bagField{name: name, index: i})
	}
	f, _ := bagFields.LoadOrStore(t, fields)
	return f.([]bagField)
}

// FieldName converts a Go field name to an attribute name.
// Underscores become hyphens and case boundaries are hyphenated and lowered:
// "DataToggle" and "Data_Toggle" both become "data-toggle", "ID" becomes "id".
func FieldName(name string) string {
	runes := []rune(strings.ReplaceAll(name, "_", "-"))
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && runes[i-1] != '-' && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
