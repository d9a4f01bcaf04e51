package exprpath

import (
	"reflect"
	"strings"
	"sync"
)

// Member is the result of a property lookup.
// Type is the declared type of the property, which may be an interface type
// even when Value holds a concrete value. Field is set when the property is
// backed by a struct field, and Owner is the struct type declaring it.
type Member struct {
	Value any
	Type  reflect.Type
	Owner reflect.Type
	Field *reflect.StructField
}

// TopLevelLookup resolves the first segment of a path.
type TopLevelLookup interface {
	LookupTopLevel(name string) (Member, bool)
}

// PropertyAccessor reads a named property from a container value.
// containerType is the container's declared type; implementations should
// prefer the dynamic type of container when it is more specific.
type PropertyAccessor interface {
	Property(container any, containerType reflect.Type, name string) (Member, bool)
}

// TypeAccessor resolves a named property from a type alone.
// Accessors implementing it let resolution report declared types past nil values.
type TypeAccessor interface {
	PropertyType(containerType reflect.Type, name string) (Member, bool)
}

// ReflectAccessor reads exported struct fields and string-keyed map entries.
//
// Struct fields match by exact name, then case-insensitive name, then `form`
// tag, then `json` tag. Promoted fields of embedded structs are visible.
// Field lookups are cached per type and name.
type ReflectAccessor struct {
	fields sync.Map // fieldKey -> fieldLookup
}

type fieldKey struct {
	t    reflect.Type
	name string
}

type fieldLookup struct {
	field reflect.StructField
	ok    bool
}

var (
	_ PropertyAccessor = (*ReflectAccessor)(nil)
	_ TypeAccessor     = (*ReflectAccessor)(nil)
)

// Property implements PropertyAccessor.
func (a *ReflectAccessor) Property(container any, containerType reflect.Type, name string) (Member, bool) {
	rv := indirect(reflect.ValueOf(container))
	if !rv.IsValid() {
		return Member{}, false
	}

	switch rv.Kind() {
	case reflect.Struct:
		sf, ok := a.Field(rv.Type(), name)
		if !ok {
			return Member{}, false
		}
		fv, err := rv.FieldByIndexErr(sf.Index)
		if err != nil || !fv.CanInterface() {
			return Member{}, false
		}
		return Member{Value: fv.Interface(), Type: sf.Type, Owner: rv.Type(), Field: &sf}, true

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Member{}, false
		}
		v, ok := mapEntry(rv, name)
		if !ok {
			return Member{}, false
		}
		return Member{Value: v.Interface(), Type: rv.Type().Elem()}, true
	}
	return Member{}, false
}

// PropertyType implements TypeAccessor.
func (a *ReflectAccessor) PropertyType(containerType reflect.Type, name string) (Member, bool) {
	t := derefType(containerType)
	if t == nil {
		return Member{}, false
	}
	switch t.Kind() {
	case reflect.Struct:
		sf, ok := a.Field(t, name)
		if !ok {
			return Member{}, false
		}
		return Member{Type: sf.Type, Owner: t, Field: &sf}, true
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return Member{}, false
		}
		return Member{Type: t.Elem()}, true
	}
	return Member{}, false
}

// Field finds the exported struct field of t matching name.
func (a *ReflectAccessor) Field(t reflect.Type, name string) (reflect.StructField, bool) {
	t = derefType(t)
	if t == nil || t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}

	k := fieldKey{t: t, name: name}
	if v, ok := a.fields.Load(k); ok {
		l := v.(fieldLookup)
		return l.field, l.ok
	}

	sf, ok := findField(t, name)
	a.fields.Store(k, fieldLookup{field: sf, ok: ok})
	return sf, ok
}

func findField(t reflect.Type, name string) (reflect.StructField, bool) {
	fields := reflect.VisibleFields(t)
	match := []func(sf reflect.StructField) bool{
		func(sf reflect.StructField) bool { return sf.Name == name },
		func(sf reflect.StructField) bool { return strings.EqualFold(sf.Name, name) },
		func(sf reflect.StructField) bool { return tagName(sf, "form") == name },
		func(sf reflect.StructField) bool { return tagName(sf, "json") == name },
	}
	for _, m := range match {
		for _, sf := range fields {
			if sf.IsExported() && !sf.Anonymous && m(sf) {
				return sf, true
			}
		}
	}
	return reflect.StructField{}, false
}

func tagName(sf reflect.StructField, key string) string {
	name, _, _ := strings.Cut(sf.Tag.Get(key), ",")
	if name == "-" {
		return ""
	}
	return name
}

func mapEntry(m reflect.Value, name string) (reflect.Value, bool) {
	kt := m.Type().Key()
	if v := m.MapIndex(reflect.ValueOf(name).Convert(kt)); v.IsValid() {
		return v, true
	}
	iter := m.MapRange()
	for iter.Next() {
		if strings.EqualFold(iter.Key().String(), name) {
			return iter.Value(), true
		}
	}
	return reflect.Value{}, false
}

// indirect dereferences pointers and interfaces, returning the zero Value on nil.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func derefType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// Root adapts a root object into a TopLevelLookup using accessor.
// The root's static type is kept so declared types can be reported for nil roots
// passed as typed nil pointers.
func Root(root any, accessor PropertyAccessor) TopLevelLookup {
	return rootLookup{root: root, rootType: reflect.TypeOf(root), accessor: accessor}
}

type rootLookup struct {
	root     any
	rootType reflect.Type
	accessor PropertyAccessor
}

func (r rootLookup) LookupTopLevel(name string) (Member, bool) {
	return r.accessor.Property(r.root, r.rootType, name)
}

// RootType implements typedRoot.
func (r rootLookup) RootType() reflect.Type {
	return r.rootType
}

// typedRoot is implemented by lookups that know the static type of their root.
type typedRoot interface {
	RootType() reflect.Type
}

// Values is a TopLevelLookup over named values, matched case-insensitively.
type Values map[string]any

// LookupTopLevel implements TopLevelLookup.
func (v Values) LookupTopLevel(name string) (Member, bool) {
	val, ok := v[name]
	if !ok {
		for k, x := range v {
			if strings.EqualFold(k, name) {
				val, ok = x, true
				break
			}
		}
	}
	if !ok {
		return Member{}, false
	}
	return Member{Value: val, Type: reflect.TypeOf(val)}, true
}

// Chain tries each lookup in order and returns the first hit.
type Chain []TopLevelLookup

// LookupTopLevel implements TopLevelLookup.
func (c Chain) LookupTopLevel(name string) (Member, bool) {
	for _, l := range c {
		if l == nil {
			continue
		}
		if m, ok := l.LookupTopLevel(name); ok {
			return m, true
		}
	}
	return Member{}, false
}

// RootType reports the first root type known to the chained lookups.
func (c Chain) RootType() reflect.Type {
	for _, l := range c {
		if tr, ok := l.(typedRoot); ok && tr.RootType() != nil {
			return tr.RootType()
		}
	}
	return nil
}
