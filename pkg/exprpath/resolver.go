package exprpath

import (
	"reflect"
)

// Binding is the outcome of resolving a path.
type Binding struct {
	// Value is the resolved value. Nil when Resolved is false.
	Value any
	// Type is the declared type of the final segment, when known.
	Type reflect.Type
	// Owner is the struct type that declares the final property, when known.
	Owner reflect.Type
	// Field is the struct field backing the final property, when known.
	Field *reflect.StructField
	// Name is the last property name examined.
	Name string
	// Resolved reports whether every segment produced a value.
	Resolved bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithAccessor sets the property accessor. Default: a shared ReflectAccessor.
func WithAccessor(a PropertyAccessor) Option {
	return func(r *Resolver) {
		if a != nil {
			r.accessor = a
		}
	}
}

// WithParser sets the path parser. Default: a Parser caching 1024 paths.
func WithParser(p *Parser) Option {
	return func(r *Resolver) {
		if p != nil {
			r.parser = p
		}
	}
}

// Resolver evaluates paths. It is safe for concurrent use when its accessor is.
type Resolver struct {
	parser   *Parser
	accessor PropertyAccessor
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		parser:   NewParser(1024),
		accessor: &ReflectAccessor{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver()

// Resolve evaluates path against root with the default resolver.
func Resolve(root any, path string) (Binding, error) {
	return defaultResolver.ResolveValue(root, path)
}

// Accessor returns the resolver's property accessor.
func (r *Resolver) Accessor() PropertyAccessor {
	return r.accessor
}

// Root adapts root into a TopLevelLookup using the resolver's accessor.
func (r *Resolver) Root(root any) TopLevelLookup {
	return Root(root, r.accessor)
}

// ResolveValue evaluates path against a root object.
func (r *Resolver) ResolveValue(root any, path string) (Binding, error) {
	return r.Resolve(r.Root(root), path)
}

// Resolve evaluates path starting from top.
// The only error is a malformed path; unresolvable paths return a Binding with
// Resolved false.
func (r *Resolver) Resolve(top TopLevelLookup, path string) (Binding, error) {
	steps, err := r.parser.Parse(path)
	if err != nil {
		return Binding{}, err
	}

	var (
		b   Binding
		cur Member
	)
	for i, st := range steps {
		b.Name = st.Name

		var (
			m  Member
			ok bool
		)
		if i == 0 {
			m, ok = top.LookupTopLevel(st.Name)
		} else if indirect(reflect.ValueOf(cur.Value)).IsValid() {
			m, ok = r.accessor.Property(cur.Value, cur.Type, st.Name)
		}

		if !ok {
			return r.finishType(b, top, cur, steps, i), nil
		}

		if st.Indexed {
			m, ok = index(m, st.Index)
			if !ok {
				return r.finishType(b, top, cur, steps, i), nil
			}
		}
		cur = m
	}

	b.Value = cur.Value
	b.Type = cur.Type
	b.Owner = cur.Owner
	b.Field = cur.Field
	b.Resolved = true
	return b, nil
}

// finishType fills declared type information for steps[i:] after value
// resolution stopped at step i.
func (r *Resolver) finishType(b Binding, top TopLevelLookup, cur Member, steps []Step, i int) Binding {
	ta, ok := r.accessor.(TypeAccessor)
	if !ok {
		return b
	}

	var start reflect.Type
	if i == 0 {
		tr, ok := top.(typedRoot)
		if !ok {
			return b
		}
		start = tr.RootType()
	} else {
		start = cur.Type
		if start == nil || start.Kind() == reflect.Interface {
			if v := cur.Value; v != nil {
				start = reflect.TypeOf(v)
			}
		}
	}

	if m, ok := walkType(ta, start, steps[i:]); ok {
		b.Type = m.Type
		b.Owner = m.Owner
		b.Field = m.Field
	}
	b.Name = steps[len(steps)-1].Name
	return b
}

// ResolveType walks path through declared types only.
// Binding.Value is always nil; Resolved reports whether every segment was found.
func (r *Resolver) ResolveType(t reflect.Type, path string) (Binding, error) {
	steps, err := r.parser.Parse(path)
	if err != nil {
		return Binding{}, err
	}

	b := Binding{Name: steps[len(steps)-1].Name}
	ta, ok := r.accessor.(TypeAccessor)
	if !ok {
		return b, nil
	}
	m, ok := walkType(ta, t, steps)
	if !ok {
		return b, nil
	}
	b.Type = m.Type
	b.Owner = m.Owner
	b.Field = m.Field
	b.Resolved = true
	return b, nil
}

func walkType(ta TypeAccessor, t reflect.Type, steps []Step) (Member, bool) {
	var cur Member
	for _, st := range steps {
		m, ok := ta.PropertyType(t, st.Name)
		if !ok {
			return Member{}, false
		}
		if st.Indexed {
			if et, ok := ElementType(m.Type); ok {
				m = Member{Type: et}
			}
		}
		cur = m
		t = m.Type
	}
	return cur, true
}
