// Package exprpath resolves dotted, indexed property paths such as
// "Orders[2].Lines[0].Sku" against Go values.
//
// # Grammar
//
// A path is one or more segments separated by ".". A segment is a non-empty name
// optionally followed by a single "[N]" index, where N is a non-negative decimal
// integer. Names may not contain ".", "[", "]" or whitespace. Anything else is
// rejected with [ErrMalformedPath]:
//
//	exprpath.Parse("Orders[2].Sku")  // [{Orders 2 true} {Sku 0 false}]
//	exprpath.Parse("Orders[x]")      // ErrMalformedPath
//	exprpath.Parse("a..b")           // ErrMalformedPath
//
// [Parser] memoizes parse results in a bounded LRU cache.
//
// # Resolution
//
// The first segment is looked up through a [TopLevelLookup]; later segments go
// through a [PropertyAccessor] applied to the previous value. The default
// [ReflectAccessor] matches exported struct fields case-insensitively, then by
// `form` tag, then by `json` tag, and reads string-keyed maps.
//
// An index selects an element from arrays, slices, integer-keyed maps and
// iterator functions. An index on a value that is none of these is ignored.
//
// A nil intermediate value, a missing property or an out-of-range index stops
// resolution with Binding.Resolved false and no error. The declared type of the
// remaining path is still filled in when it can be derived from struct and
// collection types, so label metadata is available for nil models:
//
//	r := exprpath.NewResolver()
//	b, err := r.ResolveValue(order, "Customer.Address.City")
//	if err != nil {
//	    return err // malformed path
//	}
//	if b.Resolved {
//	    fmt.Println(b.Value)
//	}
//
// Resolution is read-only and never mutates the inspected values.
package exprpath
