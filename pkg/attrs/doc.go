// Package attrs provides an ordered, case-insensitive HTML attribute store.
//
// A [Store] keeps attributes in the order they were first set. Names compare
// case-insensitively and keep the spelling they were first written with:
//
//	s := attrs.New()
//	_ = s.Set("Placeholder", "Email")
//	_ = s.Set("placeholder", "E-mail") // overwrites, keeps "Placeholder" and its position
//	_ = s.Set("data-range", []int{1, 5})
//	_ = s.Set("placeholder", nil)      // removes the attribute
//
// Non-string values go through [attrvalue.Serialize]. Setting nil removes the
// attribute; setting an empty name does nothing.
//
// Bags of attributes can be merged with [Store.SetMany]. A bag is a string-keyed
// map, a templ.Attributes value, another Store, a slice of [Pair] or a struct
// whose exported fields become attributes:
//
//	_ = s.SetMany(struct {
//	    DataToggle string // data-toggle
//	    Aria_Label string // aria-label
//	    Role       string `attr:"role"`
//	}{...})
//
// Map bags are applied in sorted key order so rendered markup is deterministic.
//
// A Store belongs to one builder and is not safe for concurrent mutation. Use
// [Store.Clone] to take an independent snapshot.
package attrs
