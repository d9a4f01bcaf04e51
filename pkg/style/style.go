// Package style merges CSS declarations into an inline style attribute value.
//
// Merge replaces existing declarations of the same property, drops a property
// when its value is nil, and inserts new declarations at the front of the list:
//
//	style.Merge("color:red; margin:0", style.Declaration{Property: "Color", Value: "blue"})
//	// "color:blue; margin:0"
//
//	style.Merge("color:red; margin:0", style.Declaration{Property: "padding", Value: "1px"})
//	// "padding:1px; color:red; margin:0"
//
// Property matching is a case-insensitive prefix test against each existing
// declaration, so "margin" also matches a "margin-top" declaration. Only the first
// match is replaced.
package style

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/fluent/pkg/attrvalue"
)

// Declaration is a CSS property and its value.
// A nil Value, including a typed nil pointer, removes the property.
type Declaration struct {
	Property string
	Value    any
}

// Entry is a parsed declaration from a style attribute.
type Entry struct {
	Property string
	Value    string
}

func (e Entry) String() string {
	return e.Property + ":" + e.Value
}

// Set is shorthand for a Declaration.
func Set(property string, value any) Declaration {
	return Declaration{Property: property, Value: value}
}

// Unset is shorthand for a Declaration that removes property.
func Unset(property string) Declaration {
	return Declaration{Property: property}
}

// Decls builds declarations from a map, ordered by property name.
func Decls(m map[string]any) []Declaration {
	decls := make([]Declaration, 0, len(m))
	for _, p := range slices.Sorted(maps.Keys(m)) {
		decls = append(decls, Declaration{Property: p, Value: m[p]})
	}
	return decls
}

// Merge applies decls to the current style string and returns the new value.
// Set declarations are moved to the front even when they replace an existing one;
// callers depending on declaration order get most-recent-first.
func Merge(current string, decls ...Declaration) string {
	list := split(current)

	for _, d := range decls {
		name := strings.TrimSpace(d.Property)
		if name == "" {
			continue
		}

		if i := slices.IndexFunc(list, func(s string) bool { return hasPrefixFold(s, name) }); i >= 0 {
			list = slices.Delete(list, i, i+1)
		}

		if attrvalue.IsNil(d.Value) {
			continue
		}

		decl := strings.ToLower(name) + ":" + fmt.Sprint(d.Value)
		if len(list) == 0 {
			list = append(list, decl)
		} else {
			list = slices.Insert(list, 0, decl)
		}
	}

	return strings.Join(list, "; ")
}

// Parse splits a style attribute value into entries.
// Declarations without a colon are kept with an empty value.
func Parse(s string) []Entry {
	parts := split(s)
	entries := make([]Entry, 0, len(parts))
	for _, p := range parts {
		prop, val, _ := strings.Cut(p, ":")
		entries = append(entries, Entry{
			Property: strings.TrimSpace(prop),
			Value:    strings.TrimSpace(val),
		})
	}
	return entries
}

func split(s string) []string {
	var list []string
	for part := range strings.SplitSeq(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
