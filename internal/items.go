package internal

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/dmitrymomot/fluent/pkg/attrvalue"
	"github.com/dmitrymomot/fluent/pkg/exprpath"
)

// option is a SelectItem together with the raw value and the item it was built from.
type option struct {
	SelectItem
	raw  any
	item any
}

// itemSource turns a collection into options. It backs the controls that
// render one element per item: drop-down lists and input lists.
type itemSource struct {
	source      any
	valueField  string
	textField   string
	groupField  string
	valueFormat string
	textFormat  string
}

// options turns the item source into options.
func (s *itemSource) options(r *exprpath.Resolver) ([]option, error) {
	switch src := s.source.(type) {
	case nil:
		return nil, nil
	case []SelectItem:
		opts := make([]option, 0, len(src))
		for _, it := range src {
			opts = append(opts, option{SelectItem: it})
		}
		return opts, nil
	case []SelectGroup:
		var opts []option
		for _, g := range src {
			for _, it := range g.Items {
				it.Group = g.Label
				opts = append(opts, option{SelectItem: it})
			}
		}
		return opts, nil
	case map[string]string:
		keys := make([]string, 0, len(src))
		for k := range src {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		opts := make([]option, 0, len(keys))
		for _, k := range keys {
			opts = append(opts, option{SelectItem: SelectItem{Value: k, Text: src[k]}, raw: k})
		}
		return opts, nil
	}

	rv := reflect.ValueOf(s.source)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		opts := make([]option, 0, rv.Len())
		for i := range rv.Len() {
			o, err := s.itemOption(r, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			opts = append(opts, o)
		}
		return opts, nil
	case reflect.Map:
		return s.mapOptions(r, rv)
	case reflect.Func:
		return s.seqOptions(r, rv)
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidItems, s.source)
}

func (s *itemSource) seqOptions(r *exprpath.Resolver, rv reflect.Value) ([]option, error) {
	if rv.IsNil() {
		return nil, nil
	}
	t := rv.Type()
	if !t.CanSeq() && !t.CanSeq2() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidItems, t)
	}

	var (
		opts []option
		err  error
	)
	add := func(v reflect.Value) bool {
		var o option
		if o, err = s.itemOption(r, v.Interface()); err != nil {
			return false
		}
		opts = append(opts, o)
		return true
	}
	if t.CanSeq2() {
		for _, v := range rv.Seq2() {
			if !add(v) {
				break
			}
		}
	} else {
		for v := range rv.Seq() {
			if !add(v) {
				break
			}
		}
	}
	return opts, err
}

// mapOptions uses keys as values and elements as items, ordered by formatted key.
func (s *itemSource) mapOptions(r *exprpath.Resolver, rv reflect.Value) ([]option, error) {
	type entry struct {
		key string
		raw any
		val any
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		entries = append(entries, entry{key: formatValue(k, s.valueFormat), raw: k, val: iter.Value().Interface()})
	}
	slices.SortFunc(entries, func(a, b entry) int { return cmp.Compare(a.key, b.key) })

	opts := make([]option, 0, len(entries))
	for _, e := range entries {
		o, err := s.itemOption(r, e.val)
		if err != nil {
			return nil, err
		}
		if s.valueField == "" {
			o.Value, o.raw = e.key, e.raw
		}
		opts = append(opts, o)
	}
	return opts, nil
}

// itemOption builds the option for one item. The value comes from the value
// field, else the text field, else the item itself; the text from the text
// field, else the value.
func (s *itemSource) itemOption(r *exprpath.Resolver, item any) (option, error) {
	if it, ok := item.(SelectItem); ok {
		return option{SelectItem: it}, nil
	}

	valuePath := cmp.Or(s.valueField, s.textField)
	raw, err := lookup(r, item, valuePath)
	if err != nil {
		return option{}, err
	}
	text := raw
	if s.textField != "" && s.textField != valuePath {
		if text, err = lookup(r, item, s.textField); err != nil {
			return option{}, err
		}
	}

	o := option{raw: raw, item: item}
	o.Value = formatValue(raw, s.valueFormat)
	o.Text = formatValue(text, s.textFormat)
	if s.groupField != "" {
		g, err := lookup(r, item, s.groupField)
		if err != nil {
			return option{}, err
		}
		o.Group = formatValue(g, "")
	}
	return o, nil
}

// selection returns the values to select as raw values and their formatted forms.
// The explicit value wins, then the attempted values, then the model value.
// Slices expand into several values when multiple is set.
func (s *itemSource) selection(f field, explicit any, hasExplicit, multiple bool) (raws []any, strs []string, ok bool) {
	var v any
	switch {
	case hasExplicit:
		v = explicit
	case f.hasAttempt:
		if !multiple {
			return nil, []string{f.attempted}, true
		}
		return nil, f.attempts, true
	case f.binding.Resolved:
		v = f.binding.Value
	default:
		return nil, nil, false
	}
	if attrvalue.IsNil(v) {
		return nil, nil, false
	}

	rv := reflect.Indirect(reflect.ValueOf(v))
	if multiple && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
		for i := range rv.Len() {
			x := rv.Index(i).Interface()
			raws = append(raws, x)
			strs = append(strs, s.selectionString(x))
		}
		return raws, strs, true
	}
	return []any{v}, []string{s.selectionString(v)}, true
}

// selectionString formats a selected value for comparison with option values.
// Strings are taken as already formatted.
func (s *itemSource) selectionString(v any) string {
	if str, ok := v.(string); ok {
		return str
	}
	return formatValue(v, s.valueFormat)
}

// lookup resolves path against item. An empty path returns the item itself.
func lookup(r *exprpath.Resolver, item any, path string) (any, error) {
	if path == "" {
		return item, nil
	}
	b, err := r.ResolveValue(item, path)
	if err != nil {
		return nil, err
	}
	if !b.Resolved {
		return nil, nil
	}
	return b.Value, nil
}

func matches(o option, raws []any, strs []string) bool {
	if slices.Contains(strs, o.Value) {
		return true
	}
	if o.raw == nil {
		return false
	}
	for _, r := range raws {
		if equal(o.raw, r) {
			return true
		}
	}
	return false
}

func equal(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() || !va.Comparable() {
		return false
	}
	return va.Equal(vb)
}
