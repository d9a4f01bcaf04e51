package exprpath

import (
	"reflect"
)

// ElementType returns the element type of an indexable type: arrays, slices,
// integer-keyed maps and iter.Seq / iter.Seq2 style functions (the first
// yielded value for Seq, the second for Seq2). Pointers are dereferenced.
func ElementType(t reflect.Type) (reflect.Type, bool) {
	t = derefType(t)
	if t == nil {
		return nil, false
	}
	switch t.Kind() {
	case reflect.Array, reflect.Slice:
		return t.Elem(), true
	case reflect.Map:
		if isIntKind(t.Key().Kind()) {
			return t.Elem(), true
		}
	case reflect.Func:
		if y, ok := yieldFunc(t); ok {
			return y.In(y.NumIn() - 1), true
		}
	}
	return nil, false
}

// yieldFunc returns the yield parameter type of an iterator function
// func(yield func(...) bool).
func yieldFunc(t reflect.Type) (reflect.Type, bool) {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return nil, false
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.NumOut() != 1 || y.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	if y.NumIn() != 1 && y.NumIn() != 2 {
		return nil, false
	}
	return y, true
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// index selects element i of m's value. Values that are not enumerable are
// returned unchanged. Nil collections and out-of-range indices report false.
func index(m Member, i int) (Member, bool) {
	rv := indirect(reflect.ValueOf(m.Value))

	t := m.Type
	if rv.IsValid() && (t == nil || derefType(t).Kind() == reflect.Interface) {
		t = rv.Type()
	}
	et, ok := ElementType(t)
	if !ok {
		return m, true
	}
	if !rv.IsValid() {
		return Member{Type: et}, false
	}

	var ev reflect.Value
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
		if i >= rv.Len() {
			return Member{Type: et}, false
		}
		ev = rv.Index(i)
	case reflect.Map:
		k := reflect.New(rv.Type().Key()).Elem()
		if k.CanInt() {
			if k.OverflowInt(int64(i)) {
				return Member{Type: et}, false
			}
			k.SetInt(int64(i))
		} else {
			if k.OverflowUint(uint64(i)) {
				return Member{Type: et}, false
			}
			k.SetUint(uint64(i))
		}
		ev = rv.MapIndex(k)
	case reflect.Func:
		ev = nth(rv, i)
	}

	if !ev.IsValid() || !ev.CanInterface() {
		return Member{Type: et}, false
	}
	return Member{Value: ev.Interface(), Type: et}, true
}

// nth scans an iterator function for its i-th yielded element.
func nth(fn reflect.Value, i int) reflect.Value {
	var found reflect.Value
	n := 0
	if fn.Type().In(0).NumIn() == 2 {
		for _, v := range fn.Seq2() {
			if n == i {
				found = v
				break
			}
			n++
		}
		return found
	}
	for v := range fn.Seq() {
		if n == i {
			found = v
			break
		}
		n++
	}
	return found
}
