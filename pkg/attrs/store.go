package attrs

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fluent/pkg/attrvalue"
	"github.com/dmitrymomot/fluent/pkg/style"
)

// Pair is a single attribute name and its serialized value.
type Pair struct {
	Name  string
	Value string
}

// Store is an ordered, case-insensitive attribute collection.
// The zero value is ready to use.
type Store struct {
	pairs []Pair
	index map[string]int
}

var _ templ.Attributer = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{}
}

func key(name string) string {
	return strings.ToLower(name)
}

// Set stores value under name.
// An empty name is ignored. A nil value removes the attribute.
// Other values are serialized with attrvalue.Serialize; on failure the store is unchanged.
func (s *Store) Set(name string, value any) error {
	if name == "" {
		return nil
	}
	str, ok, err := attrvalue.Serialize(value)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrSetAttribute, name, err)
	}
	if !ok {
		s.Remove(name)
		return nil
	}
	s.SetString(name, str)
	return nil
}

// SetString stores value under name without serialization.
func (s *Store) SetString(name, value string) {
	if name == "" {
		return
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	k := key(name)
	if i, ok := s.index[k]; ok {
		s.pairs[i].Value = value
		return
	}
	s.index[k] = len(s.pairs)
	s.pairs = append(s.pairs, Pair{Name: name, Value: value})
}

// Get returns the value stored under name.
func (s *Store) Get(name string) (string, bool) {
	i, ok := s.index[key(name)]
	if !ok {
		return "", false
	}
	return s.pairs[i].Value, true
}

// Value returns the value stored under name or the empty string.
func (s *Store) Value(name string) string {
	v, _ := s.Get(name)
	return v
}

// Has reports whether name is present.
func (s *Store) Has(name string) bool {
	_, ok := s.index[key(name)]
	return ok
}

// Remove deletes name. Removing an absent name is a no-op.
func (s *Store) Remove(name string) {
	k := key(name)
	i, ok := s.index[k]
	if !ok {
		return
	}
	s.pairs = append(s.pairs[:i], s.pairs[i+1:]...)
	delete(s.index, k)
	for j := i; j < len(s.pairs); j++ {
		s.index[key(s.pairs[j].Name)] = j
	}
}

// Len returns the number of attributes.
func (s *Store) Len() int {
	return len(s.pairs)
}

// Keys returns attribute names in insertion order.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.pairs))
	for i, p := range s.pairs {
		keys[i] = p.Name
	}
	return keys
}

// All iterates attributes in insertion order.
func (s *Store) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range s.pairs {
			if !yield(p.Name, p.Value) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	c := &Store{
		pairs: make([]Pair, len(s.pairs)),
		index: make(map[string]int, len(s.pairs)),
	}
	copy(c.pairs, s.pairs)
	maps.Copy(c.index, s.index)
	return c
}

// Map returns the attributes as a plain map.
func (s *Store) Map() map[string]string {
	m := make(map[string]string, len(s.pairs))
	for _, p := range s.pairs {
		m[p.Name] = p.Value
	}
	return m
}

// Attributes returns the attributes as templ.Attributes for spreading in templ markup.
func (s *Store) Attributes() templ.Attributes {
	a := make(templ.Attributes, len(s.pairs))
	for _, p := range s.pairs {
		a[p.Name] = p.Value
	}
	return a
}

// Items implements templ.Attributer, preserving insertion order.
func (s *Store) Items() []templ.KeyValue[string, any] {
	items := make(templ.OrderedAttributes, len(s.pairs))
	for i, p := range s.pairs {
		items[i] = templ.KV[string, any](p.Name, p.Value)
	}
	return items
}

// Data sets a data-* attribute. The key is converted with DataName.
func (s *Store) Data(key string, value any) error {
	return s.Set(DataName(key), value)
}

// Style merges declarations into the style attribute and writes the result
// back, even when every declaration was removed and the result is empty.
func (s *Store) Style(decls ...style.Declaration) {
	s.SetString("style", style.Merge(s.Value("style"), decls...))
}

// DataName converts key to a data-* attribute name.
// Each upper-case letter becomes a hyphen followed by its lower-case form:
// "userId" becomes "data-user-id". A blank key returns the empty string.
func DataName(key string) string {
	if strings.TrimSpace(key) == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("data-")
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
