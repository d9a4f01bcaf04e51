package attrs

import (
	"slices"
	"strings"
)

// AddClass appends class names to the class attribute, skipping blanks and duplicates.
func (s *Store) AddClass(names ...string) {
	current := strings.Fields(s.Value("class"))
	for _, name := range names {
		for _, n := range strings.Fields(name) {
			if !slices.Contains(current, n) {
				current = append(current, n)
			}
		}
	}
	if len(current) == 0 {
		return
	}
	s.SetString("class", strings.Join(current, " "))
}

// RemoveClass removes class names from the class attribute.
// The attribute is dropped when no classes remain.
func (s *Store) RemoveClass(names ...string) {
	if !s.Has("class") {
		return
	}
	current := slices.DeleteFunc(strings.Fields(s.Value("class")), func(c string) bool {
		return slices.Contains(names, c)
	})
	if len(current) == 0 {
		s.Remove("class")
		return
	}
	s.SetString("class", strings.Join(current, " "))
}

// HasClass reports whether the class attribute contains name.
func (s *Store) HasClass(name string) bool {
	return slices.Contains(strings.Fields(s.Value("class")), name)
}
