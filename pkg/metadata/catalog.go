package metadata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Entry is the catalog text for one field.
type Entry struct {
	Display     string `yaml:"display"`
	Description string `yaml:"description"`
	Placeholder string `yaml:"placeholder"`
}

// Catalog holds display text keyed by type name and field name.
// It is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]map[string]Entry
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]map[string]Entry)}
}

// Set stores the entry for typeName.field.
func (c *Catalog) Set(typeName, field string, e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fields, ok := c.entries[typeName]
	if !ok {
		fields = make(map[string]Entry)
		c.entries[typeName] = fields
	}
	fields[field] = e
}

// Lookup returns the entry for typeName.field.
func (c *Catalog) Lookup(typeName, field string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[typeName][field]
	return e, ok
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, fields := range c.entries {
		n += len(fields)
	}
	return n
}

// LoadYAML merges a YAML document of the form
//
//	TypeName:
//	  FieldName:
//	    display: ...
//
// into the catalog. Later documents override earlier entries.
func (c *Catalog) LoadYAML(data []byte) error {
	var doc map[string]map[string]Entry
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	for typeName, fields := range doc {
		for field, e := range fields {
			c.Set(typeName, field, e)
		}
	}
	return nil
}

// LoadCatalog reads every .yaml and .yml file in fsys into a new catalog,
// in lexical path order.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	c := NewCatalog()
	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(path.Ext(filePath))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}
		if err := c.LoadYAML(data); err != nil {
			return fmt.Errorf("loading %q: %w", filePath, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CatalogProvider overlays catalog text on descriptors from Next.
type CatalogProvider struct {
	Catalog *Catalog
	Next    Provider
}

// Describe implements Provider.
func (p CatalogProvider) Describe(t Target) FieldDescriptor {
	var d FieldDescriptor
	if p.Next != nil {
		d = p.Next.Describe(t)
	} else {
		d = FieldDescriptor{PropertyName: t.Name, DeclaredType: t.Type}
	}
	if p.Catalog == nil || t.Owner == nil {
		return d
	}

	field := t.Name
	if t.Field != nil {
		field = t.Field.Name
	}
	e, ok := p.Catalog.Lookup(t.Owner.Name(), field)
	if !ok {
		return d
	}
	if e.Display != "" {
		d.DisplayName = e.Display
	}
	if e.Description != "" {
		d.Description = e.Description
	}
	if e.Placeholder != "" {
		d.Placeholder = e.Placeholder
	}
	return d
}
