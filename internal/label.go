package internal

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fluent/pkg/metadata"
)

// Label renders a label element for a model field.
type Label struct {
	Builder[*Label]
	text string
}

// Label creates a label for name. Its text is the field's display name,
// falling back to the property name and then to the last segment of name.
// The for attribute matches the id inputs generate for the same name.
func (h *Helper) Label(name string) *Label {
	l := &Label{}
	l.init(l, h, "label", name)
	l.fail(validateName(name))
	return l
}

// Text sets the label text, overriding metadata.
func (l *Label) Text(text string) *Label {
	l.text = text
	return l
}

// For sets the id of the labelled element.
func (l *Label) For(id string) *Label {
	l.attrs.SetString("for", id)
	return l
}

// Render implements templ.Component.
func (l *Label) Render(ctx context.Context, w io.Writer) error {
	if err := l.Err(); err != nil {
		return err
	}
	ctx = l.logContext(ctx)

	a, _, _ := l.prepare(ctx)
	if id := l.h.ID(l.name); id != "" {
		setDefault(a, "for", id)
	}

	text := l.text
	if text == "" {
		d := l.h.Describe(ctx, l.name)
		text = l.h.T(metadata.Label(d, l.name), nil)
		if d.Description != "" {
			setDefault(a, "title", l.h.T(d.Description, nil))
		}
	}

	return writeElement(ctx, w, "label", a, templ.EscapeString(text))
}
