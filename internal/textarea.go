package internal

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// TextArea renders a textarea element bound to a model field.
type TextArea struct {
	Builder[*TextArea]
	value       any
	hasValue    bool
	format      string
	placeholder string
}

// TextArea creates a textarea for name. Value resolution matches TextBox.
// Fields the principal cannot read render empty; fields it cannot write are read-only.
func (h *Helper) TextArea(name string) *TextArea {
	t := &TextArea{}
	t.init(t, h, "textarea", name)
	t.fail(validateName(name))
	return t
}

// Value sets an explicit value, overriding the model.
func (t *TextArea) Value(v any) *TextArea {
	t.value = v
	t.hasValue = true
	return t
}

// Format sets the value format.
func (t *TextArea) Format(format string) *TextArea {
	t.format = format
	return t
}

// Placeholder sets the placeholder, overriding field metadata.
func (t *TextArea) Placeholder(s string) *TextArea {
	t.placeholder = s
	return t
}

// Rows sets the visible number of lines.
func (t *TextArea) Rows(n int) *TextArea {
	return t.Attr("rows", n)
}

// Cols sets the visible width in characters.
func (t *TextArea) Cols(n int) *TextArea {
	return t.Attr("cols", n)
}

// Required marks the textarea required.
func (t *TextArea) Required() *TextArea {
	t.attrs.SetString("required", "required")
	return t
}

// ReadOnly marks the textarea read-only.
func (t *TextArea) ReadOnly() *TextArea {
	t.attrs.SetString("readonly", "readonly")
	return t
}

// Render implements templ.Component.
func (t *TextArea) Render(ctx context.Context, w io.Writer) error {
	if err := t.Err(); err != nil {
		return err
	}
	ctx = t.logContext(ctx)

	f := t.h.field(ctx, t.name)
	a, read, write := t.prepare(ctx)
	t.h.nameAttrs(a, t.name)

	ph := t.placeholder
	if ph == "" {
		ph = t.h.T(f.descriptor.Placeholder, nil)
	}
	if ph != "" {
		setDefault(a, "placeholder", ph)
	}
	t.h.mergeValidation(a, f, textAreaType)
	if !write {
		a.SetString("readonly", "readonly")
	}

	var content string
	if read {
		content = t.text(f)
	}
	// A leading newline right after the start tag is dropped by parsers.
	return writeElement(ctx, w, "textarea", a, "\n"+templ.EscapeString(content))
}

func (t *TextArea) text(f field) string {
	switch {
	case f.hasAttempt:
		return f.attempted
	case t.hasValue:
		return formatValue(t.value, t.format)
	default:
		return formatValue(f.value(), t.format)
	}
}
