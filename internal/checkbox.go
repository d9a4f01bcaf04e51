package internal

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrymomot/fluent/pkg/attrs"
)

// CheckBox renders a checkbox input followed by a hidden "false" input, so an
// unchecked box still posts a value.
type CheckBox struct {
	Builder[*CheckBox]
	checked    *bool
	value      string
	skipHidden bool
}

// CheckBox creates a checkbox for name. It is checked when, in order: Checked
// was called, the attempted value parses as true, the model value is true.
// When the principal cannot write the field the checkbox is disabled.
func (h *Helper) CheckBox(name string) *CheckBox {
	c := &CheckBox{value: "true"}
	c.init(c, h, "checkbox", name)
	c.fail(validateName(name))
	return c
}

// Checked sets the checked state explicitly.
func (c *CheckBox) Checked(checked bool) *CheckBox {
	c.checked = &checked
	return c
}

// Value sets the posted value. Default: "true".
// With a custom value the box is checked when the model value formats to it.
func (c *CheckBox) Value(v string) *CheckBox {
	c.value = v
	return c
}

// WithoutHidden omits the trailing hidden input.
func (c *CheckBox) WithoutHidden() *CheckBox {
	c.skipHidden = true
	return c
}

// Render implements templ.Component.
func (c *CheckBox) Render(ctx context.Context, w io.Writer) error {
	if err := c.Err(); err != nil {
		return err
	}
	ctx = c.logContext(ctx)

	f := c.h.field(ctx, c.name)
	a, read, write := c.prepare(ctx)

	a.SetString("type", string(InputCheckbox))
	c.h.nameAttrs(a, c.name)
	setDefault(a, "value", c.value)
	if read && c.isChecked(f) {
		a.SetString("checked", "checked")
	}
	c.h.mergeValidation(a, f, InputCheckbox)
	if !write {
		a.SetString("disabled", "disabled")
	}

	if err := writeElement(ctx, w, "input", a, ""); err != nil {
		return err
	}
	if c.skipHidden {
		return nil
	}

	hidden := attrs.New()
	hidden.SetString("type", string(InputHidden))
	hidden.SetString("name", c.name)
	hidden.SetString("value", "false")
	return writeElement(ctx, w, "input", hidden, "")
}

func (c *CheckBox) isChecked(f field) bool {
	if c.checked != nil {
		return *c.checked
	}
	if f.hasAttempt {
		// Posted values look like "true,false" when both inputs are sent.
		first, _, _ := strings.Cut(f.attempted, ",")
		return c.matches(first)
	}

	switch v := f.value().(type) {
	case nil:
		return false
	case bool:
		return v && c.value == "true"
	case *bool:
		return v != nil && *v && c.value == "true"
	default:
		return c.matches(formatValue(v, ""))
	}
}

func (c *CheckBox) matches(s string) bool {
	if c.value == "true" {
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		return err == nil && b
	}
	return s == c.value
}
