package internal

import (
	"context"
	"io"
)

// RadioButton renders a radio input for one value of a model field.
type RadioButton struct {
	Builder[*RadioButton]
	value   any
	format  string
	checked *bool
}

// RadioButton creates a radio input for name posting value.
// It is checked when the attempted value or the model value formats to the
// same string as value. The generated id is the sanitized "name_value".
func (h *Helper) RadioButton(name string, value any) *RadioButton {
	r := &RadioButton{value: value}
	r.init(r, h, "radio", name)
	r.fail(validateName(name))
	return r
}

// Checked sets the checked state explicitly.
func (r *RadioButton) Checked(checked bool) *RadioButton {
	r.checked = &checked
	return r
}

// Format sets the format used for the posted value and for comparison.
func (r *RadioButton) Format(format string) *RadioButton {
	r.format = format
	return r
}

// Render implements templ.Component.
func (r *RadioButton) Render(ctx context.Context, w io.Writer) error {
	if err := r.Err(); err != nil {
		return err
	}
	ctx = r.logContext(ctx)

	f := r.h.field(ctx, r.name)
	a, read, write := r.prepare(ctx)

	value := formatValue(r.value, r.format)
	a.SetString("type", string(InputRadio))
	setDefault(a, "name", r.name)
	if id := r.h.ID(r.name + "_" + value); id != "" {
		setDefault(a, "id", id)
	}
	setDefault(a, "value", value)
	if read && r.isChecked(f, value) {
		a.SetString("checked", "checked")
	}
	r.h.mergeValidation(a, f, InputRadio)
	if !write {
		a.SetString("disabled", "disabled")
	}

	return writeElement(ctx, w, "input", a, "")
}

func (r *RadioButton) isChecked(f field, value string) bool {
	if r.checked != nil {
		return *r.checked
	}
	if f.hasAttempt {
		return f.attempted == value
	}
	v := f.value()
	if v == nil {
		return false
	}
	return formatValue(v, r.format) == value
}
