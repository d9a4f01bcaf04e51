package internal

import (
	"context"
	"io"
	"time"

	"github.com/dmitrymomot/fluent/pkg/attrvalue"
)

// InputType is the type attribute of an input element.
type InputType string

const (
	InputText          InputType = "text"
	InputPassword      InputType = "password"
	InputHidden        InputType = "hidden"
	InputEmail         InputType = "email"
	InputNumber        InputType = "number"
	InputRange         InputType = "range"
	InputSearch        InputType = "search"
	InputTel           InputType = "tel"
	InputURL           InputType = "url"
	InputDate          InputType = "date"
	InputDateTimeLocal InputType = "datetime-local"
	InputMonth         InputType = "month"
	InputTime          InputType = "time"
	InputWeek          InputType = "week"
	InputColor         InputType = "color"
	InputCheckbox      InputType = "checkbox"
	InputRadio         InputType = "radio"

	// textAreaType and selectType only select validation attributes.
	textAreaType InputType = "textarea"
	selectType   InputType = "select"
)

// textInputTypes can be inferred from a field's datatype hint.
var textInputTypes = map[InputType]bool{
	InputText: true, InputPassword: true, InputHidden: true, InputEmail: true,
	InputNumber: true, InputRange: true, InputSearch: true, InputTel: true,
	InputURL: true, InputDate: true, InputDateTimeLocal: true, InputMonth: true,
	InputTime: true, InputWeek: true, InputColor: true,
}

// timeLayouts are the value layouts browsers expect for date and time inputs.
var timeLayouts = map[InputType]string{
	InputDate:          time.DateOnly,
	InputDateTimeLocal: "2006-01-02T15:04",
	InputMonth:         "2006-01",
	InputTime:          "15:04",
}

// TextBox renders an input element bound to a model field.
type TextBox struct {
	Builder[*TextBox]
	inputType   InputType
	value       any
	hasValue    bool
	format      string
	placeholder string
}

// TextBox creates a text input for name.
//
// The value comes from, in order: the attempted value in model state, the
// explicit Value, the model. The input type comes from Type, then the field's
// datatype hint, then defaults to text.
//
// When the principal cannot read the field the input is rendered as an empty
// password input; when it cannot write, the input is read-only.
func (h *Helper) TextBox(name string) *TextBox {
	t := &TextBox{}
	t.init(t, h, "input", name)
	t.fail(validateName(name))
	return t
}

// Password creates a password input. Model values are never rendered into it.
func (h *Helper) Password(name string) *TextBox {
	return h.TextBox(name).Type(InputPassword)
}

// Hidden creates a hidden input.
func (h *Helper) Hidden(name string) *TextBox {
	return h.TextBox(name).Type(InputHidden)
}

// Type sets the input type.
func (t *TextBox) Type(it InputType) *TextBox {
	t.inputType = it
	return t
}

// Value sets an explicit value, overriding the model.
func (t *TextBox) Value(v any) *TextBox {
	t.value = v
	t.hasValue = true
	return t
}

// Format sets the value format: a time layout for time values, an fmt verb string otherwise.
func (t *TextBox) Format(format string) *TextBox {
	t.format = format
	return t
}

// Placeholder sets the placeholder, overriding field metadata.
func (t *TextBox) Placeholder(s string) *TextBox {
	t.placeholder = s
	return t
}

// Required marks the input required.
func (t *TextBox) Required() *TextBox {
	t.attrs.SetString("required", "required")
	return t
}

// ReadOnly marks the input read-only.
func (t *TextBox) ReadOnly() *TextBox {
	t.attrs.SetString("readonly", "readonly")
	return t
}

// Disabled disables the input.
func (t *TextBox) Disabled() *TextBox {
	t.attrs.SetString("disabled", "disabled")
	return t
}

// MaxLength sets the maxlength attribute.
func (t *TextBox) MaxLength(n int) *TextBox {
	return t.Attr("maxlength", n)
}

// Min sets the min attribute.
func (t *TextBox) Min(v any) *TextBox {
	return t.Attr("min", v)
}

// Max sets the max attribute.
func (t *TextBox) Max(v any) *TextBox {
	return t.Attr("max", v)
}

// Step sets the step attribute.
func (t *TextBox) Step(v any) *TextBox {
	return t.Attr("step", v)
}

// Render implements templ.Component.
func (t *TextBox) Render(ctx context.Context, w io.Writer) error {
	if err := t.Err(); err != nil {
		return err
	}
	ctx = t.logContext(ctx)

	f := t.h.field(ctx, t.name)
	a, read, write := t.prepare(ctx)

	typ := t.resolveType(f)
	if read {
		setDefault(a, "type", string(typ))
	} else {
		typ = InputPassword
		a.SetString("type", string(typ))
		a.Remove("value")
	}
	t.h.nameAttrs(a, t.name)

	if read {
		if v, ok := t.valueString(f, typ); ok {
			setDefault(a, "value", v)
		}
	}
	if typ != InputHidden {
		if ph := t.placeholderText(f); ph != "" {
			setDefault(a, "placeholder", ph)
		}
		t.h.mergeValidation(a, f, typ)
	}
	if !write {
		a.SetString("readonly", "readonly")
	}

	return writeElement(ctx, w, "input", a, "")
}

func (t *TextBox) resolveType(f field) InputType {
	if t.inputType != "" {
		return t.inputType
	}
	if it := InputType(f.descriptor.DataType); textInputTypes[it] {
		return it
	}
	return InputText
}

func (t *TextBox) valueString(f field, typ InputType) (string, bool) {
	if typ == InputPassword {
		if t.hasValue {
			return formatValue(t.value, t.format), true
		}
		return "", false
	}
	if f.hasAttempt {
		return f.attempted, true
	}

	v := f.value()
	if t.hasValue {
		v = t.value
	}
	if attrvalue.IsNil(v) {
		return "", false
	}
	return formatValue(v, t.formatFor(v, typ)), true
}

func (t *TextBox) formatFor(v any, typ InputType) string {
	if t.format != "" {
		return t.format
	}
	switch v.(type) {
	case time.Time, *time.Time:
		return timeLayouts[typ]
	}
	return ""
}

func (t *TextBox) placeholderText(f field) string {
	if t.placeholder != "" {
		return t.placeholder
	}
	return t.h.T(f.descriptor.Placeholder, nil)
}
