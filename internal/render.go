package internal

import (
	"context"
	"io"
	"regexp"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fluent/pkg/attrs"
	"github.com/dmitrymomot/fluent/pkg/attrvalue"
	"github.com/dmitrymomot/fluent/pkg/exprpath"
	"github.com/dmitrymomot/fluent/pkg/metadata"
)

// InputValidationErrorClass marks inputs whose field has validation errors.
const InputValidationErrorClass = "input-validation-error"

var tagName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true,
	"img": true, "input": true, "link": true, "meta": true, "source": true,
	"track": true, "wbr": true,
}

func writeOpen(ctx context.Context, w io.Writer, tag string, a *attrs.Store) error {
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, a); err != nil {
		return err
	}
	_, err := io.WriteString(w, ">")
	return err
}

func writeClose(w io.Writer, tag string) error {
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// writeElement writes tag with trusted inner HTML.
func writeElement(ctx context.Context, w io.Writer, tag string, a *attrs.Store, inner string) error {
	if err := writeOpen(ctx, w, tag, a); err != nil {
		return err
	}
	if voidElements[tag] {
		return nil
	}
	if inner != "" {
		if _, err := io.WriteString(w, inner); err != nil {
			return err
		}
	}
	return writeClose(w, tag)
}

// setDefault sets name only when it is not already present.
func setDefault(a *attrs.Store, name, value string) {
	if !a.Has(name) {
		a.SetString(name, value)
	}
}

// field is the model side of a named control at render time.
type field struct {
	binding    exprpath.Binding
	descriptor metadata.FieldDescriptor
	attempted  string
	attempts   []string
	hasAttempt bool
	hasErrors  bool
}

func (h *Helper) field(ctx context.Context, name string) field {
	b := h.Bind(ctx, name)
	f := field{
		binding:    b,
		descriptor: h.describe(b),
		hasErrors:  h.state.HasErrors(name),
	}
	f.attempted, f.hasAttempt = h.state.AttemptedValue(name)
	f.attempts, _ = h.state.AttemptedValues(name)
	return f
}

// value returns the model value, nil when the path did not resolve.
func (f field) value() any {
	if !f.binding.Resolved {
		return nil
	}
	return f.binding.Value
}

// rangeInputTypes accept min and max.
var rangeInputTypes = map[InputType]bool{
	InputNumber:        true,
	InputRange:         true,
	InputDate:          true,
	InputDateTimeLocal: true,
	InputMonth:         true,
	InputTime:          true,
	InputWeek:          true,
}

// lengthInputTypes accept maxlength and minlength.
var lengthInputTypes = map[InputType]bool{
	InputText:     true,
	InputEmail:    true,
	InputPassword: true,
	InputSearch:   true,
	InputTel:      true,
	InputURL:      true,
	textAreaType:  true,
}

// mergeValidation adds the error class and, when enabled, HTML5 validation
// attributes from metadata. Attributes already present are kept.
func (h *Helper) mergeValidation(a *attrs.Store, f field, t InputType) {
	if f.hasErrors {
		a.AddClass(InputValidationErrorClass)
	}
	if !h.ensureValidations {
		return
	}

	d := f.descriptor
	if d.Required && t != InputCheckbox && t != InputHidden {
		setDefault(a, "required", "required")
	}
	if lengthInputTypes[t] {
		if d.MaxLength > 0 {
			setDefault(a, "maxlength", strconv.Itoa(d.MaxLength))
		}
		if d.MinLength > 0 {
			setDefault(a, "minlength", strconv.Itoa(d.MinLength))
		}
	}
	if rangeInputTypes[t] {
		if d.Min != "" {
			setDefault(a, "min", d.Min)
		}
		if d.Max != "" {
			setDefault(a, "max", d.Max)
		}
	}
}

// nameAttrs applies name and generated id.
func (h *Helper) nameAttrs(a *attrs.Store, name string) {
	setDefault(a, "name", name)
	if id := h.ID(name); id != "" {
		setDefault(a, "id", id)
	}
}

func formatValue(v any, format string) string {
	if attrvalue.IsNil(v) {
		return ""
	}
	return attrvalue.Format(v, format)
}
