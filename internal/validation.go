package internal

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fluent/pkg/attrs"
)

// Validation message classes.
const (
	FieldValidationErrorClass = "field-validation-error"
	FieldValidationValidClass = "field-validation-valid"
)

// ValidationMessage renders the first validation error of a field.
type ValidationMessage struct {
	Builder[*ValidationMessage]
	tag       string
	message   string
	showTitle bool
	icon      string
}

// ValidationMessage creates a message element for name.
//
// A field with errors renders its first message with the field-validation-error
// class. A valid field renders an empty element with field-validation-valid,
// or nothing when client validation is disabled.
func (h *Helper) ValidationMessage(name string) *ValidationMessage {
	v := &ValidationMessage{tag: "span"}
	v.init(v, h, "validation", name)
	v.fail(validateName(name))
	return v
}

// Message replaces the error text. It is shown only when the field has errors.
func (v *ValidationMessage) Message(text string) *ValidationMessage {
	v.message = text
	return v
}

// Tag sets the element tag. Default: span.
func (v *ValidationMessage) Tag(tag string) *ValidationMessage {
	if tag = strings.ToLower(strings.TrimSpace(tag)); tagName.MatchString(tag) {
		v.tag = tag
	}
	return v
}

// ShowTitle copies the message into the title attribute.
func (v *ValidationMessage) ShowTitle() *ValidationMessage {
	v.showTitle = true
	return v
}

// IconOnly renders an icon with the given classes instead of the text.
// The message moves to the title attribute.
func (v *ValidationMessage) IconOnly(classes string) *ValidationMessage {
	v.icon = classes
	return v
}

// Render implements templ.Component.
func (v *ValidationMessage) Render(ctx context.Context, w io.Writer) error {
	if err := v.Err(); err != nil {
		return err
	}
	ctx = v.logContext(ctx)

	msg, invalid := v.h.state.FirstError(v.name)
	if !invalid && !v.h.clientValidation {
		return nil
	}
	if invalid && v.message != "" {
		msg = v.message
	}
	msg = v.h.T(msg, nil)

	a, read, _ := v.prepare(ctx)
	if invalid {
		a.AddClass(FieldValidationErrorClass)
	} else {
		a.AddClass(FieldValidationValidClass)
	}
	if v.h.clientValidation {
		setDefault(a, "data-valmsg-for", v.name)
		setDefault(a, "data-valmsg-replace", strconv.FormatBool(v.icon == ""))
	}
	if !read {
		return writeElement(ctx, w, v.tag, a, "")
	}
	if msg != "" && (v.showTitle || v.icon != "") {
		setDefault(a, "title", msg)
	}

	if v.icon == "" {
		return writeElement(ctx, w, v.tag, a, templ.EscapeString(msg))
	}
	if !invalid {
		return writeElement(ctx, w, v.tag, a, "")
	}

	var inner strings.Builder
	icon := attrs.New()
	icon.SetString("class", v.icon)
	if err := writeElement(ctx, &inner, "i", icon, ""); err != nil {
		return err
	}
	return writeElement(ctx, w, v.tag, a, inner.String())
}
