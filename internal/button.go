package internal

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fluent/pkg/attrs"
)

// ButtonType is the type attribute of a button element.
type ButtonType string

const (
	ButtonButton ButtonType = "button"
	ButtonSubmit ButtonType = "submit"
	ButtonReset  ButtonType = "reset"
)

// Button renders a button element.
type Button struct {
	Builder[*Button]
	text  string
	icon  string
	btype ButtonType
}

// Button creates a button of type "button" labelled text.
// When the principal cannot write, the button is disabled.
func (h *Helper) Button(text string) *Button {
	b := &Button{text: text, btype: ButtonButton}
	b.init(b, h, "button", text)
	return b
}

// Submit creates a submit button.
func (h *Helper) Submit(text string) *Button {
	return h.Button(text).Type(ButtonSubmit)
}

// Type sets the button type.
func (b *Button) Type(t ButtonType) *Button {
	b.btype = t
	return b
}

// Name sets the name posted with the button's value.
func (b *Button) Name(name string) *Button {
	b.attrs.SetString("name", name)
	return b
}

// Value sets the posted value.
func (b *Button) Value(v any) *Button {
	return b.Attr("value", v)
}

// Icon renders an <i> element with the given classes before the text.
func (b *Button) Icon(classes string) *Button {
	b.icon = classes
	return b
}

// Disabled disables the button.
func (b *Button) Disabled() *Button {
	b.attrs.SetString("disabled", "disabled")
	return b
}

// Render implements templ.Component.
func (b *Button) Render(ctx context.Context, w io.Writer) error {
	if err := b.Err(); err != nil {
		return err
	}
	ctx = b.logContext(ctx)

	a, read, write := b.prepare(ctx)
	setDefault(a, "type", string(b.btype))
	if !read || !write {
		a.SetString("disabled", "disabled")
	}

	var inner strings.Builder
	if b.icon != "" {
		icon := attrs.New()
		icon.SetString("class", b.icon)
		if err := writeElement(ctx, &inner, "i", icon, ""); err != nil {
			return err
		}
		if b.text != "" {
			inner.WriteByte(' ')
		}
	}
	inner.WriteString(templ.EscapeString(b.text))

	return writeElement(ctx, w, "button", a, inner.String())
}
