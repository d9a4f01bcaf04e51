package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fluent"
)

// Topic is a contact topic shown in the drop-down.
type Topic struct {
	Name  string
	Group string
	ID    int
}

// ContactForm renders the contact form bound to the helper's model.
func ContactForm(h *fluent.Helper, topics []Topic) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<form method="post">`); err != nil {
			return err
		}

		rows := []templ.Component{
			row(h.Label("Name"), h.TextBox("Name").Class("input"), h.ValidationMessage("Name")),
			row(h.Label("Email"), h.TextBox("Email").Class("input"), h.ValidationMessage("Email")),
			row(
				h.Label("TopicID"),
				h.DropDownList("TopicID").
					Items(topics).
					DataValueField("ID").
					DataTextField("Name").
					DataGroupField("Group").
					Placeholder("Choose a topic"),
				h.ValidationMessage("TopicID").IconOnly("icon icon-warning"),
			),
			row(h.Label("Message"), h.TextArea("Message").Rows(5), h.ValidationMessage("Message")),
			row(h.CheckBox("Subscribe"), h.Label("Subscribe")),
			h.Submit("Send").Class("button", "is-primary"),
		}
		for _, c := range rows {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</form>`)
		return err
	})
}

// Page wraps content in a minimal HTML document.
func Page(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html><head><meta charset="utf-8"><title>`+templ.EscapeString(title)+`</title></head><body>`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func row(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="field">`); err != nil {
			return err
		}
		for _, c := range children {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
