package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fluent/pkg/urlgen"
)

// Link renders an anchor whose href comes from a route or a URL.
type Link struct {
	Builder[*Link]
	text string
	nav  urlgen.Navigation
}

// Link creates an anchor with text.
// When the principal cannot write, the link is rendered without href and
// marked aria-disabled.
func (h *Helper) Link(text string) *Link {
	l := &Link{text: text}
	l.init(l, h, "link", text)
	return l
}

// Route targets a named route. Values fill route parameters; the rest become the query.
func (l *Link) Route(name string, values map[string]any) *Link {
	l.nav.RouteName = name
	return l.Values(values)
}

// URL targets a URL. "~/" prefixes resolve against the generator's base path.
func (l *Link) URL(u string) *Link {
	l.nav.URL = u
	return l
}

// Values adds route or query values.
func (l *Link) Values(values map[string]any) *Link {
	if len(values) == 0 {
		return l
	}
	if l.nav.Values == nil {
		l.nav.Values = make(map[string]any, len(values))
	}
	maps.Copy(l.nav.Values, values)
	return l
}

// NewWindow opens the link in a new browsing context.
func (l *Link) NewWindow() *Link {
	l.attrs.SetString("target", "_blank")
	l.attrs.SetString("rel", "noopener noreferrer")
	return l
}

// Render implements templ.Component.
func (l *Link) Render(ctx context.Context, w io.Writer) error {
	if err := l.Err(); err != nil {
		return err
	}
	ctx = l.logContext(ctx)

	a, read, write := l.prepare(ctx)
	if read && write {
		if !l.nav.IsZero() {
			href, err := l.h.URL(l.nav)
			if err != nil {
				l.h.logger.WarnContext(ctx, "generate link url",
					slog.String("route", l.nav.RouteName),
					slog.String("error", err.Error()),
				)
				return fmt.Errorf("link %q: %w", l.text, err)
			}
			setDefault(a, "href", href)
		}
	} else {
		a.Remove("href")
		a.SetString("aria-disabled", "true")
	}

	return writeElement(ctx, w, "a", a, templ.EscapeString(l.text))
}
