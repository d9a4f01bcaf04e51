package internal

import (
	"context"
	"errors"
	"html/template"
	"log/slog"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fluent/pkg/attrs"
	"github.com/dmitrymomot/fluent/pkg/htmx"
	"github.com/dmitrymomot/fluent/pkg/logger"
	"github.com/dmitrymomot/fluent/pkg/security"
	"github.com/dmitrymomot/fluent/pkg/style"
)

// Builder holds the state shared by all controls: attributes, the security
// policy and errors collected while building. Controls embed it and pass
// themselves as B so chained calls keep the concrete control type.
type Builder[B templ.Component] struct {
	self   B
	h      *Helper
	attrs  *attrs.Store
	policy *security.Policy
	errs   []error
	kind   string
	name   string
}

func (b *Builder[B]) init(self B, h *Helper, kind, name string) {
	if h == nil {
		h = New()
	}
	b.self = self
	b.h = h
	b.kind = kind
	b.name = name
	b.attrs = attrs.New()
}

func (b *Builder[B]) fail(err error) {
	if err != nil {
		b.errs = append(b.errs, err)
	}
}

// ControlName returns the name the control was created with.
func (b *Builder[B]) ControlName() string {
	return b.name
}

// Err returns the errors collected while building, joined.
func (b *Builder[B]) Err() error {
	return errors.Join(b.errs...)
}

// ID sets the id attribute.
func (b *Builder[B]) ID(id string) B {
	b.attrs.SetString("id", id)
	return b.self
}

// Attr sets an attribute. A nil value removes it.
func (b *Builder[B]) Attr(name string, value any) B {
	b.fail(b.attrs.Set(name, value))
	return b.self
}

// Attrs sets attributes from a bag: templ.Attributes, a map, a struct or []attrs.Pair.
func (b *Builder[B]) Attrs(bag any) B {
	b.fail(b.attrs.SetMany(bag))
	return b.self
}

// Data sets a data-* attribute.
func (b *Builder[B]) Data(key string, value any) B {
	b.fail(b.attrs.Data(key, value))
	return b.self
}

// Title sets the title attribute.
func (b *Builder[B]) Title(title string) B {
	b.attrs.SetString("title", title)
	return b.self
}

// Class adds CSS classes.
func (b *Builder[B]) Class(names ...string) B {
	b.attrs.AddClass(names...)
	return b.self
}

// RemoveClass removes CSS classes.
func (b *Builder[B]) RemoveClass(names ...string) B {
	b.attrs.RemoveClass(names...)
	return b.self
}

// Style sets one style property. A nil value removes it.
func (b *Builder[B]) Style(property string, value any) B {
	b.attrs.Style(style.Set(property, value))
	return b.self
}

// Styles merges several style declarations.
func (b *Builder[B]) Styles(decls ...style.Declaration) B {
	b.attrs.Style(decls...)
	return b.self
}

// Hx adds htmx attributes.
func (b *Builder[B]) Hx(attributes ...htmx.Attribute) B {
	for _, a := range attributes {
		b.fail(b.attrs.Set(a.Name, a.Value))
	}
	return b.self
}

// Secure sets the security policy checked at render time.
func (b *Builder[B]) Secure(p *security.Policy) B {
	b.policy = p
	return b.self
}

// SecureRoles edits the control's security policy, creating it when needed.
//
// Example:
//
//	h.TextBox("Salary").SecureRoles(func(p *security.Policy) {
//	    p.Read("hr", "admin").Write("admin")
//	})
func (b *Builder[B]) SecureRoles(fn func(p *security.Policy)) B {
	if b.policy == nil {
		b.policy = security.NewPolicy()
	}
	if fn != nil {
		fn(b.policy)
	}
	return b.self
}

// Policy returns the security policy, nil when the control is not secured.
func (b *Builder[B]) Policy() *security.Policy {
	return b.policy
}

// String renders the control with a background context.
// Render errors are logged and yield an empty string.
func (b *Builder[B]) String() string {
	ctx := context.Background()
	s, err := templ.ToGoHTML(ctx, b.self)
	if err != nil {
		b.h.logger.ErrorContext(b.logContext(ctx), "render control", slog.String("error", err.Error()))
		return ""
	}
	return string(s)
}

// HTML renders the control for use with html/template.
func (b *Builder[B]) HTML(ctx context.Context) (template.HTML, error) {
	return templ.ToGoHTML(ctx, b.self)
}

func (b *Builder[B]) logContext(ctx context.Context) context.Context {
	return logger.WithControl(ctx, b.kind, b.name)
}

// access reports whether the current principal may read and write the control.
func (b *Builder[B]) access(ctx context.Context) (read, write bool) {
	if b.policy.IsZero() {
		return true, true
	}
	p := b.h.Principal(ctx)
	return b.policy.CanRead(p), b.policy.CanWrite(p)
}

// prepare returns a copy of the attributes with the security class applied.
// The builder itself is never modified so a control can be rendered repeatedly.
func (b *Builder[B]) prepare(ctx context.Context) (a *attrs.Store, read, write bool) {
	read, write = b.access(ctx)
	a = b.attrs.Clone()
	if b.policy != nil {
		a.AddClass(b.policy.Class(read && write))
	}
	if !read || !write {
		b.h.logger.DebugContext(b.logContext(ctx), "access restricted",
			slog.Bool("read", read),
			slog.Bool("write", write),
		)
	}
	return a, read, write
}
