package internal

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/fluent/pkg/sanitizer"
)

type contentKind int

const (
	contentText contentKind = iota
	contentHTML
	contentMarkdown
	contentUnsafe
)

// Element renders an arbitrary element with text, sanitized HTML or Markdown content.
type Element struct {
	Builder[*Element]
	tag     string
	content string
	kind    contentKind
}

// Element creates an element with the given tag.
// When the principal cannot read it, the element is rendered empty.
func (h *Helper) Element(tag string) *Element {
	tag = strings.ToLower(strings.TrimSpace(tag))
	e := &Element{tag: tag}
	e.init(e, h, "element", tag)
	if !tagName.MatchString(tag) {
		e.fail(fmt.Errorf("%w: %q", ErrUnknownElement, tag))
	}
	return e
}

// Span creates a span element.
func (h *Helper) Span() *Element {
	return h.Element("span")
}

// Text sets escaped text content.
func (e *Element) Text(s string) *Element {
	e.content, e.kind = s, contentText
	return e
}

// InnerHTML sets HTML content, sanitized with the helper's HTML policy.
func (e *Element) InnerHTML(s string) *Element {
	e.content, e.kind = s, contentHTML
	return e
}

// Markdown sets Markdown content, rendered and sanitized at render time.
func (e *Element) Markdown(src string) *Element {
	e.content, e.kind = src, contentMarkdown
	return e
}

// UnsafeHTML sets content that is written without sanitizing.
// Use only for markup the application produced itself.
func (e *Element) UnsafeHTML(s string) *Element {
	e.content, e.kind = s, contentUnsafe
	return e
}

// Render implements templ.Component.
func (e *Element) Render(ctx context.Context, w io.Writer) error {
	if err := e.Err(); err != nil {
		return err
	}
	ctx = e.logContext(ctx)

	a, read, _ := e.prepare(ctx)

	var inner string
	if read {
		var err error
		if inner, err = e.inner(); err != nil {
			return err
		}
	}
	return writeElement(ctx, w, e.tag, a, inner)
}

func (e *Element) inner() (string, error) {
	switch e.kind {
	case contentHTML:
		if e.h.htmlPolicy != nil {
			return sanitizer.Custom(e.content, e.h.htmlPolicy), nil
		}
		return sanitizer.HTML(e.content), nil
	case contentMarkdown:
		return sanitizer.MarkdownCustom(e.content, e.h.htmlPolicy)
	case contentUnsafe:
		return e.content, nil
	default:
		return templ.EscapeString(e.content), nil
	}
}
