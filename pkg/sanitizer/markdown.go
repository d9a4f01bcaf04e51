package sanitizer

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Markdown renders src to HTML and sanitizes the result with the HTML policy.
func Markdown(src string) (string, error) {
	return MarkdownCustom(src, nil)
}

// MarkdownCustom renders src to HTML and sanitizes it with policy,
// or with the HTML policy when policy is nil.
func MarkdownCustom(src string, policy *bluemonday.Policy) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMarkdown, err)
	}
	if policy == nil {
		return HTML(buf.String()), nil
	}
	return policy.Sanitize(buf.String()), nil
}
