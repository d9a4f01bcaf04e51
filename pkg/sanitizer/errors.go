package sanitizer

import "errors"

// ErrMarkdown is returned when Markdown cannot be converted.
var ErrMarkdown = errors.New("sanitizer: failed to render markdown")
