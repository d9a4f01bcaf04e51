package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	inlinePolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Formatting that fits inside labels, buttons, spans and help text.
		inlinePolicy = bluemonday.NewPolicy()
		inlinePolicy.AllowStandardURLs()
		inlinePolicy.AllowElements(
			"p", "br", "span", "small", "abbr", "mark",
			"strong", "b", "em", "i", "u", "s", "sub", "sup",
			"ul", "ol", "li",
			"code", "pre", "kbd", "blockquote",
		)
		inlinePolicy.AllowAttrs("href").OnElements("a")
		inlinePolicy.AllowAttrs("title").OnElements("abbr", "span")
		inlinePolicy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span", "i", "code")
		inlinePolicy.RequireNoFollowOnLinks(true)
	})
}

// HTML keeps inline formatting, lists, code and links.
// Scripts, styles, event handlers and javascript: URLs are removed.
func HTML(s string) string {
	initPolicies()
	return inlinePolicy.Sanitize(s)
}

// Text strips all markup and returns escaped plain text.
func Text(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// Custom applies policy. A nil policy returns s unchanged.
func Custom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
