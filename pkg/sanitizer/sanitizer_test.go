package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluent/pkg/sanitizer"
)

func TestHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps inline formatting",
			input:    `<strong>Email</strong> <em>required</em>`,
			expected: `<strong>Email</strong> <em>required</em>`,
		},
		{
			name:     "strips script",
			input:    `<b>Hi</b><script>alert('xss')</script>`,
			expected: `<b>Hi</b>`,
		},
		{
			name:     "adds nofollow to links",
			input:    `<a href="https://example.com">terms</a>`,
			expected: `<a href="https://example.com" rel="nofollow">terms</a>`,
		},
		{
			name:     "strips javascript URLs",
			input:    `<a href="javascript:alert('xss')">click</a>`,
			expected: "click",
		},
		{
			name:     "strips event handlers",
			input:    `<span onclick="alert(1)">x</span>`,
			expected: `<span>x</span>`,
		},
		{
			name:     "keeps icon classes",
			input:    `<i class="icon icon-warning"></i>`,
			expected: `<i class="icon icon-warning"></i>`,
		},
		{
			name:     "strips block containers",
			input:    `<div><p>content</p></div>`,
			expected: `<p>content</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.HTML(tt.input))
		})
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello world", sanitizer.Text(`<p>Hello <strong>world</strong></p>`))
	assert.Equal(t, "", sanitizer.Text(`<img src="x" onerror="alert(1)">`))
}

func TestCustom(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<b>x</b>", sanitizer.Custom("<b>x</b>", nil))
	assert.Equal(t, "x", sanitizer.Custom("<b>x</b>", bluemonday.StrictPolicy()))
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("renders emphasis", func(t *testing.T) {
		t.Parallel()

		out, err := sanitizer.Markdown("**Required** field")
		require.NoError(t, err)
		assert.Equal(t, "<p><strong>Required</strong> field</p>", strings.TrimSpace(out))
	})

	t.Run("raw html is not passed through", func(t *testing.T) {
		t.Parallel()

		out, err := sanitizer.Markdown("hi <script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script")
		assert.Contains(t, out, "hi")
	})

	t.Run("custom policy", func(t *testing.T) {
		t.Parallel()

		out, err := sanitizer.MarkdownCustom("_x_", bluemonday.StrictPolicy())
		require.NoError(t, err)
		assert.Equal(t, "x", strings.TrimSpace(out))
	})
}
