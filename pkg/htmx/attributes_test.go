package htmx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fluent/pkg/htmx"
)

func TestAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		attr     htmx.Attribute
		expected htmx.Attribute
	}{
		{"get", htmx.Get("/a"), htmx.Attribute{Name: "hx-get", Value: "/a"}},
		{"delete", htmx.Delete("/a/1"), htmx.Attribute{Name: "hx-delete", Value: "/a/1"}},
		{"swap with modifiers", htmx.Swap(htmx.SwapOuterHTML, "swap:1s", " ", "scroll:top"), htmx.Attribute{Name: "hx-swap", Value: "outerHTML swap:1s scroll:top"}},
		{"swap oob default", htmx.SwapOOB(""), htmx.Attribute{Name: "hx-swap-oob", Value: "true"}},
		{"swap oob strategy", htmx.SwapOOB(htmx.SwapBeforeEnd), htmx.Attribute{Name: "hx-swap-oob", Value: "beforeend"}},
		{"trigger", htmx.Trigger("change", "keyup delay:500ms"), htmx.Attribute{Name: "hx-trigger", Value: "change, keyup delay:500ms"}},
		{"push url default", htmx.PushURL(), htmx.Attribute{Name: "hx-push-url", Value: "true"}},
		{"push url explicit", htmx.PushURL("/x"), htmx.Attribute{Name: "hx-push-url", Value: "/x"}},
		{"boost", htmx.Boost(false), htmx.Attribute{Name: "hx-boost", Value: "false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.attr)
		})
	}
}

func TestSwapStrategy_With(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "innerHTML", htmx.SwapInnerHTML.With())
	assert.Equal(t, "none show:top", htmx.SwapNone.With("show:top"))
}
