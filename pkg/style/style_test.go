package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluent/pkg/style"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current string
		decls   []style.Declaration
		want    string
	}{
		{
			name:    "replaces existing property case-insensitively",
			current: "color:red",
			decls:   []style.Declaration{style.Set("COLOR", "blue")},
			want:    "color:blue",
		},
		{
			name:    "replacement keeps other declarations",
			current: "color:red; font-size:12px",
			decls:   []style.Declaration{style.Set("color", "blue")},
			want:    "color:blue; font-size:12px",
		},
		{
			name:    "nil value removes property",
			current: "color:red; font-size:12px",
			decls:   []style.Declaration{style.Unset("color")},
			want:    "font-size:12px",
		},
		{
			name:    "new property is inserted at the front",
			current: "color:red; margin:0",
			decls:   []style.Declaration{style.Set("padding", "1px")},
			want:    "padding:1px; color:red; margin:0",
		},
		{
			name:    "replacement moves to the front",
			current: "color:red; margin:0",
			decls:   []style.Declaration{style.Set("margin", "4px")},
			want:    "margin:4px; color:red",
		},
		{
			name:    "empty current appends",
			current: "",
			decls:   []style.Declaration{style.Set("width", 100)},
			want:    "width:100",
		},
		{
			name:    "empty property is skipped",
			current: "color:red",
			decls:   []style.Declaration{style.Set("  ", "x")},
			want:    "color:red",
		},
		{
			name:    "property name is trimmed and lowered",
			current: "",
			decls:   []style.Declaration{style.Set(" Font-Weight ", "bold")},
			want:    "font-weight:bold",
		},
		{
			name:    "blank declarations are dropped",
			current: " color:red ;; ; margin:0;",
			decls:   nil,
			want:    "color:red; margin:0",
		},
		{
			name:    "prefix match replaces only the first declaration",
			current: "margin-top:1px; margin:0",
			decls:   []style.Declaration{style.Set("margin", "2px")},
			want:    "margin:2px; margin:0",
		},
		{
			name:    "typed nil removes property",
			current: "color:red",
			decls:   []style.Declaration{style.Set("color", (*string)(nil))},
			want:    "",
		},
		{
			name:    "declarations apply in order",
			current: "",
			decls:   []style.Declaration{style.Set("a", 1), style.Set("b", 2)},
			want:    "b:2; a:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, style.Merge(tt.current, tt.decls...))
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	t.Parallel()

	once := style.Merge("color:red; margin:0", style.Set("color", "blue"))
	twice := style.Merge(once, style.Set("color", "blue"))
	assert.Equal(t, once, twice)
}

func TestParse(t *testing.T) {
	t.Parallel()

	entries := style.Parse("color: red; font-size:12px;; broken")
	require.Len(t, entries, 3)
	assert.Equal(t, style.Entry{Property: "color", Value: "red"}, entries[0])
	assert.Equal(t, "font-size:12px", entries[1].String())
	assert.Equal(t, style.Entry{Property: "broken"}, entries[2])
}

func TestDecls(t *testing.T) {
	t.Parallel()

	decls := style.Decls(map[string]any{"width": "1px", "color": "red"})
	require.Len(t, decls, 2)
	assert.Equal(t, "color", decls[0].Property)
	assert.Equal(t, "width", decls[1].Property)
}
