package attrs_test

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluent/pkg/attrs"
	"github.com/dmitrymomot/fluent/pkg/attrvalue"
	"github.com/dmitrymomot/fluent/pkg/style"
)

func TestStore_Set(t *testing.T) {
	t.Parallel()

	t.Run("setting twice equals setting once", func(t *testing.T) {
		t.Parallel()

		s := attrs.New()
		require.NoError(t, s.Set("title", "x"))
		require.NoError(t, s.Set("title", "x"))

		assert.Equal(t, 1, s.Len())
		assert.Equal(t, "x", s.Value("title"))
	})

	t.Run("nil removes and get reports absent", func(t *testing.T) {
		t.Parallel()

		s := attrs.New()
		require.NoError(t, s.Set("title", "x"))
		require.NoError(t, s.Set("title", nil))

		_, ok := s.Get("title")
		assert.False(t, ok)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("empty name is ignored", func(t *testing.T) {
		t.Parallel()

		s := attrs.New()
		require.NoError(t, s.Set("", "x"))
		s.SetString("", "y")
		assert.Equal(t, 0, s.Len())
	})

	t.Run("names are case-insensitive and keep first spelling and position", func(t *testing.T) {
		t.Parallel()

		s := attrs.New()
		s.SetString("Placeholder", "a")
		s.SetString("id", "x")
		s.SetString("PLACEHOLDER", "b")

		assert.Equal(t, []string{"Placeholder", "id"}, s.Keys())
		v, ok := s.Get("placeholder")
		require.True(t, ok)
		assert.Equal(t, "b", v)
	})

	t.Run("non-string values are serialized", func(t *testing.T) {
		t.Parallel()

		s := attrs.New()
		require.NoError(t, s.Set("data-range", []int{1, 5}))
		require.NoError(t, s.Set("tabindex", 3))

		assert.Equal(t, "[1,5]", s.Value("data-range"))
		assert.Equal(t, "3", s.Value("tabindex"))
	})

	t.Run("serialization failure leaves store unchanged", func(t *testing.T) {
		t.Parallel()

		s := attrs.New()
		s.SetString("x", "keep")

		err := s.Set("x", make(chan int))
		require.Error(t, err)
		assert.True(t, errors.Is(err, attrs.ErrSetAttribute))
		assert.True(t, errors.Is(err, attrvalue.ErrSerialize))
		assert.Equal(t, "keep", s.Value("x"))
	})

	t.Run("zero value store is usable", func(t *testing.T) {
		t.Parallel()

		var s attrs.Store
		s.Remove("missing")
		s.SetString("a", "1")
		assert.True(t, s.Has("A"))
	})
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	s := attrs.New()
	s.SetString("a", "1")
	s.SetString("b", "2")
	s.SetString("c", "3")

	s.Remove("B")
	s.Remove("missing")

	assert.Equal(t, []string{"a", "c"}, s.Keys())
	assert.Equal(t, "3", s.Value("c"))

	s.SetString("b", "4")
	assert.Equal(t, []string{"a", "c", "b"}, s.Keys())
}

func TestStore_Clone(t *testing.T) {
	t.Parallel()

	s := attrs.New()
	s.SetString("a", "1")
	c := s.Clone()
	c.SetString("a", "2")
	c.SetString("b", "3")

	assert.Equal(t, "1", s.Value("a"))
	assert.False(t, s.Has("b"))
	assert.Equal(t, map[string]string{"a": "2", "b": "3"}, c.Map())
}

func TestStore_All(t *testing.T) {
	t.Parallel()

	s := attrs.New()
	s.SetString("z", "1")
	s.SetString("a", "2")

	got := maps.Collect(s.All())
	assert.Equal(t, map[string]string{"z": "1", "a": "2"}, got)

	var keys []string
	for k := range s.All() {
		keys = append(keys, k)
		break
	}
	assert.Equal(t, []string{"z"}, keys)
}

func TestStore_Items(t *testing.T) {
	t.Parallel()

	s := attrs.New()
	s.SetString("type", "text")
	s.SetString("name", "q")
	s.SetString("value", `"a" & <b>`)

	var buf bytes.Buffer
	require.NoError(t, templ.RenderAttributes(context.Background(), &buf, s))
	assert.Equal(t, ` type="text" name="q" value="&#34;a&#34; &amp; &lt;b&gt;"`, buf.String())
}

func TestStore_Data(t *testing.T) {
	t.Parallel()

	s := attrs.New()
	require.NoError(t, s.Data("userId", 7))
	require.NoError(t, s.Data("", 7))

	assert.Equal(t, []string{"data-user-id"}, s.Keys())
	assert.Equal(t, "7", s.Value("data-user-id"))
}

func TestDataName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "data-toggle", attrs.DataName("toggle"))
	assert.Equal(t, "data-val-max-length", attrs.DataName("valMaxLength"))
	assert.Equal(t, "", attrs.DataName(" "))
}

func TestStore_Style(t *testing.T) {
	t.Parallel()

	s := attrs.New()
	s.Style(style.Set("color", "red"))
	s.Style(style.Set("width", "1px"))
	assert.Equal(t, "width:1px; color:red", s.Value("style"))

	s.Style(style.Unset("width"), style.Unset("color"))
	v, ok := s.Get("style")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestStore_Classes(t *testing.T) {
	t.Parallel()

	s := attrs.New()
	s.AddClass("form-control", "", "form-control  wide")
	assert.Equal(t, "form-control wide", s.Value("class"))
	assert.True(t, s.HasClass("wide"))

	s.RemoveClass("form-control", "wide")
	assert.False(t, s.Has("class"))

	s.AddClass()
	assert.False(t, s.Has("class"))
}

func TestStore_SetMany(t *testing.T) {
	t.Parallel()

	t.Run("map bags apply in sorted order", func(t *testing.T) {
		t.Parallel()

		s := attrs.New()
		require.NoError(t, s.SetMany(map[string]any{"b": 1, "a": "x", "c": nil}))
		assert.Equal(t, []string{"a", "b"}, s.Keys())
	})

	t.Run("nil value in bag removes existing attribute", func(t *testing.T) {
		t.Parallel()

		s := attrs.New()
		s.SetString("title", "x")
		require.NoError(t, s.SetMany(map[string]string{"id": "a"}))
		require.NoError(t, s.SetMany(map[string]any{"title": nil}))
		assert.Equal(t, []string{"id"}, s.Keys())
	})

	t.Run("templ attributes follow boolean convention", func(t *testing.T) {
		t.Parallel()

		s := attrs.New()
		s.SetString("hidden", "hidden")
		require.NoError(t, s.SetMany(templ.Attributes{"disabled": true, "hidden": false, "hx-get": "/x"}))
		assert.Equal(t, []string{"disabled", "hx-get"}, s.Keys())
		assert.Equal(t, "disabled", s.Value("disabled"))
	})

	t.Run("struct fields become attributes", func(t *testing.T) {
		t.Parallel()

		s := attrs.New()
		require.NoError(t, s.SetMany(struct {
			DataToggle string
			Aria_Label string
			Role       string `attr:"role"`
			Skip       string `attr:"-"`
			Title      *string
			internal   string
		}{DataToggle: "modal", Aria_Label: "Close", Role: "button", Skip: "x", internal: "y"}))

		assert.Equal(t, []string{"data-toggle", "aria-label", "role"}, s.Keys())
	})

	t.Run("other stores and pairs are copied", func(t *testing.T) {
		t.Parallel()

		src := attrs.New()
		src.SetString("a", "1")

		s := attrs.New()
		require.NoError(t, s.SetMany(src))
		require.NoError(t, s.SetMany([]attrs.Pair{{Name: "b", Value: "2"}}))
		assert.Equal(t, []string{"a", "b"}, s.Keys())
	})

	t.Run("named map types use reflection", func(t *testing.T) {
		t.Parallel()

		type bag map[string]int
		s := attrs.New()
		require.NoError(t, s.SetMany(bag{"rows": 3, "cols": 40}))
		assert.Equal(t, []string{"cols", "rows"}, s.Keys())
	})

	t.Run("non-bag values are rejected", func(t *testing.T) {
		t.Parallel()

		s := attrs.New()
		require.ErrorIs(t, s.SetMany(42), attrs.ErrInvalidBag)
		require.NoError(t, s.SetMany(nil))
	})
}

func TestFieldName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"DataToggle":  "data-toggle",
		"Data_Toggle": "data-toggle",
		"ID":          "id",
		"HxGet":       "hx-get",
		"role":        "role",
	}
	for in, want := range tests {
		assert.Equal(t, want, attrs.FieldName(in), in)
	}
}
