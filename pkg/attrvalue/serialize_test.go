package attrvalue_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluent/pkg/attrvalue"
)

type node struct {
	Name     string  `json:"name"`
	Parent   *node   `json:"parent,omitempty"`
	Children []*node `json:"children,omitempty"`
}

type embeddedBase struct {
	ID int `json:"id"`
}

type withEmbedded struct {
	embeddedBase
	Title  string `json:"title"`
	Secret string `json:"-"`
	hidden string
}

type textValue struct{ v string }

func (t textValue) MarshalText() ([]byte, error) { return []byte("text:" + t.v), nil }

func TestSerialize(t *testing.T) {
	t.Parallel()

	t.Run("string is returned unchanged", func(t *testing.T) {
		t.Parallel()

		s, ok, err := attrvalue.Serialize(`he said "hi" & left`)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `he said "hi" & left`, s)
	})

	t.Run("uuid uses canonical form", func(t *testing.T) {
		t.Parallel()

		id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
		s, ok, err := attrvalue.Serialize(id)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "0f8fad5b-d9cb-469f-a165-70867728950e", s)

		s, _, err = attrvalue.Serialize(&id)
		require.NoError(t, err)
		assert.Equal(t, "0f8fad5b-d9cb-469f-a165-70867728950e", s)
	})

	t.Run("time uses sortable form without zone", func(t *testing.T) {
		t.Parallel()

		ts := time.Date(2024, time.March, 5, 14, 7, 9, 123, time.FixedZone("X", 3600))
		s, ok, err := attrvalue.Serialize(ts)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "2024-03-05T14:07:09", s)
	})

	t.Run("nil reports not ok", func(t *testing.T) {
		t.Parallel()

		for _, v := range []any{nil, (*int)(nil), map[string]any(nil), []string(nil)} {
			s, ok, err := attrvalue.Serialize(v)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, s)
		}
	})

	t.Run("numbers and booleans become JSON literals", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			in   any
			want string
		}{
			{42, "42"},
			{-7, "-7"},
			{uint8(3), "3"},
			{1.5, "1.5"},
			{true, "true"},
		}
		for _, tt := range tests {
			s, ok, err := attrvalue.Serialize(tt.in)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, s)
		}
	})

	t.Run("map keys are sorted", func(t *testing.T) {
		t.Parallel()

		s, _, err := attrvalue.Serialize(map[string]any{"min": 1, "max": 5})
		require.NoError(t, err)
		assert.Equal(t, `{"max":5,"min":1}`, s)
	})

	t.Run("struct honours json tags and flattens embedded fields", func(t *testing.T) {
		t.Parallel()

		s, _, err := attrvalue.Serialize(withEmbedded{
			embeddedBase: embeddedBase{ID: 9},
			Title:        "x<y",
			Secret:       "nope",
			hidden:       "nope",
		})
		require.NoError(t, err)
		assert.Equal(t, `{"id":9,"title":"x<y"}`, s)
	})

	t.Run("text marshalers are quoted", func(t *testing.T) {
		t.Parallel()

		s, _, err := attrvalue.Serialize([]textValue{{v: "a"}})
		require.NoError(t, err)
		assert.Equal(t, `["text:a"]`, s)
	})

	t.Run("byte slices nested in JSON are base64", func(t *testing.T) {
		t.Parallel()

		s, _, err := attrvalue.Serialize(map[string]any{"b": []byte("hi")})
		require.NoError(t, err)
		assert.Equal(t, `{"b":"aGk="}`, s)
	})

	t.Run("back references are dropped", func(t *testing.T) {
		t.Parallel()

		root := &node{Name: "root"}
		child := &node{Name: "child", Parent: root}
		root.Children = []*node{child}

		s, ok, err := attrvalue.Serialize(root)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `{"name":"root","children":[{"name":"child"}]}`, s)
	})

	t.Run("self referencing map drops the entry", func(t *testing.T) {
		t.Parallel()

		m := map[string]any{"a": 1}
		m["self"] = m

		s, _, err := attrvalue.Serialize(m)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, s)
	})

	t.Run("shared but acyclic references are encoded twice", func(t *testing.T) {
		t.Parallel()

		shared := &node{Name: "s"}
		s, _, err := attrvalue.Serialize([]*node{shared, shared})
		require.NoError(t, err)
		assert.Equal(t, `[{"name":"s"},{"name":"s"}]`, s)
	})

	t.Run("unsupported values return error", func(t *testing.T) {
		t.Parallel()

		for _, v := range []any{func() {}, make(chan int), complex(1, 2), map[string]any{"f": func() {}}} {
			_, ok, err := attrvalue.Serialize(v)
			require.Error(t, err)
			assert.False(t, ok)
			assert.True(t, errors.Is(err, attrvalue.ErrSerialize))
			assert.True(t, errors.Is(err, attrvalue.ErrUnsupportedValue))
		}
	})
}

func TestMustSerialize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[1,2]", attrvalue.MustSerialize([]int{1, 2}))
	assert.Panics(t, func() { attrvalue.MustSerialize(make(chan int)) })
}
