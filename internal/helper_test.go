package internal_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluent/internal"
	"github.com/dmitrymomot/fluent/pkg/security"
	"github.com/dmitrymomot/fluent/pkg/urlgen"
)

type address struct {
	City string `display:"Town" validate:"required,maxlen=40"`
}

type signUp struct {
	Email     string `display:"E-mail" placeholder:"you@example.com" datatype:"email" validate:"required,maxlen=100"`
	Password  string
	FirstName string
	Bio       string `description:"Tell us" validate:"maxlen=500"`
	Plan      string
	Born      time.Time `datatype:"date"`
	Address   *address
	Tags      []string
	Age       int `validate:"min=18,max=99"`
	Country   int
	Agree     bool
}

func sampleForm() *signUp {
	return &signUp{
		Email:    "a@b.c",
		Password: "secret",
		Bio:      "a<b",
		Plan:     "pro",
		Born:     time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC),
		Tags:     []string{"a", "c"},
		Age:      30,
		Country:  2,
		Agree:    true,
	}
}

func TestSanitizeID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Email", "Email"},
		{"dots", "Address.City", "Address_City"},
		{"indexes", "Lines[0].Qty", "Lines_0__Qty"},
		{"spaces", "first name", "first_name"},
		{"leading digit", "1st", "z1st"},
		{"leading underscore", "_x", "z_x"},
		{"blank", "  ", ""},
		{"keeps hyphen and colon", "a-b:c", "a-b:c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, internal.SanitizeID(tt.input, "_"))
		})
	}
}

func TestHelper_Bind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("model path", func(t *testing.T) {
		t.Parallel()

		h := internal.New(internal.WithModel(sampleForm()))
		b := h.Bind(ctx, "email")
		require.True(t, b.Resolved)
		assert.Equal(t, "a@b.c", b.Value)
	})

	t.Run("view data shadows the model", func(t *testing.T) {
		t.Parallel()

		h := internal.New(
			internal.WithModel(sampleForm()),
			internal.WithViewData(map[string]any{"Email": "override@b.c", "Title": "Sign up"}),
		)
		assert.Equal(t, "override@b.c", h.Bind(ctx, "Email").Value)
		assert.Equal(t, "Sign up", h.Bind(ctx, "title").Value)
		assert.Equal(t, 30, h.Bind(ctx, "Age").Value)
	})

	t.Run("nil model keeps declared type", func(t *testing.T) {
		t.Parallel()

		h := internal.New(
			internal.WithModel((*signUp)(nil)),
			internal.WithViewData(map[string]any{"Title": "x"}),
		)
		b := h.Bind(ctx, "Address.City")
		assert.False(t, b.Resolved)
		assert.Equal(t, reflect.TypeFor[string](), b.Type)

		d := h.Describe(ctx, "Address.City")
		assert.Equal(t, "Town", d.DisplayName)
		assert.True(t, d.Required)
	})

	t.Run("malformed path binds to nothing", func(t *testing.T) {
		t.Parallel()

		h := internal.New(internal.WithModel(sampleForm()))
		b := h.Bind(ctx, "Tags[x]")
		assert.False(t, b.Resolved)
		assert.Equal(t, "Tags[x]", b.Name)
	})
}

func TestHelper_Principal(t *testing.T) {
	t.Parallel()

	h := internal.New()
	assert.Nil(t, h.Principal(context.Background()))

	ctx := security.WithPrincipal(context.Background(), security.Roles{"admin"})
	require.NotNil(t, h.Principal(ctx))
	assert.True(t, h.Principal(ctx).InRole("admin"))

	h = internal.New(internal.WithPrincipal(security.Roles{"user"}))
	assert.False(t, h.Principal(ctx).InRole("admin"))
}

func TestHelper_Options(t *testing.T) {
	t.Parallel()

	t.Run("id replacement", func(t *testing.T) {
		t.Parallel()

		h := internal.New(internal.WithIDDotReplacement("-"))
		assert.Equal(t, "Address-City", h.ID("Address.City"))
	})

	t.Run("translator", func(t *testing.T) {
		t.Parallel()

		h := internal.New(internal.WithTranslator(func(key string, _ map[string]any) string {
			return "t:" + key
		}))
		assert.Equal(t, "t:hello", h.T("hello", nil))
		assert.Empty(t, h.T("", nil))
		assert.Equal(t, "hello", internal.New().T("hello", nil))
	})

	t.Run("nil options keep defaults", func(t *testing.T) {
		t.Parallel()

		h := internal.New(
			internal.WithModelState(nil),
			internal.WithMetadata(nil),
			internal.WithResolver(nil),
			internal.WithLogger(nil),
		)
		assert.NotNil(t, h.ModelState())
		assert.NotNil(t, h.Logger())
	})

	t.Run("url without generator", func(t *testing.T) {
		t.Parallel()

		h := internal.New()
		u, err := h.URL(urlgen.Navigation{URL: "/x"})
		require.NoError(t, err)
		assert.Equal(t, "/x", u)

		_, err = h.URL(urlgen.Navigation{RouteName: "home"})
		require.ErrorIs(t, err, internal.ErrNoRoutes)
	})
}
