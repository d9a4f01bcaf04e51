package exprpath_test

import (
	"iter"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluent/pkg/exprpath"
)

type address struct {
	City string `form:"city_name"`
	Zip  string `json:"postal_code"`
}

type line struct {
	Sku string
	Qty int
}

type audit struct {
	CreatedBy string
}

type order struct {
	audit
	ID       int
	Customer *customer
	Lines    []line
	Tags     [2]string
	ByPos    map[int]line
	Extra    map[string]any
	Any      any
	Stream   iter.Seq[line]
	hidden   string
}

type customer struct {
	Name    string
	Address *address
}

func sampleOrder() *order {
	return &order{
		audit:    audit{CreatedBy: "admin"},
		ID:       7,
		Customer: &customer{Name: "Ann", Address: &address{City: "Oslo", Zip: "0150"}},
		Lines:    []line{{Sku: "A1", Qty: 1}, {Sku: "B2", Qty: 2}},
		Tags:     [2]string{"new", "vip"},
		ByPos:    map[int]line{3: {Sku: "M3"}},
		Extra:    map[string]any{"Note": "fragile", "Dims": []int{10, 20}},
		Any:      []string{"x", "y"},
		Stream:   slices.Values([]line{{Sku: "S0"}, {Sku: "S1"}}),
		hidden:   "secret",
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	r := exprpath.NewResolver()
	o := sampleOrder()

	t.Run("resolves nested values", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			path string
			want any
			name string
		}{
			{"ID", 7, "ID"},
			{"id", 7, "id"},
			{"Customer.Name", "Ann", "Name"},
			{"Customer.Address.City", "Oslo", "City"},
			{"Customer.Address.city_name", "Oslo", "city_name"},
			{"Customer.Address.postal_code", "0150", "postal_code"},
			{"Lines[1].Sku", "B2", "Sku"},
			{"Tags[1]", "vip", "Tags"},
			{"ByPos[3].Sku", "M3", "Sku"},
			{"Extra.note", "fragile", "note"},
			{"Extra.Dims[1]", 20, "Dims"},
			{"Any[0]", "x", "Any"},
			{"Stream[1].Sku", "S1", "Sku"},
			{"CreatedBy", "admin", "CreatedBy"},
		}
		for _, tt := range tests {
			b, err := r.ResolveValue(o, tt.path)
			require.NoError(t, err, tt.path)
			require.True(t, b.Resolved, tt.path)
			assert.Equal(t, tt.want, b.Value, tt.path)
			assert.Equal(t, tt.name, b.Name, tt.path)
		}
	})

	t.Run("reports declared type and field", func(t *testing.T) {
		t.Parallel()

		b, err := r.ResolveValue(o, "Lines[0].Qty")
		require.NoError(t, err)
		require.True(t, b.Resolved)
		assert.Equal(t, reflect.TypeFor[int](), b.Type)
		assert.Equal(t, reflect.TypeFor[line](), b.Owner)
		require.NotNil(t, b.Field)
		assert.Equal(t, "Qty", b.Field.Name)
	})

	t.Run("index out of range is unresolved", func(t *testing.T) {
		t.Parallel()

		b, err := r.ResolveValue(o, "Lines[5].Sku")
		require.NoError(t, err)
		assert.False(t, b.Resolved)
		assert.Nil(t, b.Value)
		assert.Equal(t, reflect.TypeFor[string](), b.Type)
		assert.Equal(t, "Sku", b.Name)
	})

	t.Run("index beyond small map key range is unresolved", func(t *testing.T) {
		t.Parallel()

		signed := struct{ Items map[int8]string }{Items: map[int8]string{44: "wrong", 1: "one"}}
		b, err := exprpath.Resolve(signed, "Items[300]")
		require.NoError(t, err)
		assert.False(t, b.Resolved)
		assert.Nil(t, b.Value)

		b, err = exprpath.Resolve(signed, "Items[1]")
		require.NoError(t, err)
		assert.True(t, b.Resolved)
		assert.Equal(t, "one", b.Value)

		unsigned := struct{ Items map[uint8]string }{Items: map[uint8]string{0: "zero"}}
		b, err = exprpath.Resolve(unsigned, "Items[256]")
		require.NoError(t, err)
		assert.False(t, b.Resolved)
		assert.Nil(t, b.Value)
	})

	t.Run("nil intermediate container is unresolved but typed", func(t *testing.T) {
		t.Parallel()

		b, err := r.ResolveValue(&order{Customer: &customer{}}, "Customer.Address.City")
		require.NoError(t, err)
		assert.False(t, b.Resolved)
		assert.Nil(t, b.Value)
		assert.Equal(t, reflect.TypeFor[string](), b.Type)
		require.NotNil(t, b.Field)
		assert.Equal(t, "City", b.Field.Name)
	})

	t.Run("typed nil root is unresolved but typed", func(t *testing.T) {
		t.Parallel()

		b, err := r.ResolveValue((*order)(nil), "Customer.Name")
		require.NoError(t, err)
		assert.False(t, b.Resolved)
		assert.Equal(t, reflect.TypeFor[string](), b.Type)
	})

	t.Run("missing property is unresolved", func(t *testing.T) {
		t.Parallel()

		b, err := r.ResolveValue(o, "Customer.Phone")
		require.NoError(t, err)
		assert.False(t, b.Resolved)
		assert.Nil(t, b.Type)
	})

	t.Run("unexported fields are not visible", func(t *testing.T) {
		t.Parallel()

		b, err := r.ResolveValue(o, "hidden")
		require.NoError(t, err)
		assert.False(t, b.Resolved)
	})

	t.Run("index on non-enumerable is ignored", func(t *testing.T) {
		t.Parallel()

		b, err := r.ResolveValue(o, "Customer[3].Name")
		require.NoError(t, err)
		require.True(t, b.Resolved)
		assert.Equal(t, "Ann", b.Value)
	})

	t.Run("malformed path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := r.ResolveValue(o, "Lines[x]")
		require.ErrorIs(t, err, exprpath.ErrMalformedPath)
	})

	t.Run("does not mutate inspected values", func(t *testing.T) {
		t.Parallel()

		fresh := sampleOrder()
		_, err := r.ResolveValue(fresh, "Customer.Address.City")
		require.NoError(t, err)
		_, err = r.ResolveValue(fresh, "Lines[9]")
		require.NoError(t, err)
		assert.Len(t, fresh.Lines, 2)
		assert.Equal(t, "Oslo", fresh.Customer.Address.City)
	})
}

func TestResolver_TopLevelLookups(t *testing.T) {
	t.Parallel()

	r := exprpath.NewResolver()

	t.Run("values lookup", func(t *testing.T) {
		t.Parallel()

		b, err := r.Resolve(exprpath.Values{"Title": "Orders", "Order": sampleOrder()}, "order.Lines[0].Sku")
		require.NoError(t, err)
		require.True(t, b.Resolved)
		assert.Equal(t, "A1", b.Value)
	})

	t.Run("chain tries lookups in order", func(t *testing.T) {
		t.Parallel()

		top := exprpath.Chain{
			nil,
			exprpath.Values{"ID": "from-values"},
			r.Root(sampleOrder()),
		}

		b, err := r.Resolve(top, "ID")
		require.NoError(t, err)
		assert.Equal(t, "from-values", b.Value)

		b, err = r.Resolve(top, "Customer.Name")
		require.NoError(t, err)
		assert.Equal(t, "Ann", b.Value)
	})

	t.Run("chain keeps root type for nil models", func(t *testing.T) {
		t.Parallel()

		top := exprpath.Chain{exprpath.Values{"Title": "x"}, r.Root((*order)(nil))}
		b, err := r.Resolve(top, "Customer.Name")
		require.NoError(t, err)
		assert.False(t, b.Resolved)
		assert.Equal(t, reflect.TypeFor[string](), b.Type)
		assert.Equal(t, reflect.TypeFor[customer](), b.Owner)
	})

	t.Run("package level resolve", func(t *testing.T) {
		t.Parallel()

		b, err := exprpath.Resolve(map[string]any{"a": map[string]any{"b": 1}}, "a.b")
		require.NoError(t, err)
		require.True(t, b.Resolved)
		assert.Equal(t, 1, b.Value)
	})
}

func TestResolver_ResolveType(t *testing.T) {
	t.Parallel()

	r := exprpath.NewResolver()

	b, err := r.ResolveType(reflect.TypeFor[*order](), "Lines[0].Sku")
	require.NoError(t, err)
	require.True(t, b.Resolved)
	assert.Equal(t, reflect.TypeFor[string](), b.Type)
	assert.Equal(t, reflect.TypeFor[line](), b.Owner)

	b, err = r.ResolveType(reflect.TypeFor[order](), "Nope")
	require.NoError(t, err)
	assert.False(t, b.Resolved)
	assert.Equal(t, "Nope", b.Name)
}

func TestElementType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   reflect.Type
		want reflect.Type
		ok   bool
	}{
		{reflect.TypeFor[[]int](), reflect.TypeFor[int](), true},
		{reflect.TypeFor[*[3]string](), reflect.TypeFor[string](), true},
		{reflect.TypeFor[map[int]bool](), reflect.TypeFor[bool](), true},
		{reflect.TypeFor[map[string]bool](), nil, false},
		{reflect.TypeFor[iter.Seq[line]](), reflect.TypeFor[line](), true},
		{reflect.TypeFor[iter.Seq2[int, string]](), reflect.TypeFor[string](), true},
		{reflect.TypeFor[string](), nil, false},
		{nil, nil, false},
	}
	for _, tt := range tests {
		got, ok := exprpath.ElementType(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}
