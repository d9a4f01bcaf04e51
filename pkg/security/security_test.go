package security_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluent/pkg/security"
)

func TestPolicy(t *testing.T) {
	t.Parallel()

	t.Run("empty role sets grant everyone", func(t *testing.T) {
		t.Parallel()

		p := security.NewPolicy()
		assert.True(t, p.IsZero())
		assert.True(t, p.CanRead(nil))
		assert.True(t, p.CanWrite(security.Roles{}))
	})

	t.Run("nil policy grants everyone", func(t *testing.T) {
		t.Parallel()

		var p *security.Policy
		assert.True(t, p.CanRead(nil))
		assert.True(t, p.CanWrite(nil))
		assert.Empty(t, p.Class(false))
	})

	t.Run("principal must be in any listed role", func(t *testing.T) {
		t.Parallel()

		p := security.NewPolicy().Read("staff", " ", "admin").Write("admin")
		assert.Equal(t, []string{"staff", "admin"}, p.ReadRoles)

		staff := security.Roles{"Staff"}
		assert.True(t, p.CanRead(staff))
		assert.False(t, p.CanWrite(staff))
		assert.False(t, p.CanRead(nil))
		assert.False(t, p.CanRead(security.Roles{"guest"}))
	})

	t.Run("classes", func(t *testing.T) {
		t.Parallel()

		p := security.NewPolicy()
		assert.Equal(t, security.DefaultDeniedClass, p.Class(false))
		assert.Empty(t, p.Class(true))

		p.Granted("ok").Denied("nope")
		assert.Equal(t, "ok", p.Class(true))
		assert.Equal(t, "nope", p.Class(false))
	})
}

func TestWithPermissions(t *testing.T) {
	t.Parallel()

	perms := security.RolePermissions{
		"editor": {"posts.write", "posts.read"},
	}

	editor := security.WithPermissions(perms, "editor")
	assert.True(t, editor.InRole("editor"))
	assert.True(t, editor.InRole("posts.write"))
	assert.False(t, editor.InRole("posts.delete"))

	p := security.NewPolicy().Write("posts.write")
	assert.True(t, p.CanWrite(editor))
	assert.False(t, p.CanWrite(security.WithPermissions(perms, "")))
}

func TestContext(t *testing.T) {
	t.Parallel()

	_, ok := security.FromContext(context.Background())
	assert.False(t, ok)

	ctx := security.WithPrincipal(context.Background(), security.Roles{"a"})
	p, ok := security.FromContext(ctx)
	require.True(t, ok)
	assert.True(t, p.InRole("A"))
}
