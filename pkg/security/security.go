// Package security decides whether the current user may read or change a form
// control, based on role membership.
//
// A [Policy] lists read roles and write roles. An empty list grants everyone;
// otherwise the principal must be in at least one listed role. Controls use
// the result to mask values, disable inputs and add CSS classes.
//
//	p := security.NewPolicy().Read("staff").Write("admin")
//	p.CanRead(user)  // true for members of "staff"
//	p.CanWrite(user) // true for members of "admin"
//
// Principals can be attached to a context so controls resolve them at render time:
//
//	ctx = security.WithPrincipal(ctx, security.Roles{"staff"})
package security

import (
	"context"
	"slices"
	"strings"
)

// DefaultDeniedClass is the CSS class added to controls the user cannot access.
const DefaultDeniedClass = "access-denied"

// Principal is the current user as seen by access checks.
type Principal interface {
	InRole(role string) bool
}

// Roles is a static role set. Role names compare case-insensitively.
type Roles []string

// InRole implements Principal.
func (r Roles) InRole(role string) bool {
	return slices.ContainsFunc(r, func(x string) bool { return strings.EqualFold(x, role) })
}

// PrincipalFunc adapts a function to Principal.
type PrincipalFunc func(role string) bool

// InRole implements Principal.
func (f PrincipalFunc) InRole(role string) bool {
	return f(role)
}

// Permission is a named permission.
type Permission string

// RolePermissions maps role names to their granted permissions.
type RolePermissions = map[string][]Permission

// WithPermissions returns a Principal holding role. It is "in" role itself and
// in every permission granted to role by perms, so policies can list either.
func WithPermissions(perms RolePermissions, role string) Principal {
	return PrincipalFunc(func(name string) bool {
		if role == "" {
			return false
		}
		if strings.EqualFold(name, role) {
			return true
		}
		return slices.Contains(perms[role], Permission(name))
	})
}

// Policy controls read and write access to a control.
type Policy struct {
	ReadRoles    []string
	WriteRoles   []string
	GrantedClass string
	DeniedClass  string
}

// NewPolicy creates a policy that grants everyone and uses DefaultDeniedClass.
func NewPolicy() *Policy {
	return &Policy{DeniedClass: DefaultDeniedClass}
}

// Read adds roles allowed to see the value.
func (p *Policy) Read(roles ...string) *Policy {
	p.ReadRoles = appendRoles(p.ReadRoles, roles)
	return p
}

// Write adds roles allowed to change the value.
func (p *Policy) Write(roles ...string) *Policy {
	p.WriteRoles = appendRoles(p.WriteRoles, roles)
	return p
}

// Granted sets the class added when access is allowed.
func (p *Policy) Granted(class string) *Policy {
	p.GrantedClass = class
	return p
}

// Denied sets the class added when access is denied.
func (p *Policy) Denied(class string) *Policy {
	p.DeniedClass = class
	return p
}

// IsZero reports whether the policy restricts nothing.
func (p *Policy) IsZero() bool {
	return p == nil || (len(p.ReadRoles) == 0 && len(p.WriteRoles) == 0)
}

// CanRead reports whether principal may see the value.
func (p *Policy) CanRead(principal Principal) bool {
	if p == nil {
		return true
	}
	return allowed(p.ReadRoles, principal)
}

// CanWrite reports whether principal may change the value.
func (p *Policy) CanWrite(principal Principal) bool {
	if p == nil {
		return true
	}
	return allowed(p.WriteRoles, principal)
}

// Class returns the CSS class for an access decision.
func (p *Policy) Class(granted bool) string {
	if p == nil {
		return ""
	}
	if granted {
		return p.GrantedClass
	}
	return p.DeniedClass
}

func allowed(roles []string, principal Principal) bool {
	if len(roles) == 0 {
		return true
	}
	if principal == nil {
		return false
	}
	return slices.ContainsFunc(roles, principal.InRole)
}

func appendRoles(dst, roles []string) []string {
	for _, r := range roles {
		if r = strings.TrimSpace(r); r != "" {
			dst = append(dst, r)
		}
	}
	return dst
}

type principalKey struct{}

// WithPrincipal attaches principal to ctx.
func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// FromContext returns the principal attached to ctx.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok && p != nil
}
