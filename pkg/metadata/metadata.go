package metadata

import (
	"reflect"
	"strings"

	"github.com/dmitrymomot/fluent/pkg/exprpath"
)

// FieldDescriptor is the display and validation metadata of one field.
// Zero values mean "not specified".
type FieldDescriptor struct {
	PropertyName string
	DisplayName  string
	Description  string
	Placeholder  string
	DataType     string
	DeclaredType reflect.Type
	Required     bool
	MaxLength    int
	MinLength    int
	Min          string
	Max          string
}

// Target identifies the field being described.
// Field is nil for properties that are not struct fields, such as map entries.
type Target struct {
	Owner reflect.Type
	Field *reflect.StructField
	Type  reflect.Type
	Name  string
}

// Provider describes fields.
type Provider interface {
	Describe(t Target) FieldDescriptor
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(t Target) FieldDescriptor

// Describe implements Provider.
func (f ProviderFunc) Describe(t Target) FieldDescriptor {
	return f(t)
}

// TargetOf converts a resolved path binding to a Target.
func TargetOf(b exprpath.Binding) Target {
	return Target{Owner: b.Owner, Field: b.Field, Type: b.Type, Name: b.Name}
}

// Describe resolves expression against root and describes the field it reaches.
// The declared type is used when the value cannot be reached, so descriptors are
// available for nil models. A nil resolver uses exprpath defaults.
func Describe(p Provider, r *exprpath.Resolver, root any, expression string) (FieldDescriptor, error) {
	if r == nil {
		r = exprpath.NewResolver()
	}
	b, err := r.ResolveValue(root, expression)
	if err != nil {
		return FieldDescriptor{}, err
	}
	return p.Describe(TargetOf(b)), nil
}

// Label returns the text for a field label: DisplayName, then PropertyName,
// then the last "."-separated segment of expression.
func Label(d FieldDescriptor, expression string) string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	if d.PropertyName != "" {
		return d.PropertyName
	}
	if i := strings.LastIndexByte(expression, '.'); i >= 0 {
		return expression[i+1:]
	}
	return expression
}
