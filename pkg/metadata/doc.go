// Package metadata describes model fields for form controls: display names,
// descriptions, placeholders and validation hints.
//
// A [Provider] turns a [Target] (a struct field reached by a property path) into
// a [FieldDescriptor]. [TagProvider] reads struct tags:
//
//	type SignUp struct {
//	    Email string `display:"E-mail address" placeholder:"you@example.com" validate:"required,maxlen=120" datatype:"email"`
//	    Age   int    `validate:"min=18,max=130"`
//	}
//
// [Catalog] overrides display text per type and field from YAML, so labels can be
// edited without recompiling:
//
//	SignUp:
//	  Email:
//	    display: Work e-mail
//	    description: We never share it.
//
// [Label] picks the text for a label element: the display name, then the property
// name, then the last segment of the expression.
package metadata
