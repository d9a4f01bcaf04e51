// Package fluent builds HTML form controls bound to Go models.
//
// Controls are created from a [Helper], configured with chained calls and
// rendered as templ components. Names are property paths resolved against the
// model, so a control finds its value, label text, validation attributes and
// error state from the name alone.
//
// # Quick Start
//
//	h := fluent.New(
//	    fluent.WithModel(form),
//	    fluent.WithModelState(state),
//	    fluent.WithEnsureValidations(),
//	)
//
//	h.Label("Customer.Email")
//	h.TextBox("Customer.Email").Class("form-control")
//	h.ValidationMessage("Customer.Email")
//
// In a templ template controls are used like any other component:
//
//	@h.DropDownList("Country").Items(countries).DataValueField("Code").DataTextField("Name").Placeholder("Choose")
//
// Outside templ, String renders with a background context and HTML returns
// template.HTML for html/template.
//
// # Model Binding
//
// The first segment of a name is looked up in view data ([WithViewData]) and
// then on the model. Later segments follow struct fields (matched by name,
// case-insensitively, or by form and json tags) and string-keyed map entries.
// An index such as "Lines[2]" selects from slices, arrays, integer-keyed maps
// and iterators. A nil value or missing index stops resolution without error:
// the control renders with no value.
//
// # Metadata
//
// Field metadata comes from struct tags by default:
//
//	type SignUp struct {
//	    Email string `display:"E-mail" placeholder:"you@example.com" datatype:"email" validate:"required,maxlen=100"`
//	    Age   int    `validate:"min=18,max=99"`
//	}
//
// Display names can be overridden per type from YAML catalogs, see the metadata package.
//
// # Model State
//
// After a failed post, pass the posted values and validation errors in a
// [ModelState]. Inputs redisplay the attempted value, get the
// input-validation-error class, and validation messages show the first error.
//
// # Security
//
// Controls accept a [Policy] naming roles that may read or write the field:
//
//	h.TextBox("Salary").SecureRoles(func(p *fluent.Policy) {
//	    p.Read("hr", "admin").Write("admin")
//	})
//
// The principal comes from [WithPrincipal] or from the render context.
// Unreadable values are hidden; unwritable inputs become read-only or disabled.
//
// # Errors
//
// Building never fails. Invalid names and attribute values are collected and
// returned by Render, wrapping errors such as [ErrBlankName] and [ErrNameHasSpaces].
package fluent
