// Package internal provides the core types and implementation for fluent.
//
// This package is internal and should not be used directly. Import "github.com/dmitrymomot/fluent"
// instead, which re-exports the public API.
//
// # Core Types
//
//   - Helper: The view context. Holds the model, model state, principal,
//     metadata provider, URL generator, logger and translator
//   - Builder: Fluent mixin embedded by every control. Attributes, classes,
//     styles, data-* and hx-* attributes, security policy, collected errors
//   - TextBox, TextArea, CheckBox, RadioButton, DropDownList: Inputs bound to
//     model fields by name
//   - Label, ValidationMessage: Field decorations driven by metadata and model state
//   - Link, Button, Element: Markup that is not bound to a field
//
// Every control implements templ.Component, so it can be used directly in templ
// templates or rendered with String and HTML.
//
// # Binding
//
// A control name is a property path such as "Customer.Address.City" or
// "Lines[0].Qty". It is resolved against view data first and the model second.
// A name that cannot be resolved binds to nothing; its declared type is still
// used for metadata when the model is nil.
//
// Inputs pick their value from the attempted value in model state, then an
// explicit value, then the model. Field metadata supplies label text,
// placeholders and, with WithEnsureValidations, HTML5 validation attributes.
// Attributes set on the control are never overridden by computed ones.
//
// # Errors
//
// Building never fails. Errors such as a blank name are collected and returned
// by Render:
//
//	tb := h.TextBox(" ")
//	err := tb.Render(ctx, w) // errors.Is(err, ErrBlankName)
//
// # Security
//
// A control with a policy is checked against the principal at render time.
// Without read access values are hidden; without write access inputs become
// read-only or disabled. Both add the policy's denied class.
package internal
