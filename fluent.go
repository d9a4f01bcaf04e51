package fluent

import (
	"log/slog"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/fluent/internal"
	"github.com/dmitrymomot/fluent/pkg/exprpath"
	"github.com/dmitrymomot/fluent/pkg/metadata"
	"github.com/dmitrymomot/fluent/pkg/modelstate"
	"github.com/dmitrymomot/fluent/pkg/security"
	"github.com/dmitrymomot/fluent/pkg/urlgen"
)

// Type aliases - public API
type (
	// Helper is the view context controls are built from.
	Helper = internal.Helper

	// Option configures the helper.
	Option = internal.Option

	// Translator translates a message key, returning the key when no translation exists.
	Translator = internal.Translator

	// Builder is the fluent mixin shared by all controls.
	Builder[B templ.Component] = internal.Builder[B]

	// TextBox renders an input bound to a model field.
	TextBox = internal.TextBox

	// InputType is the type attribute of an input element.
	InputType = internal.InputType

	// TextArea renders a textarea bound to a model field.
	TextArea = internal.TextArea

	// CheckBox renders a checkbox and its hidden "false" input.
	CheckBox = internal.CheckBox

	// RadioButton renders a radio input for one value of a model field.
	RadioButton = internal.RadioButton

	// DropDownList renders a select bound to a model field.
	DropDownList = internal.DropDownList

	// SelectItem is one option of a drop-down list.
	SelectItem = internal.SelectItem

	// SelectGroup is a labelled group of options.
	SelectGroup = internal.SelectGroup

	// InputList renders a list of checkboxes or radio buttons, one per item.
	InputList = internal.InputList

	// Label renders a label for a model field.
	Label = internal.Label

	// ValidationMessage renders the first validation error of a field.
	ValidationMessage = internal.ValidationMessage

	// Link renders an anchor whose href comes from a route or URL.
	Link = internal.Link

	// Button renders a button element.
	Button = internal.Button

	// ButtonType is the type attribute of a button element.
	ButtonType = internal.ButtonType

	// Element renders an arbitrary element.
	Element = internal.Element
)

// Collaborator aliases
type (
	// Principal is the current user as seen by secured controls.
	Principal = security.Principal

	// Roles is a static set of role names implementing Principal.
	Roles = security.Roles

	// Policy controls read and write access to a control.
	Policy = security.Policy

	// ModelState holds per-field validation errors and attempted values.
	ModelState = modelstate.State

	// ValidationErrors is a list of field validation errors.
	ValidationErrors = modelstate.ValidationErrors

	// FieldError is a single field validation error.
	FieldError = modelstate.FieldError

	// Navigation describes a link target.
	Navigation = urlgen.Navigation

	// FieldDescriptor is the display and validation metadata of one field.
	FieldDescriptor = metadata.FieldDescriptor
)

// Input types.
const (
	InputText          = internal.InputText
	InputPassword      = internal.InputPassword
	InputHidden        = internal.InputHidden
	InputEmail         = internal.InputEmail
	InputNumber        = internal.InputNumber
	InputRange         = internal.InputRange
	InputSearch        = internal.InputSearch
	InputTel           = internal.InputTel
	InputURL           = internal.InputURL
	InputDate          = internal.InputDate
	InputDateTimeLocal = internal.InputDateTimeLocal
	InputMonth         = internal.InputMonth
	InputTime          = internal.InputTime
	InputWeek          = internal.InputWeek
	InputColor         = internal.InputColor
	InputCheckbox      = internal.InputCheckbox
	InputRadio         = internal.InputRadio
)

// Button types.
const (
	ButtonButton = internal.ButtonButton
	ButtonSubmit = internal.ButtonSubmit
	ButtonReset  = internal.ButtonReset
)

// CSS classes added by controls.
const (
	InputValidationErrorClass = internal.InputValidationErrorClass
	FieldValidationErrorClass = internal.FieldValidationErrorClass
	FieldValidationValidClass = internal.FieldValidationValidClass
	DefaultDeniedClass        = security.DefaultDeniedClass
)

// Control errors
var (
	ErrBlankName      = internal.ErrBlankName
	ErrNameHasSpaces  = internal.ErrNameHasSpaces
	ErrNoRoutes       = internal.ErrNoRoutes
	ErrInvalidItems   = internal.ErrInvalidItems
	ErrUnknownElement = internal.ErrUnknownElement
)

// New creates a helper with the given options.
// The helper is immutable after creation and safe for concurrent use.
//
// Example:
//
//	h := fluent.New(
//	    fluent.WithModel(form),
//	    fluent.WithModelState(modelstate.FromForm(r.PostForm, errs)),
//	    fluent.WithRoutes(routes),
//	    fluent.WithEnsureValidations(),
//	)
//
//	h.Label("Email")
//	h.TextBox("Email").Class("form-control")
//	h.ValidationMessage("Email")
func New(opts ...Option) *Helper {
	return internal.New(opts...)
}

// NewPolicy creates a security policy that grants everyone until roles are added.
func NewPolicy() *Policy {
	return security.NewPolicy()
}

// SanitizeID turns a control name into a valid HTML id, replacing invalid
// characters with replacement.
func SanitizeID(name, replacement string) string {
	return internal.SanitizeID(name, replacement)
}

// Helper options

// WithModel sets the object control names are resolved against.
func WithModel(model any) Option {
	return internal.WithModel(model)
}

// WithViewData adds named values consulted before the model.
func WithViewData(values map[string]any) Option {
	return internal.WithViewData(values)
}

// WithModelState sets the validation state.
func WithModelState(state *ModelState) Option {
	return internal.WithModelState(state)
}

// WithPrincipal sets the principal checked by secured controls.
// Without it the principal is read from the render context.
func WithPrincipal(p Principal) Option {
	return internal.WithPrincipal(p)
}

// WithMetadata sets the field metadata provider.
func WithMetadata(p metadata.Provider) Option {
	return internal.WithMetadata(p)
}

// WithRoutes sets the URL generator used by links.
func WithRoutes(g urlgen.Generator) Option {
	return internal.WithRoutes(g)
}

// WithResolver sets the path resolver.
func WithResolver(r *exprpath.Resolver) Option {
	return internal.WithResolver(r)
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithTranslator sets the function used to translate labels, placeholders and messages.
func WithTranslator(t Translator) Option {
	return internal.WithTranslator(t)
}

// WithIDDotReplacement sets the string replacing invalid id characters. Default: "_".
func WithIDDotReplacement(s string) Option {
	return internal.WithIDDotReplacement(s)
}

// WithEnsureValidations adds HTML5 validation attributes derived from field metadata.
func WithEnsureValidations() Option {
	return internal.WithEnsureValidations()
}

// WithClientValidation toggles data-valmsg-* attributes on validation messages.
func WithClientValidation(enabled bool) Option {
	return internal.WithClientValidation(enabled)
}

// WithHTMLPolicy sets the sanitizer policy for Element.InnerHTML and Element.Markdown.
func WithHTMLPolicy(p *bluemonday.Policy) Option {
	return internal.WithHTMLPolicy(p)
}
