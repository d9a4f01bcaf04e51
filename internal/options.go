package internal

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/fluent/pkg/exprpath"
	"github.com/dmitrymomot/fluent/pkg/metadata"
	"github.com/dmitrymomot/fluent/pkg/modelstate"
	"github.com/dmitrymomot/fluent/pkg/security"
	"github.com/dmitrymomot/fluent/pkg/urlgen"
)

// Option configures the helper.
type Option func(*Helper)

// WithModel sets the object control names are resolved against.
//
// Example:
//
//	fluent.New(fluent.WithModel(&SignUpForm{Email: "a@b.c"}))
func WithModel(model any) Option {
	return func(h *Helper) {
		h.model = model
	}
}

// WithViewData adds named values consulted before the model.
// Keys match the first segment of a control name case-insensitively.
func WithViewData(values map[string]any) Option {
	return func(h *Helper) {
		if h.viewData == nil {
			h.viewData = make(exprpath.Values, len(values))
		}
		for k, v := range values {
			h.viewData[k] = v
		}
	}
}

// WithModelState sets the validation state used for error classes,
// attempted values and validation messages.
func WithModelState(state *modelstate.State) Option {
	return func(h *Helper) {
		if state != nil {
			h.state = state
		}
	}
}

// WithPrincipal sets the principal checked by secured controls.
// Without it the principal is taken from the render context, see security.WithPrincipal.
func WithPrincipal(p security.Principal) Option {
	return func(h *Helper) {
		h.principal = p
	}
}

// WithMetadata sets the field metadata provider.
// Default: struct tags with humanized field names.
//
// Example:
//
//	catalog, _ := metadata.LoadCatalog(labelsFS)
//	fluent.New(fluent.WithMetadata(metadata.CatalogProvider{
//	    Catalog: catalog,
//	    Next:    metadata.TagProvider{Humanize: true},
//	}))
func WithMetadata(p metadata.Provider) Option {
	return func(h *Helper) {
		if p != nil {
			h.metadata = p
		}
	}
}

// WithRoutes sets the URL generator links use for named routes.
func WithRoutes(g urlgen.Generator) Option {
	return func(h *Helper) {
		h.routes = g
	}
}

// WithResolver sets the path resolver. Default: exprpath.NewResolver().
func WithResolver(r *exprpath.Resolver) Option {
	return func(h *Helper) {
		if r != nil {
			h.resolver = r
		}
	}
}

// WithLogger sets the logger. Default: a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Helper) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithTranslator sets the function used to translate labels, placeholders
// and validation messages.
func WithTranslator(t Translator) Option {
	return func(h *Helper) {
		h.translate = t
	}
}

// WithIDDotReplacement sets the string that replaces invalid id characters,
// dots and brackets included. Default: "_".
func WithIDDotReplacement(s string) Option {
	return func(h *Helper) {
		h.idReplacement = s
	}
}

// WithEnsureValidations makes inputs carry HTML5 validation attributes
// (required, maxlength, minlength, min, max) derived from field metadata.
func WithEnsureValidations() Option {
	return func(h *Helper) {
		h.ensureValidations = true
	}
}

// WithClientValidation toggles the data-valmsg-* attributes on validation
// messages. Default: enabled.
func WithClientValidation(enabled bool) Option {
	return func(h *Helper) {
		h.clientValidation = enabled
	}
}

// WithHTMLPolicy sets the sanitizer policy for Element.HTML and Element.Markdown.
// Default: sanitizer's inline formatting policy.
func WithHTMLPolicy(p *bluemonday.Policy) Option {
	return func(h *Helper) {
		h.htmlPolicy = p
	}
}
