package internal

import (
	"context"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/fluent/pkg/exprpath"
	"github.com/dmitrymomot/fluent/pkg/logger"
	"github.com/dmitrymomot/fluent/pkg/metadata"
	"github.com/dmitrymomot/fluent/pkg/modelstate"
	"github.com/dmitrymomot/fluent/pkg/security"
	"github.com/dmitrymomot/fluent/pkg/urlgen"
)

// Translator translates a message key. It returns the key when no translation exists.
type Translator func(key string, values map[string]any) string

// Helper is the view context controls are built from.
// It carries the model, its validation state, the current principal and the
// services used to describe fields and generate URLs.
// A Helper is immutable after New and safe for concurrent use.
type Helper struct {
	model             any
	viewData          exprpath.Values
	state             *modelstate.State
	principal         security.Principal
	metadata          metadata.Provider
	routes            urlgen.Generator
	resolver          *exprpath.Resolver
	logger            *slog.Logger
	translate         Translator
	htmlPolicy        *bluemonday.Policy
	idReplacement     string
	ensureValidations bool
	clientValidation  bool
}

// New creates a Helper with the given options.
//
// Example:
//
//	h := fluent.New(
//	    fluent.WithModel(form),
//	    fluent.WithModelState(modelstate.FromValidationErrors(errs)),
//	    fluent.WithEnsureValidations(),
//	)
func New(opts ...Option) *Helper {
	h := &Helper{
		state:            modelstate.New(),
		metadata:         metadata.TagProvider{Humanize: true},
		resolver:         exprpath.NewResolver(),
		logger:           logger.NewNope(),
		idReplacement:    "_",
		clientValidation: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Model returns the model the helper binds controls to.
func (h *Helper) Model() any {
	return h.model
}

// ModelState returns the validation state. Never nil.
func (h *Helper) ModelState() *modelstate.State {
	return h.state
}

// Logger returns the helper's logger.
func (h *Helper) Logger() *slog.Logger {
	return h.logger
}

// top is the lookup for the first segment of a control name.
// View data shadows model properties of the same name.
func (h *Helper) top() exprpath.TopLevelLookup {
	root := h.resolver.Root(h.model)
	if len(h.viewData) == 0 {
		return root
	}
	return exprpath.Chain{h.viewData, root}
}

// Bind resolves name against the view data and model.
// Names that are not valid paths resolve to an empty binding.
func (h *Helper) Bind(ctx context.Context, name string) exprpath.Binding {
	b, err := h.resolver.Resolve(h.top(), name)
	if err != nil {
		h.logger.DebugContext(ctx, "name is not a model path", slog.String("error", err.Error()))
		return exprpath.Binding{Name: name}
	}
	return b
}

// Describe returns the metadata of the field name refers to.
func (h *Helper) Describe(ctx context.Context, name string) metadata.FieldDescriptor {
	return h.describe(h.Bind(ctx, name))
}

func (h *Helper) describe(b exprpath.Binding) metadata.FieldDescriptor {
	return h.metadata.Describe(metadata.TargetOf(b))
}

// Principal returns the configured principal, falling back to the one stored in ctx.
func (h *Helper) Principal(ctx context.Context) security.Principal {
	if h.principal != nil {
		return h.principal
	}
	if p, ok := security.FromContext(ctx); ok {
		return p
	}
	return nil
}

// T translates key, returning key unchanged when no translator is configured.
func (h *Helper) T(key string, values map[string]any) string {
	if h.translate == nil || key == "" {
		return key
	}
	return h.translate(key, values)
}

// ID returns the element id generated for name.
func (h *Helper) ID(name string) string {
	return SanitizeID(name, h.idReplacement)
}

// URL generates a URL for nav with the configured generator.
func (h *Helper) URL(nav urlgen.Navigation) (string, error) {
	if h.routes == nil {
		if nav.RouteName != "" {
			return "", ErrNoRoutes
		}
		return nav.URL, nil
	}
	return h.routes.URL(nav)
}
