package urlgen

import (
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fluent/pkg/attrvalue"
)

// Navigation describes a link target: a named route or a URL, plus values.
type Navigation struct {
	RouteName string
	URL       string
	Values    map[string]any
}

// IsZero reports whether the navigation has no target.
func (n Navigation) IsZero() bool {
	return n.RouteName == "" && n.URL == "" && len(n.Values) == 0
}

// Generator builds URLs for navigations.
type Generator interface {
	URL(nav Navigation) (string, error)
}

// Option configures Routes.
type Option func(*Routes)

// WithRouter registers routes on an existing chi router.
func WithRouter(r chi.Router) Option {
	return func(rt *Routes) {
		if r != nil {
			rt.router = r
		}
	}
}

// WithBasePath sets the prefix prepended to generated paths and used to resolve "~/".
func WithBasePath(base string) Option {
	return func(rt *Routes) {
		rt.base = strings.TrimRight(base, "/")
	}
}

// Routes is a registry of named chi routes. It implements Generator and http.Handler.
type Routes struct {
	router   chi.Router
	base     string
	mu       sync.RWMutex
	patterns map[string]string
}

var _ Generator = (*Routes)(nil)

// New creates a Routes registry backed by a new chi router unless WithRouter is given.
func New(opts ...Option) *Routes {
	r := &Routes{
		router:   chi.NewRouter(),
		patterns: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Router returns the underlying chi router.
func (r *Routes) Router() chi.Router {
	return r.router
}

// ServeHTTP implements http.Handler.
func (r *Routes) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// Name records pattern under name without registering a handler.
// Registering the same name with a different pattern fails.
func (r *Routes) Name(name, pattern string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.patterns[name]; ok && existing != pattern {
		return fmt.Errorf("%w: %q is %q, not %q", ErrDuplicateRoute, name, existing, pattern)
	}
	r.patterns[name] = pattern
	return nil
}

// Handle registers h for method and pattern on the router and names the route.
func (r *Routes) Handle(name, method, pattern string, h http.Handler) error {
	if err := r.Name(name, pattern); err != nil {
		return err
	}
	r.router.Method(method, pattern, h)
	return nil
}

// HandleFunc is Handle for handler functions.
func (r *Routes) HandleFunc(name, method, pattern string, h http.HandlerFunc) error {
	return r.Handle(name, method, pattern, h)
}

// Pattern returns the pattern registered under name.
func (r *Routes) Pattern(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patterns[name]
	return p, ok
}

// Match reports whether the router has a handler for method and path.
// path is matched as given, without the base path.
func (r *Routes) Match(method, path string) bool {
	return r.router.Match(chi.NewRouteContext(), method, path)
}

// URL implements Generator.
func (r *Routes) URL(nav Navigation) (string, error) {
	switch {
	case nav.RouteName != "":
		return r.Path(nav.RouteName, nav.Values)
	case nav.URL != "":
		return withQuery(r.Content(nav.URL), nav.Values), nil
	}
	return "", ErrNoTarget
}

// Path builds the path of a named route.
func (r *Routes) Path(name string, values map[string]any) (string, error) {
	pattern, ok := r.Pattern(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	rest := maps.Clone(values)
	path, err := expand(pattern, rest)
	if err != nil {
		return "", fmt.Errorf("route %q: %w", name, err)
	}
	return withQuery(r.base+path, rest), nil
}

// Content resolves an application-relative "~/" path against the base path.
// Other URLs are returned unchanged.
func (r *Routes) Content(u string) string {
	if rest, ok := strings.CutPrefix(u, "~/"); ok {
		return r.base + "/" + rest
	}
	if u == "~" {
		return r.base + "/"
	}
	return u
}

// expand substitutes {param} and {param:regexp} placeholders and a trailing "*"
// wildcard. Used values are deleted from values.
func expand(pattern string, values map[string]any) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '{':
			end := closingBrace(pattern, i)
			if end < 0 {
				return "", fmt.Errorf("unbalanced braces in pattern %q", pattern)
			}
			name, _, _ := strings.Cut(pattern[i+1:end], ":")
			v, ok := take(values, name)
			if !ok {
				return "", fmt.Errorf("%w: %q", ErrMissingParam, name)
			}
			b.WriteString(url.PathEscape(v))
			i = end
		case c == '*' && i == len(pattern)-1:
			if v, ok := take(values, "*"); ok {
				b.WriteString(v)
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func closingBrace(s string, open int) int {
	depth := 0
	for j := open; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func take(values map[string]any, name string) (string, bool) {
	for k, v := range values {
		if strings.EqualFold(k, name) {
			delete(values, k)
			if attrvalue.IsNil(v) {
				return "", false
			}
			return attrvalue.Format(v, ""), true
		}
	}
	return "", false
}

func withQuery(u string, values map[string]any) string {
	q := url.Values{}
	for k, v := range values {
		if attrvalue.IsNil(v) {
			continue
		}
		q.Set(k, attrvalue.Format(v, ""))
	}
	if len(q) == 0 {
		return u
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + q.Encode()
}
