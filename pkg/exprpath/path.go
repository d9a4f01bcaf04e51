package exprpath

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrymomot/fluent/pkg/cache"
)

// Step is one parsed path segment.
type Step struct {
	Name    string
	Index   int
	Indexed bool
}

func (s Step) String() string {
	if !s.Indexed {
		return s.Name
	}
	return s.Name + "[" + strconv.Itoa(s.Index) + "]"
}

// Parse splits path into steps without caching.
func Parse(path string) ([]Step, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrMalformedPath)
	}

	segments := strings.Split(path, ".")
	steps := make([]Step, 0, len(segments))
	for _, seg := range segments {
		st, err := parseSegment(seg)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %s", ErrMalformedPath, path, err)
		}
		steps = append(steps, st)
	}
	return steps, nil
}

func parseSegment(seg string) (Step, error) {
	if seg == "" {
		return Step{}, fmt.Errorf("empty segment")
	}

	name, rest, indexed := strings.Cut(seg, "[")
	if name == "" {
		return Step{}, fmt.Errorf("segment %q has no name", seg)
	}
	if i := strings.IndexFunc(name, invalidNameRune); i >= 0 {
		return Step{}, fmt.Errorf("segment %q has invalid character %q", seg, name[i])
	}
	if !indexed {
		return Step{Name: name}, nil
	}

	digits, ok := strings.CutSuffix(rest, "]")
	if !ok {
		return Step{}, fmt.Errorf("segment %q has unbalanced brackets", seg)
	}
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return Step{}, fmt.Errorf("segment %q has non-numeric index", seg)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Step{}, fmt.Errorf("segment %q index: %w", seg, err)
	}
	return Step{Name: name, Index: n, Indexed: true}, nil
}

func invalidNameRune(r rune) bool {
	return r == '[' || r == ']' || unicode.IsSpace(r)
}

// Format joins steps back into path form.
func Format(steps []Step) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// Parser parses paths and memoizes the results, including parse errors.
// It is safe for concurrent use.
type Parser struct {
	cache *cache.LRU[parsed]
}

type parsed struct {
	steps []Step
	err   error
}

// NewParser creates a Parser caching up to maxEntries paths.
// A non-positive maxEntries disables the bound.
func NewParser(maxEntries int) *Parser {
	return &Parser{cache: cache.NewLRU[parsed](cache.WithMaxEntries(maxEntries))}
}

// Parse returns the steps of path. The returned slice is owned by the caller.
func (p *Parser) Parse(path string) ([]Step, error) {
	res, _ := p.cache.GetOrSet(path, func() (parsed, error) {
		steps, err := Parse(path)
		return parsed{steps: steps, err: err}, nil
	})
	if res.err != nil {
		return nil, res.err
	}
	return slices.Clone(res.steps), nil
}

// Len returns the number of cached paths.
func (p *Parser) Len() int {
	return p.cache.Len()
}
