package urlgen

import "errors"

var (
	// ErrUnknownRoute is returned for route names that were never registered.
	ErrUnknownRoute = errors.New("urlgen: unknown route")

	// ErrMissingParam is returned when a pattern parameter has no value.
	ErrMissingParam = errors.New("urlgen: missing route parameter")

	// ErrNoTarget is returned when a navigation names neither a route nor a URL.
	ErrNoTarget = errors.New("urlgen: navigation has no route or url")

	// ErrDuplicateRoute is returned when a route name is registered twice with different patterns.
	ErrDuplicateRoute = errors.New("urlgen: duplicate route name")
)
