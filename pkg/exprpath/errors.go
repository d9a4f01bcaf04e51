package exprpath

import "errors"

var (
	// ErrMalformedPath is returned when a path does not follow the segment grammar.
	ErrMalformedPath = errors.New("exprpath: malformed path")
)
