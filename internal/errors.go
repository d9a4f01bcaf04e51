package internal

import "errors"

// Control errors.
var (
	ErrBlankName      = errors.New("fluent: control name is blank")
	ErrNameHasSpaces  = errors.New("fluent: control name contains spaces")
	ErrNoRoutes       = errors.New("fluent: link needs a route but no URL generator is configured")
	ErrInvalidItems   = errors.New("fluent: unsupported option source")
	ErrUnknownElement = errors.New("fluent: element tag is blank or invalid")
)
