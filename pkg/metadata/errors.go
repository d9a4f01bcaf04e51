package metadata

import "errors"

var (
	// ErrInvalidCatalog is returned when a catalog file cannot be parsed.
	ErrInvalidCatalog = errors.New("metadata: invalid catalog")
)
