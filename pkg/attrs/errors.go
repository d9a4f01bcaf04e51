package attrs

import "errors"

var (
	// ErrInvalidBag is returned by SetMany for values that cannot be read as attribute pairs.
	ErrInvalidBag = errors.New("attrs: value is not an attribute bag")

	// ErrSetAttribute is returned when an attribute value cannot be serialized.
	ErrSetAttribute = errors.New("attrs: failed to set attribute")
)
