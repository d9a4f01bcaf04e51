package attrvalue

import "errors"

// Sentinel errors for attribute value serialization.
var (
	// ErrSerialize is returned when a value cannot be converted to an attribute string.
	ErrSerialize = errors.New("attrvalue: failed to serialize value")

	// ErrUnsupportedValue is returned for values that have no JSON representation.
	ErrUnsupportedValue = errors.New("attrvalue: unsupported value")
)
