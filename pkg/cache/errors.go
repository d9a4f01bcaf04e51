package cache

import "errors"

// Sentinel errors for cache operations.
var (
	// ErrNotFound is returned when a key is not cached.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrCompute wraps errors returned by a GetOrSet compute function.
	ErrCompute = errors.New("cache: failed to compute value")
)
