// Package cache provides a bounded, concurrency-safe LRU cache for values that are
// expensive to compute and never change once computed, such as parsed expression
// paths and reflected type metadata.
//
// # Usage
//
//	c := cache.NewLRU[[]Step](cache.WithMaxEntries(1024))
//
//	steps, err := c.GetOrSet("Orders[0].Lines", func() ([]Step, error) {
//	    return parse("Orders[0].Lines")
//	})
//
// [LRU.GetOrSet] uses singleflight so concurrent misses for the same key run the
// compute function once. Errors are returned to every waiting caller and are not
// cached.
//
// # Eviction
//
// When [WithMaxEntries] is set, the least recently used entry is evicted once the
// limit is reached.
//
// # Error Handling
//
//   - [ErrNotFound]: key is not cached
//   - [ErrCompute]: wraps errors returned by the compute function
package cache
