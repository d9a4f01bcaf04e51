package cache

// Option configures an LRU cache.
type Option func(*options)

type options struct {
	maxEntries int
}

func defaultOptions() *options {
	return &options{
		maxEntries: 1024,
	}
}

// WithMaxEntries sets the maximum number of cached entries.
// Zero or a negative value means unlimited.
// Default: 1024.
func WithMaxEntries(n int) Option {
	return func(o *options) {
		o.maxEntries = n
	}
}
