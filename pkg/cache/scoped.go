package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This is useful when several deployments share one cache backend.
//
// Example usage:
//
//	// Keys for a staging deployment
//	staging := NewScopedKeyer(NewDefaultKeyer(), "staging:")
//
//	// Global keys
//	global := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// UsageKey generates a prefixed key for usage caching.
func (k *ScopedKeyer) UsageKey(username string, opts UsageKeyOpts) string {
	return k.prefix + k.inner.UsageKey(username, opts)
}

// CardKey generates a prefixed key for card caching.
func (k *ScopedKeyer) CardKey(usageHash string, opts CardKeyOpts) string {
	return k.prefix + k.inner.CardKey(usageHash, opts)
}
