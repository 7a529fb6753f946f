package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// The server uses this to keep per-deployment namespaces apart when several
// instances share one Redis.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "prod:")
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

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(chartHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(chartHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
