package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. Useful
// when one backend serves several deployments or test runs that must not see
// each other's entries.
//
// Example usage:
//
//	// Per-instance keys for a staging server
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
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

// GeometryKey generates a prefixed key for geometry caching.
func (k *ScopedKeyer) GeometryKey(objectType string, dimension int, opts GeometryKeyOpts) string {
	return k.prefix + k.inner.GeometryKey(objectType, dimension, opts)
}

// TransformKey generates a prefixed key for transformed vertex caching.
func (k *ScopedKeyer) TransformKey(geometryHash string, opts TransformKeyOpts) string {
	return k.prefix + k.inner.TransformKey(geometryHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(transformHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(transformHash, opts)
}
