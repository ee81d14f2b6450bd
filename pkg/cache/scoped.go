package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Useful when several sketchwall instances share one redis, or when
// tests need keys that cannot collide.
//
// Example usage:
//
//	// Instance-specific keys on a shared backend
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "wall-a:")
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

// BoardKey generates a prefixed key for a board snapshot.
func (k *ScopedKeyer) BoardKey(boardID string) string {
	return k.prefix + k.inner.BoardKey(boardID)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(boardHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(boardHash, opts)
}
