package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This is useful when several projects share one Redis or Mongo instance
// and need separate cache namespaces.
//
// Example usage:
//
//	// Project-specific keys
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "proj:pipeline:")
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

// OrderKey generates a prefixed key for a cached topological order.
func (k *ScopedKeyer) OrderKey(fingerprint string) string {
	return k.prefix + k.inner.OrderKey(fingerprint)
}

// CycleKey generates a prefixed key for a cached cycle report.
func (k *ScopedKeyer) CycleKey(fingerprint string) string {
	return k.prefix + k.inner.CycleKey(fingerprint)
}

// RenderKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) RenderKey(fingerprint string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(fingerprint, opts)
}
