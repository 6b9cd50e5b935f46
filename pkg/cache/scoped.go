package cache

// ScopedKeyer wraps a Keyer with a prefix, so a multi-tenant service can
// give each caller its own cache namespace without sharing memoized
// layouts across tenants that might run different tunable-constant
// profiles (internal/config).
//
// Example usage:
//
//	tenantKeyer := NewScopedKeyer(NewDefaultKeyer(), "tenant:acme:")
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
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) TreeKey(accessions []string, opts TreeKeyOpts) string {
	return k.prefix + k.inner.TreeKey(accessions, opts)
}

func (k *ScopedKeyer) LayoutKey(modelHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(modelHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
