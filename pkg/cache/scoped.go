package cache

// ScopedKeyer prefixes every key of an inner Keyer. Preview servers
// sharing one Redis database use it to keep their entries apart:
//
//	keyer := cache.NewScopedKeyer(nil, "gradientlab:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer returns a keyer that prepends prefix to inner's keys.
// A nil inner uses DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PreviewKey generates a prefixed preview key.
func (k *ScopedKeyer) PreviewKey(specHash string, opts PreviewKeyOpts) string {
	return k.prefix + k.inner.PreviewKey(specHash, opts)
}
