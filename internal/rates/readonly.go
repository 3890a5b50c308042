package rates

var _ Provider = (*ReadOnlyProvider)(nil)

// ReadOnlyProvider wraps another provider and refuses runtime overrides.
// Useful when a rate table must stay exactly as seeded, for example in
// deployments where overrides are applied out of band.
type ReadOnlyProvider struct {
	inner Provider
}

// ReadOnly wraps p so that SetCustomRate always fails with
// ErrCustomRatesUnsupported. Rate resolution is delegated unchanged.
func ReadOnly(p Provider) *ReadOnlyProvider {
	return &ReadOnlyProvider{inner: p}
}

func (r *ReadOnlyProvider) GetRate(from, to string) (float64, error) {
	return r.inner.GetRate(from, to)
}

func (r *ReadOnlyProvider) SetCustomRate(_, _ string, _ float64) error {
	return ErrCustomRatesUnsupported
}
