package rates

// Converter multiplies amounts by provider-resolved rates. It holds no state
// beyond the provider reference and applies no rounding; formatting a result
// to a fixed number of decimals is a presentation concern.
type Converter struct {
	provider Provider
}

// NewConverter creates a Converter backed by the given provider.
func NewConverter(provider Provider) *Converter {
	return &Converter{provider: provider}
}

// Convert returns amount expressed in the to currency. A negative amount is
// rejected with ErrNegativeAmount; provider errors pass through unchanged.
func (c *Converter) Convert(from, to string, amount float64) (float64, error) {
	result, _, err := c.ConvertWithRate(from, to, amount)
	return result, err
}

// ConvertWithRate is Convert plus the rate that produced the result. The rate
// is resolved exactly once, so result and rate always agree even when the
// provider's tables change concurrently.
func (c *Converter) ConvertWithRate(from, to string, amount float64) (result, rate float64, err error) {
	if amount < 0 {
		return 0, 0, ErrNegativeAmount
	}
	rate, err = c.provider.GetRate(from, to)
	if err != nil {
		return 0, 0, err
	}
	return amount * rate, rate, nil
}
