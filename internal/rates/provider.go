// Package rates implements exchange rate resolution and amount conversion.
package rates

// Provider defines an interface for resolving the multiplier that converts
// an amount in the from currency into the to currency.
type Provider interface {
	GetRate(from, to string) (float64, error)

	// SetCustomRate overrides the rate for one ordered currency pair.
	// Providers without runtime overrides return ErrCustomRatesUnsupported.
	SetCustomRate(from, to string, rate float64) error
}

// Registry extends Provider with rate table management.
type Registry interface {
	Provider
	RegisterCurrency(code string, rateVsBase float64) error
	SupportedCodes() []string
}

