package rates

import (
	"errors"
	"strings"
)

// ErrNegativeAmount is returned when a conversion is requested for a negative amount.
var ErrNegativeAmount = errors.New("amount cannot be negative")

// ErrInvalidRate is returned when a caller supplies a non-positive rate.
var ErrInvalidRate = errors.New("rate must be positive")

// ErrCustomRatesUnsupported is returned by providers that do not accept
// runtime rate overrides. Callers should treat it as recoverable.
var ErrCustomRatesUnsupported = errors.New("custom rates not supported by this provider")

// UnsupportedCurrencyError reports which currency codes have no rate in the
// provider's table.
type UnsupportedCurrencyError struct {
	Codes []string
}

func (e *UnsupportedCurrencyError) Error() string {
	return "unsupported currency code(s): " + strings.Join(e.Codes, ", ")
}
