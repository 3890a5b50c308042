package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOnlyProvider_DelegatesGetRate(t *testing.T) {
	ro := ReadOnly(NewDefaultProvider())

	rate, err := ro.GetRate("USD", "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 0.92, rate, 1e-12)
}

func TestReadOnlyProvider_RefusesCustomRates(t *testing.T) {
	inner := NewDefaultProvider()
	ro := ReadOnly(inner)

	err := ro.SetCustomRate("USD", "EUR", 0.95)
	assert.ErrorIs(t, err, ErrCustomRatesUnsupported)

	// The wrapped provider is untouched: triangulated rate still applies.
	rate, err := ro.GetRate("USD", "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 0.92, rate, 1e-12)
}
