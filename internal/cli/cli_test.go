package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runScript(t *testing.T, input string) string {
	t.Helper()
	var out strings.Builder
	NewApp(strings.NewReader(input), &out).Run()
	return out.String()
}

func TestRun_ConvertAndExit(t *testing.T) {
	out := runScript(t, "1\nusd\neur\n100\n0\n")

	assert.Contains(t, out, "100.00 USD = 92.00 EUR")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_ConvertUnsupportedCode(t *testing.T) {
	out := runScript(t, "1\nUSD\nZZZ\n10\n0\n")

	assert.Contains(t, out, "unsupported currency code(s): ZZZ")
}

func TestRun_ListCurrencies(t *testing.T) {
	out := runScript(t, "2\n0\n")

	assert.Contains(t, out, "US Dollar")
	assert.Contains(t, out, "Euro")
	// Sorted listing: AUD comes before USD.
	assert.Less(t, strings.Index(out, "AUD"), strings.Index(out, "USD"))
}

func TestRun_CustomRateOverridesConversion(t *testing.T) {
	out := runScript(t, "3\nUSD\nEUR\n0.95\n1\nUSD\nEUR\n100\n0\n")

	assert.Contains(t, out, "Custom rate updated")
	assert.Contains(t, out, "100.00 USD = 95.00 EUR")
}

func TestRun_CustomRateRejectsNonPositive(t *testing.T) {
	out := runScript(t, "3\nUSD\nEUR\n-1\n0\n")

	assert.Contains(t, out, "rate must be positive")
}

func TestRun_RegisterCurrencyThenConvert(t *testing.T) {
	out := runScript(t, "4\nchf\n0.88\nSwiss Franc\nFr\n1\nUSD\nCHF\n100\n0\n")

	assert.Contains(t, out, "Registered CHF.")
	assert.Contains(t, out, "100.00 USD = 88.00 CHF")
}

func TestRun_InvalidMenuChoice(t *testing.T) {
	out := runScript(t, "9\n0\n")

	assert.Contains(t, out, "Unknown choice")
}

func TestRun_InvalidNumberReprompts(t *testing.T) {
	out := runScript(t, "1\nUSD\nEUR\nabc\n50\n0\n")

	assert.Contains(t, out, "Invalid number. Try again.")
	assert.Contains(t, out, "50.00 USD = 46.00 EUR")
}

func TestRun_EOFStopsLoop(t *testing.T) {
	out := runScript(t, "")

	assert.Contains(t, out, "Choose an option:")
}
