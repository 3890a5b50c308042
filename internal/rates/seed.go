package rates

// DefaultBaseCurrency is the base all seed rates are quoted against.
const DefaultBaseCurrency = "USD"

// Seed rates, approximate values for demonstration only. These are not live
// market rates and nothing refreshes them at runtime.
const (
	seedRateEUR = 0.92   // 1 USD ~ 0.92 EUR
	seedRateINR = 83.10  // 1 USD ~ 83.10 INR
	seedRateGBP = 0.79   // 1 USD ~ 0.79 GBP
	seedRateJPY = 141.50 // 1 USD ~ 141.50 JPY
	seedRateAUD = 1.47   // 1 USD ~ 1.47 AUD
	seedRateCAD = 1.34   // 1 USD ~ 1.34 CAD
)

// DefaultSeedRates returns a fresh copy of the demo rate table.
func DefaultSeedRates() map[string]float64 {
	return map[string]float64{
		"EUR": seedRateEUR,
		"INR": seedRateINR,
		"GBP": seedRateGBP,
		"JPY": seedRateJPY,
		"AUD": seedRateAUD,
		"CAD": seedRateCAD,
	}
}

// NewDefaultProvider creates a StaticTableProvider seeded with the demo
// rates against DefaultBaseCurrency.
func NewDefaultProvider() *StaticTableProvider {
	return NewStaticTableProvider(DefaultBaseCurrency, DefaultSeedRates())
}
