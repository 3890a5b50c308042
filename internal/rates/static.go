package rates

import (
	"fmt"
	"strings"
	"sync"
)

var _ Registry = (*StaticTableProvider)(nil)

// codePair is an ordered (from, to) key for the override table.
// An override for A->B says nothing about B->A.
type codePair struct {
	from string
	to   string
}

// StaticTableProvider resolves rates from an in-memory table keyed vs a
// single base currency. Any from/to pair is triangulated through the base,
// so only N rates are stored instead of N^2 directly quoted pairs.
// Triangulation compounds rounding error, which is what per-pair overrides
// are for: a caller can pin a directly quoted rate for one ordered pair.
//
// A single mutex guards both tables; the provider is shared between HTTP
// handlers and the background worker.
type StaticTableProvider struct {
	mu        sync.RWMutex
	base      string
	baseRates map[string]float64 // code -> units of code per 1 unit of base
	overrides map[codePair]float64
}

// NewStaticTableProvider creates a provider with the given base currency and
// seed table of code -> rate vs base. The base is always pinned at 1.0,
// overriding whatever the seed says for it.
func NewStaticTableProvider(base string, seed map[string]float64) *StaticTableProvider {
	p := &StaticTableProvider{
		base:      strings.ToUpper(base),
		baseRates: make(map[string]float64, len(seed)+1),
		overrides: make(map[codePair]float64),
	}
	for code, rate := range seed {
		p.baseRates[strings.ToUpper(code)] = rate
	}
	p.baseRates[p.base] = 1.0
	return p
}

// BaseCurrency returns the code all table rates are expressed against.
func (p *StaticTableProvider) BaseCurrency() string {
	return p.base
}

// GetRate returns the multiplier converting from -> to.
// Resolution order: identity, exact ordered-pair override, triangulation
// through the base. Identity wins even over an override for (X, X).
func (p *StaticTableProvider) GetRate(from, to string) (float64, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return 1.0, nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if rate, ok := p.overrides[codePair{from, to}]; ok {
		return rate, nil
	}

	rateFrom, okFrom := p.baseRates[from]
	rateTo, okTo := p.baseRates[to]
	if !okFrom || !okTo {
		e := &UnsupportedCurrencyError{}
		if !okFrom {
			e.Codes = append(e.Codes, from)
		}
		if !okTo {
			e.Codes = append(e.Codes, to)
		}
		return 0, e
	}

	// from -> base -> to
	return rateTo / rateFrom, nil
}

// SetCustomRate pins a directly quoted rate for one ordered pair, bypassing
// triangulation. The codes are not required to be in the rate table: an
// override can make an otherwise unsupported pair resolvable.
func (p *StaticTableProvider) SetCustomRate(from, to string, rate float64) error {
	if rate <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, rate)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.overrides[codePair{strings.ToUpper(from), strings.ToUpper(to)}] = rate
	return nil
}

// RegisterCurrency inserts or overwrites the table rate for a code.
// Non-positive rates are rejected for symmetry with SetCustomRate, and the
// base cannot be moved off 1.0.
func (p *StaticTableProvider) RegisterCurrency(code string, rateVsBase float64) error {
	if rateVsBase <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidRate, rateVsBase)
	}
	code = strings.ToUpper(code)

	p.mu.Lock()
	defer p.mu.Unlock()
	if code == p.base && rateVsBase != 1.0 {
		return fmt.Errorf("%w: base currency %s is fixed at 1.0", ErrInvalidRate, p.base)
	}
	p.baseRates[code] = rateVsBase
	return nil
}

// SupportedCodes returns the codes currently in the rate table, in no
// particular order. Callers needing a stable display order must sort.
func (p *StaticTableProvider) SupportedCodes() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	codes := make([]string, 0, len(p.baseRates))
	for code := range p.baseRates {
		codes = append(codes, code)
	}
	return codes
}
