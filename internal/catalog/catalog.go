// Package catalog holds descriptive currency metadata for presentation.
// The catalog has no bearing on conversion math: the rate provider decides
// what is convertible, the catalog only knows how to display it.
package catalog

import (
	"sort"
	"strings"
	"sync"
)

// Currency is a descriptive record for one currency code.
type Currency struct {
	Code   string
	Name   string
	Symbol string
}

// Catalog is a code-keyed set of Currency records.
type Catalog struct {
	mu         sync.RWMutex
	currencies map[string]Currency
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{currencies: make(map[string]Currency)}
}

// NewDefault creates a catalog seeded with the demo currencies.
func NewDefault() *Catalog {
	c := New()
	for _, cur := range seedCurrencies() {
		c.Register(cur)
	}
	return c
}

// seedCurrencies mirrors the demo rate table. In a larger system this would
// come from a database or config file.
func seedCurrencies() []Currency {
	return []Currency{
		{Code: "USD", Name: "US Dollar", Symbol: "$"},
		{Code: "EUR", Name: "Euro", Symbol: "€"},
		{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
		{Code: "GBP", Name: "British Pound", Symbol: "£"},
		{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
		{Code: "AUD", Name: "Australian Dollar", Symbol: "$"},
		{Code: "CAD", Name: "Canadian Dollar", Symbol: "$"},
	}
}

// Register inserts or overwrites the record for a code.
func (c *Catalog) Register(cur Currency) {
	cur.Code = strings.ToUpper(cur.Code)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.currencies[cur.Code] = cur
}

// Get returns the record for a code, if present.
func (c *Catalog) Get(code string) (Currency, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cur, ok := c.currencies[strings.ToUpper(code)]
	return cur, ok
}

// List returns all records sorted by code.
func (c *Catalog) List() []Currency {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Currency, 0, len(c.currencies))
	for _, cur := range c.currencies {
		out = append(out, cur)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
