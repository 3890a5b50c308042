package catalog

import (
	"sort"
	"testing"
)

func TestNewDefault(t *testing.T) {
	c := NewDefault()

	list := c.List()
	if len(list) != 7 {
		t.Fatalf("expected 7 seed currencies, got %d", len(list))
	}
	if !sort.SliceIsSorted(list, func(i, j int) bool { return list[i].Code < list[j].Code }) {
		t.Error("List() should be sorted by code")
	}

	usd, ok := c.Get("usd")
	if !ok {
		t.Fatal("expected USD in default catalog (lookup should be case-insensitive)")
	}
	if usd.Name != "US Dollar" || usd.Symbol != "$" {
		t.Errorf("unexpected USD record: %+v", usd)
	}
}

func TestRegister(t *testing.T) {
	c := New()
	c.Register(Currency{Code: "chf", Name: "Swiss Franc", Symbol: "CHF"})

	got, ok := c.Get("CHF")
	if !ok {
		t.Fatal("expected CHF after Register")
	}
	if got.Code != "CHF" {
		t.Errorf("expected code normalized to CHF, got %s", got.Code)
	}

	// Overwrite is allowed.
	c.Register(Currency{Code: "CHF", Name: "Franc", Symbol: "₣"})
	got, _ = c.Get("CHF")
	if got.Name != "Franc" {
		t.Errorf("expected overwritten name, got %s", got.Name)
	}
}

func TestGetUnknown(t *testing.T) {
	c := NewDefault()
	if _, ok := c.Get("ZZZ"); ok {
		t.Error("expected lookup miss for ZZZ")
	}
}
