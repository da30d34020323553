package fertilizer

import (
	"testing"
)

// TestDefaultCatalogAgreesWithNormalizer proves every canonical alias
// target has a catalog entry, so normalized names are always quotable
func TestDefaultCatalogAgreesWithNormalizer(t *testing.T) {
	catalog := DefaultCatalog()
	for alias, canonical := range Aliases() {
		if _, ok := catalog.Get(canonical); !ok {
			t.Errorf("canonical name %q (alias %q) missing from catalog", canonical, alias)
		}
	}
}

// TestCatalogLookupNormalizes tests that catalog lookups accept aliases
func TestCatalogLookupNormalizes(t *testing.T) {
	catalog := DefaultCatalog()

	p, ok := catalog.Get("muriate of potash")
	if !ok {
		t.Fatal("expected catalog hit for alias lookup")
	}
	if p.Name != "MOP" {
		t.Errorf("expected MOP, got %q", p.Name)
	}
	if p.NPK != "0-0-60" {
		t.Errorf("expected NPK 0-0-60, got %q", p.NPK)
	}
}

// TestCatalogReferencePrices tests all entries carry a positive price
func TestCatalogReferencePrices(t *testing.T) {
	catalog := DefaultCatalog()
	for _, name := range catalog.Names() {
		p, _ := catalog.Get(name)
		if !p.ReferencePrice.IsPositive() {
			t.Errorf("%s: reference price must be positive, got %s", name, p.ReferencePrice)
		}
		if p.Unit != "kg" {
			t.Errorf("%s: expected kg unit, got %q", name, p.Unit)
		}
	}
}
