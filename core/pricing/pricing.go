// Package pricing provides fertilizer price lookups behind a pluggable
// source interface. Absence of price data is a normal outcome, never an
// error: lookups return an explicit ok=false instead of failing.
package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"fertcost/core/fertilizer"
)

// Quote is a price-per-unit quote for a canonical fertilizer name
type Quote struct {
	// Name is the canonical fertilizer name the quote applies to
	Name string `json:"name"`

	// Region is the geographic region the quote applies to, if any
	Region string `json:"region,omitempty"`

	// PricePerKg is the quoted price per kilogram
	PricePerKg decimal.Decimal `json:"price_per_kg"`

	// Currency is the quote currency
	Currency string `json:"currency"`

	// Source identifies the source that produced the quote
	Source string `json:"source"`
}

// Source supplies quotes keyed by canonical name and region.
// Implementations never return errors: a source that cannot answer
// (missing data, upstream failure) reports ok=false and absorbs the
// cause internally.
type Source interface {
	// Name identifies the source
	Name() string

	// Lookup returns a quote for a canonical name and region,
	// or ok=false when no price is available
	Lookup(ctx context.Context, canonical, region string) (Quote, bool)
}

// UnavailableSource is the default price source. It reports every
// price as unavailable; a real market feed is a pluggable replacement,
// not a change to this contract.
type UnavailableSource struct{}

// Name identifies the source
func (UnavailableSource) Name() string { return "unavailable" }

// Lookup always reports no price
func (UnavailableSource) Lookup(ctx context.Context, canonical, region string) (Quote, bool) {
	return Quote{}, false
}

// StaticSource serves indicative reference prices from the fertilizer
// catalog. It ignores region. Intended for offline estimation and
// tests; it is not wired as the default.
type StaticSource struct {
	catalog  *fertilizer.Catalog
	currency string
}

// NewStaticSource creates a catalog-backed source
func NewStaticSource(catalog *fertilizer.Catalog, currency string) *StaticSource {
	if currency == "" {
		currency = "INR"
	}
	return &StaticSource{catalog: catalog, currency: currency}
}

// Name identifies the source
func (s *StaticSource) Name() string { return "catalog" }

// Lookup returns the catalog reference price for the canonical name
func (s *StaticSource) Lookup(ctx context.Context, canonical, region string) (Quote, bool) {
	product, ok := s.catalog.Get(canonical)
	if !ok {
		return Quote{}, false
	}
	return Quote{
		Name:       product.Name,
		Region:     region,
		PricePerKg: product.ReferencePrice,
		Currency:   s.currency,
		Source:     s.Name(),
	}, true
}

// Service is the price lookup entry point. It normalizes names before
// delegating to the configured source.
type Service struct {
	source        Source
	defaultRegion string
}

// NewService creates a lookup service over the given source.
// A nil source falls back to UnavailableSource.
func NewService(source Source, defaultRegion string) *Service {
	if source == nil {
		source = UnavailableSource{}
	}
	return &Service{source: source, defaultRegion: defaultRegion}
}

// GetPrice returns a quote for a fertilizer name, or ok=false when no
// price is available. The name is normalized first; an empty name is
// always unavailable. region may be empty, in which case the service
// default applies.
func (s *Service) GetPrice(ctx context.Context, name, region string) (Quote, bool) {
	canonical := fertilizer.Normalize(name)
	if canonical == "" {
		return Quote{}, false
	}
	if region == "" {
		region = s.defaultRegion
	}
	return s.source.Lookup(ctx, canonical, region)
}
