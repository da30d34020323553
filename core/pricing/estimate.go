package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"fertcost/core/fertilizer"
)

// LineItem prices one recommended product from a report
type LineItem struct {
	// Role is the report slot the product came from
	// (primary, secondary, organic)
	Role string `json:"role"`

	// Name is the canonical product name
	Name string `json:"name"`

	// AmountKg is the recommended amount in kilograms
	AmountKg decimal.Decimal `json:"amount_kg"`

	// Priced reports whether a quote was available
	Priced bool `json:"priced"`

	// Cost is AmountKg times the quoted price, zero when unpriced
	Cost decimal.Decimal `json:"cost"`
}

// CostSummary aggregates quotes over a report's recommended products.
// Products without an available quote appear as unpriced line items and
// are excluded from the total.
type CostSummary struct {
	Currency string          `json:"currency,omitempty"`
	Lines    []LineItem      `json:"lines"`
	Total    decimal.Decimal `json:"total"`
	Unpriced []string        `json:"unpriced,omitempty"`
}

// Summarize prices the fertilizer recommendations in a parsed report.
// Degenerate report shapes (raw or error fallbacks) and missing fields
// simply contribute no line items; the summary is always well formed.
func Summarize(ctx context.Context, svc *Service, report map[string]any, region string) CostSummary {
	summary := CostSummary{Lines: []LineItem{}, Total: decimal.Zero}

	add := func(role string, entry any) {
		m, ok := entry.(map[string]any)
		if !ok {
			return
		}
		raw, _ := m["name"].(string)
		name := fertilizer.Normalize(raw)
		if name == "" {
			return
		}
		amount := toDecimal(m["amount_kg"])

		quote, priced := svc.GetPrice(ctx, name, region)
		line := LineItem{Role: role, Name: name, AmountKg: amount, Priced: priced}
		if priced {
			line.Cost = amount.Mul(quote.PricePerKg)
			summary.Total = summary.Total.Add(line.Cost)
			if summary.Currency == "" {
				summary.Currency = quote.Currency
			}
		} else {
			summary.Unpriced = append(summary.Unpriced, name)
		}
		summary.Lines = append(summary.Lines, line)
	}

	add("primary", report["primary_fertilizer"])
	add("secondary", report["secondary_fertilizer"])
	if organics, ok := report["organic_alternatives"].([]any); ok {
		for _, entry := range organics {
			add("organic", entry)
		}
	}

	return summary
}

// toDecimal converts the numeric shapes JSON decoding produces
func toDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		if d, err := decimal.NewFromString(n); err == nil {
			return d
		}
	}
	return decimal.Zero
}
