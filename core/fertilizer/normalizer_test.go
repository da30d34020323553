package fertilizer

import (
	"strings"
	"testing"
)

// TestNormalizeAliases tests alias resolution regardless of casing
// and surrounding whitespace
func TestNormalizeAliases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "canonical stays canonical", input: "MOP", expected: "MOP"},
		{name: "lowercase alias", input: "mop", expected: "MOP"},
		{name: "surrounding whitespace", input: "  MOP  ", expected: "MOP"},
		{name: "mixed case trade name", input: "Muriate of Potash", expected: "MOP"},
		{name: "misspelled trade name", input: "murate of potash", expected: "MOP"},
		{name: "chemical name", input: "potassium chloride", expected: "MOP"},
		{name: "sop alias", input: "Potassium Sulphate", expected: "SOP"},
		{name: "urea", input: "UREA", expected: "Urea"},
		{name: "dap long form", input: "diammonium phosphate", expected: "DAP"},
		{name: "can abbreviation", input: "CAN", expected: "Calcium Ammonium Nitrate"},
		{name: "spelling variant sulfate", input: "ammonium sulfate", expected: "Ammonium Sulphate"},
		{name: "organic product", input: "neem cake", expected: "Neem Cake"},
		{name: "biofertilizer long form", input: "Phosphate Solubilizing Bacteria", expected: "PSB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

// TestNormalizeEveryAlias proves every alias-table key resolves to its
// canonical value regardless of casing
func TestNormalizeEveryAlias(t *testing.T) {
	for alias, canonical := range Aliases() {
		if got := Normalize(alias); got != canonical {
			t.Errorf("Normalize(%q) = %q, expected %q", alias, got, canonical)
		}
		shouted := "  " + strings.ToUpper(alias) + " "
		if got := Normalize(shouted); got != canonical {
			t.Errorf("Normalize(%q) = %q, expected %q", shouted, got, canonical)
		}
	}
}

// TestNormalizeUnknownPassThrough tests unknown names pass through
// trimmed but otherwise unmodified
func TestNormalizeUnknownPassThrough(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Super Duper Mix", expected: "Super Duper Mix"},
		{input: "  Gypsum  ", expected: "Gypsum"},
		{input: "NPK 19-19-19", expected: "NPK 19-19-19"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

// TestNormalizeEmpty tests the empty/whitespace contract
func TestNormalizeEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		if got := Normalize(input); got != "" {
			t.Errorf("Normalize(%q) = %q, expected empty", input, got)
		}
	}
}

// TestNormalizeIdempotent proves normalizing a canonical name returns
// it unchanged
func TestNormalizeIdempotent(t *testing.T) {
	seen := map[string]bool{}
	for _, canonical := range Aliases() {
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		if got := Normalize(canonical); got != canonical {
			t.Errorf("Normalize(%q) = %q, not idempotent", canonical, got)
		}
	}
}
