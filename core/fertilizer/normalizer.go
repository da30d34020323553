// Package fertilizer defines the canonical fertilizer vocabulary:
// name normalization and the product catalog.
package fertilizer

import "strings"

// aliases maps lowercased trade and chemical names to the canonical
// product name used across lookups. Lookup keys must be lowercase.
var aliases = map[string]string{
	"mop":                "MOP",
	"murate of potash":   "MOP",
	"muriate of potash":  "MOP",
	"potassium chloride": "MOP",

	"sop":                "SOP",
	"potassium sulfate":  "SOP",
	"potassium sulphate": "SOP",

	"urea": "Urea",

	"dap":                  "DAP",
	"diammonium phosphate": "DAP",

	"can":                      "Calcium Ammonium Nitrate",
	"calcium ammonium nitrate": "Calcium Ammonium Nitrate",

	"ammonium sulphate": "Ammonium Sulphate",
	"ammonium sulfate":  "Ammonium Sulphate",

	"vermicompost":   "Vermicompost",
	"neem cake":      "Neem Cake",
	"bone meal":      "Bone Meal",
	"compost":        "Compost",
	"poultry manure": "Poultry manure",
	"wood ash":       "Wood Ash",

	"psb":                             "PSB",
	"phosphate solubilizing bacteria": "PSB",
	"rhizobium":                       "Rhizobium",
	"azospirillum":                    "Azospirillum",
	"azotobacter":                     "Azotobacter",
}

// Normalize maps a free-text fertilizer name to its canonical form.
// Matching is case-insensitive and ignores surrounding whitespace.
// Unknown names pass through trimmed but otherwise unmodified, so the
// function is total and idempotent. Empty or whitespace-only input
// returns the empty string.
func Normalize(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := aliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// Aliases returns a copy of the alias table keyed by lowercase alias.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
