package report

import (
	"encoding/json"
	"strings"
)

// Outcome tags which recovery layer produced a parsed result
type Outcome int

const (
	// ParsedDirect - the raw text was valid JSON
	ParsedDirect Outcome = iota

	// ParsedExtracted - JSON was extracted from surrounding text
	ParsedExtracted

	// Fallback - no JSON object could be recovered; the raw text
	// is wrapped verbatim
	Fallback
)

// String returns string representation
func (o Outcome) String() string {
	switch o {
	case ParsedDirect:
		return "direct"
	case ParsedExtracted:
		return "extracted"
	case Fallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// ParseResponse recovers a JSON object from raw model output. It tries
// each layer only when the previous one fails:
//
//  1. unmarshal the raw text directly;
//  2. unmarshal the substring spanning the first '{' to the last '}'
//     (greedy, across newlines);
//  3. wrap the raw text verbatim as {"raw": rawText}.
//
// It always returns a non-nil object; consumers must check for the
// "raw" and "error" keys before trusting schema fields.
func ParseResponse(raw string) (map[string]any, Outcome) {
	// A nil check after unmarshal keeps literal "null" out of layer 1:
	// it decodes into a nil map, which is no object at all.
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil && obj != nil {
		return obj, ParsedDirect
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		obj = nil
		if err := json.Unmarshal([]byte(raw[start:end+1]), &obj); err == nil && obj != nil {
			return obj, ParsedExtracted
		}
	}

	return map[string]any{"raw": raw}, Fallback
}
